package indel

import "math"

// TransitionLogLike scores observed transition counts against a transition
// matrix: Σ counts[i][j]·log(m[i][j]), with matrix entries floored at the
// smallest positive normal float64 before the log so zero probabilities
// contribute a large negative value instead of −Inf.
func TransitionLogLike(counts Matrix, m Matrix) float64 {
	total := 0.0
	for i := range m {
		for j := range m[i] {
			e := m[i][j]
			if e < minPositive {
				e = minPositive
			}
			total += counts[i][j] * math.Log(e)
		}
	}

	return total
}
