package subst

import "gonum.org/v1/gonum/mat"

// MatrixAt is the transition matrix for one branch of length t:
// expm(Rate·t) via gonum's scaling-and-squaring exponential.
//
// Errors: ErrNegativeLength for t < 0, plus model validation sentinels.
func MatrixAt(m Model, t float64) (*mat.Dense, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if t < 0 {
		return nil, ErrNegativeLength
	}

	return expm(m.Rate, t), nil
}

// Matrices — per-branch transition matrices in direct mode.
//
// Description:
//
//	One matrix exponential is computed per *distinct* branch length;
//	repeated lengths share the same (immutable) matrix. This keeps the
//	common padded-tree case, where many rows carry length 0, at a single
//	identity exponential.
//
// Errors: ErrNegativeLength if any length is negative, plus model
// validation sentinels.
//
// Complexity: O(D·A³) for D distinct lengths over an A-symbol alphabet.
func Matrices(m Model, distanceToParent []float64) ([]*mat.Dense, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	memo := make(map[float64]*mat.Dense, len(distanceToParent))
	out := make([]*mat.Dense, len(distanceToParent))
	for i, t := range distanceToParent {
		if t < 0 {
			return nil, ErrNegativeLength
		}
		cached, ok := memo[t]
		if !ok {
			cached = expm(m.Rate, t)
			memo[t] = cached
		}
		out[i] = cached
	}

	return out, nil
}

// expm computes expm(rate·t).
func expm(rate *mat.Dense, t float64) *mat.Dense {
	n, _ := rate.Dims()
	scaled := mat.NewDense(n, n, nil)
	scaled.Scale(t, rate)
	var e mat.Dense
	e.Exp(scaled)

	return &e
}
