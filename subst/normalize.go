package subst

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NormalizeRate turns an arbitrary matrix into a valid generator: entries
// are made non-negative via absolute value, then each diagonal entry is
// replaced by the negated sum of its off-diagonal row.
func NormalizeRate(raw *mat.Dense) *mat.Dense {
	n, _ := raw.Dims()
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		var offDiag float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := math.Abs(raw.At(i, j))
			out.Set(i, j, v)
			offDiag += v
		}
		out.Set(i, i, -offDiag)
	}

	return out
}

// NormalizeRootProb rescales a non-negative weight vector onto the
// probability simplex. The input is not modified.
func NormalizeRootProb(p []float64) []float64 {
	out := append([]float64(nil), p...)
	if sum := floats.Sum(out); sum != 0 {
		floats.Scale(1/sum, out)
	}

	return out
}

// Normalize applies both normalizations to a model, returning a fresh one.
func Normalize(m Model) Model {
	return Model{
		Rate:     NormalizeRate(m.Rate),
		RootProb: NormalizeRootProb(m.RootProb),
	}
}

// Symmetrize averages a matrix with its transpose and normalizes the
// result into a generator.
func Symmetrize(raw *mat.Dense) *mat.Dense {
	n, _ := raw.Dims()
	sym := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sym.Set(i, j, 0.5*(raw.At(i, j)+raw.At(j, i)))
		}
	}

	return NormalizeRate(sym)
}

// Reversible builds a time-reversible generator from a symmetric core S and
// root frequencies π: Q[i][j] = S[i][j]·√(π[j]/π[i]). Detailed balance
// π[i]·Q[i][j] = π[j]·Q[j][i] then holds by construction.
func Reversible(sym *mat.Dense, rootProb []float64) *mat.Dense {
	n, _ := sym.Dims()
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		si := math.Sqrt(rootProb[i])
		for j := 0; j < n; j++ {
			out.Set(i, j, sym.At(i, j)*math.Sqrt(rootProb[j])/si)
		}
	}

	return out
}
