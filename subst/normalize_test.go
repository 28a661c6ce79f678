package subst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/phylik/subst"
)

// TestNormalizeRate_Generator verifies the generator invariants: rows sum
// to zero, off-diagonals are the absolute input rates.
func TestNormalizeRate_Generator(t *testing.T) {
	raw := mat.NewDense(3, 3, []float64{
		9, -1, 2,
		0.5, -7, 0.25,
		3, 1, 42,
	})
	q := subst.NormalizeRate(raw)

	for i := 0; i < 3; i++ {
		sum := 0.0
		for j := 0; j < 3; j++ {
			if i != j {
				assert.GreaterOrEqual(t, q.At(i, j), 0.0, "off-diagonal (%d,%d) must be ≥ 0", i, j)
			}
			sum += q.At(i, j)
		}
		assert.InDelta(t, 0.0, sum, 1e-12, "row %d of a generator sums to 0", i)
	}
	assert.Equal(t, 1.0, q.At(0, 1), "off-diagonal takes the absolute input rate")
	assert.Equal(t, -3.0, q.At(0, 0), "diagonal is the negated off-diagonal row sum")
}

// TestNormalizeRootProb verifies simplex rescaling and input immutability.
func TestNormalizeRootProb(t *testing.T) {
	in := []float64{2, 1, 1}
	out := subst.NormalizeRootProb(in)
	assert.Equal(t, []float64{0.5, 0.25, 0.25}, out)
	assert.Equal(t, []float64{2, 1, 1}, in, "input must not be modified")
}

// TestReversible_DetailedBalance verifies π[i]·Q[i][j] == π[j]·Q[j][i].
func TestReversible_DetailedBalance(t *testing.T) {
	sym := subst.Symmetrize(mat.NewDense(3, 3, []float64{
		0, 1, 2,
		3, 0, 4,
		5, 6, 0,
	}))
	pi := []float64{0.5, 0.3, 0.2}
	q := subst.Reversible(sym, pi)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			assert.InDelta(t, pi[i]*q.At(i, j), pi[j]*q.At(j, i), 1e-12,
				"detailed balance at (%d,%d)", i, j)
		}
	}
}

// TestModel_Validate covers the structural sentinels.
func TestModel_Validate(t *testing.T) {
	assert.ErrorIs(t, subst.Model{}.Validate(), subst.ErrNilRate)

	rect := subst.Model{Rate: mat.NewDense(2, 3, nil)}
	assert.ErrorIs(t, rect.Validate(), subst.ErrNotSquare)

	short := subst.Model{Rate: mat.NewDense(2, 2, nil), RootProb: []float64{1}}
	assert.ErrorIs(t, short.Validate(), subst.ErrRootProbShape)

	ok := subst.Model{Rate: mat.NewDense(2, 2, nil), RootProb: []float64{0.5, 0.5}}
	assert.NoError(t, ok.Validate())

	assert.ErrorIs(t, subst.Mixture{}.Validate(), subst.ErrEmptyMixture)
	assert.NoError(t, subst.Mixture{ok}.Validate())
}
