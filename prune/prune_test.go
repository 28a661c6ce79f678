package prune_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/phylik/prune"
	"github.com/katalvlaran/phylik/subst"
)

// jcModel returns a Jukes–Cantor-style model over a 4-symbol alphabet.
func jcModel(rate float64) subst.Model {
	raw := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j {
				raw.Set(i, j, rate)
			}
		}
	}

	return subst.Model{
		Rate:     subst.NormalizeRate(raw),
		RootProb: []float64{0.25, 0.25, 0.25, 0.25},
	}
}

// zeroRateModel returns a model whose generator is all zero: no
// substitution ever occurs.
func zeroRateModel() subst.Model {
	return subst.Model{
		Rate:     mat.NewDense(4, 4, nil),
		RootProb: []float64{0.25, 0.25, 0.25, 0.25},
	}
}

// fiveTaxonFixture returns a small but non-trivial preorder tree with two
// internal nodes and three leaves, plus an alignment over it.
func fiveTaxonFixture() (prune.Alignment, prune.Tree) {
	aln := prune.Alignment{
		{-1, -1, -1, -1}, // root placeholder
		{-1, 0, 2, -1},   // internal placeholder
		{0, 0, 2, 3},     // leaf
		{1, 0, 2, -1},    // leaf
		{1, -1, 3, 3},    // leaf
	}
	tree := prune.Tree{
		DistanceToParent: []float64{0, 0.2, 0.1, 0.3, 0.5},
		ParentIndex:      []int{-1, 0, 1, 1, 0},
	}

	return aln, tree
}

// TestSubLogLike_NoSubstitutionScenario pins the §8-style two-row case: a
// zero generator makes identical sequences score exactly log(rootProb)
// independent of branch length.
func TestSubLogLike_NoSubstitutionScenario(t *testing.T) {
	aln := prune.Alignment{{0}, {0}}
	for _, d := range []float64{0, 0.1, 1, 100} {
		tree := prune.Tree{DistanceToParent: []float64{0, d}, ParentIndex: []int{-1, 0}}
		ll, err := prune.SubLogLike(aln, tree, zeroRateModel())
		require.NoError(t, err)
		require.Len(t, ll, 1)
		assert.InDelta(t, math.Log(0.25), ll[0], 1e-12, "d=%g must not matter", d)
	}
}

// TestSubLogLike_TwoLeafClosedForm checks a two-row tree against the
// analytic Jukes–Cantor answer log(π₀·P₀₀(d)).
func TestSubLogLike_TwoLeafClosedForm(t *testing.T) {
	const rate, d = 0.3, 0.7
	aln := prune.Alignment{{0}, {0}}
	tree := prune.Tree{DistanceToParent: []float64{0, d}, ParentIndex: []int{-1, 0}}

	ll, err := prune.SubLogLike(aln, tree, jcModel(rate))
	require.NoError(t, err)

	p00 := 1 - 3*(1-math.Exp(-4*rate*d))/4
	assert.InDelta(t, math.Log(0.25*p00), ll[0], 1e-10)
}

// TestSubLogLike_AllGapColumnIsNeutral verifies an all-gap column carries
// no information: its log-likelihood is exactly 0.
func TestSubLogLike_AllGapColumnIsNeutral(t *testing.T) {
	aln := prune.Alignment{{-1}, {-1}, {-1}, {-1}, {-1}}
	_, tree := fiveTaxonFixture()

	ll, err := prune.SubLogLike(aln, tree, jcModel(1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, ll[0], "gap-only column must score log(1)")
}

// TestSubLogLike_FiniteOnFixture sanity-checks every column of the larger
// fixture: finite, strictly negative log-likelihoods.
func TestSubLogLike_FiniteOnFixture(t *testing.T) {
	aln, tree := fiveTaxonFixture()
	ll, err := prune.SubLogLike(aln, tree, jcModel(0.8))
	require.NoError(t, err)
	require.Len(t, ll, aln.Cols())
	for c, v := range ll {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "column %d must be finite", c)
		assert.Less(t, v, 0.0, "column %d must be a log-probability", c)
	}
}

// TestSubLogLikeMixture evaluates two categories independently and checks
// the slow and fast categories actually differ.
func TestSubLogLikeMixture(t *testing.T) {
	aln, tree := fiveTaxonFixture()
	mix := subst.Mixture{jcModel(0.1), jcModel(2)}

	ll, err := prune.SubLogLikeMixture(aln, tree, mix)
	require.NoError(t, err)
	require.Len(t, ll, 2)
	require.Len(t, ll[0], aln.Cols())

	slow, err := prune.SubLogLike(aln, tree, mix[0])
	require.NoError(t, err)
	assert.Equal(t, slow, ll[0], "component 0 must match its standalone run")
	assert.NotEqual(t, ll[0], ll[1], "distinct rates must score differently")
}

// TestSubLogLikeCached_TracksDirect verifies the discretized path agrees
// with direct exponentials up to the binning error of a dense grid.
func TestSubLogLikeCached_TracksDirect(t *testing.T) {
	aln, tree := fiveTaxonFixture()
	model := jcModel(0.8)

	cache, err := subst.NewCache(model, subst.Discretization{TMin: 1e-4, TMax: 10, Steps: 4000})
	require.NoError(t, err)

	direct, err := prune.SubLogLike(aln, tree, model)
	require.NoError(t, err)
	cached, err := prune.SubLogLikeCached(aln, tree, cache, model.RootProb)
	require.NoError(t, err)

	for c := range direct {
		assert.InDelta(t, direct[c], cached[c], 1e-2, "column %d", c)
	}
}

// TestSubLogLike_Validation covers the precondition sentinels.
func TestSubLogLike_Validation(t *testing.T) {
	model := jcModel(1)
	goodTree := prune.Tree{DistanceToParent: []float64{0, 0.1}, ParentIndex: []int{-1, 0}}

	_, err := prune.SubLogLike(prune.Alignment{{0}, {9}}, goodTree, model)
	assert.ErrorIs(t, err, prune.ErrBadToken, "token ≥ alphabetSize must error")

	_, err = prune.SubLogLike(prune.Alignment{{0}, {-2}}, goodTree, model)
	assert.ErrorIs(t, err, prune.ErrBadToken, "token < -1 must error")

	_, err = prune.SubLogLike(prune.Alignment{{0}, {0, 1}}, goodTree, model)
	assert.ErrorIs(t, err, prune.ErrRagged)

	badDist := prune.Tree{DistanceToParent: []float64{0, -0.1}, ParentIndex: []int{-1, 0}}
	_, err = prune.SubLogLike(prune.Alignment{{0}, {0}}, badDist, model)
	assert.ErrorIs(t, err, prune.ErrNegativeBranch)

	badRoot := prune.Tree{DistanceToParent: []float64{0, 0.1}, ParentIndex: []int{0, 0}}
	_, err = prune.SubLogLike(prune.Alignment{{0}, {0}}, badRoot, model)
	assert.ErrorIs(t, err, prune.ErrBadRoot)

	forward := prune.Tree{DistanceToParent: []float64{0, 0.1, 0.1}, ParentIndex: []int{-1, 2, 1}}
	_, err = prune.SubLogLike(prune.Alignment{{0}, {0}, {0}}, forward, model)
	assert.ErrorIs(t, err, prune.ErrBadParentIndex, "parentIndex[i] > i must error")

	_, err = prune.SubLogLike(prune.Alignment{{0}}, goodTree, model)
	assert.ErrorIs(t, err, prune.ErrShapeMismatch, "row count must match tree nodes")
}
