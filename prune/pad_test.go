package prune_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylik/prune"
)

// TestPadDimension pins the rounding rule for both the power-of-two fast
// path and general multipliers.
func TestPadDimension(t *testing.T) {
	assert.Equal(t, 1, prune.PadDimension(1, 2))
	assert.Equal(t, 4, prune.PadDimension(3, 2))
	assert.Equal(t, 4, prune.PadDimension(4, 2))
	assert.Equal(t, 8, prune.PadDimension(5, 2))
	assert.Equal(t, 9, prune.PadDimension(8, 3))
	assert.Equal(t, 9, prune.PadDimension(9, 3))
	assert.Equal(t, 27, prune.PadDimension(10, 3))
}

// TestPadAlignment_Shape verifies padded shape, gap fill, self-parenting
// and zero distances.
func TestPadAlignment_Shape(t *testing.T) {
	aln, tree := fiveTaxonFixture() // 5 rows × 4 cols

	padded, ptree, err := prune.PadAlignment(aln, tree, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, padded.Rows(), "5 rows round up to 8")
	assert.Equal(t, 4, padded.Cols(), "4 cols stay 4")

	for r := 5; r < 8; r++ {
		assert.Equal(t, r, ptree.ParentIndex[r], "padding rows are self-parented")
		assert.Equal(t, 0.0, ptree.DistanceToParent[r], "padding rows have zero distance")
		for c := 0; c < padded.Cols(); c++ {
			assert.Equal(t, -1, padded[r][c], "padding rows are all-gap")
		}
	}
	assert.Equal(t, aln[2], padded[2], "original rows survive verbatim")
}

// TestPadAlignment_ExplicitTargets verifies explicit row/column targets
// and the appended all-gap columns.
func TestPadAlignment_ExplicitTargets(t *testing.T) {
	aln, tree := fiveTaxonFixture()
	opts := prune.PadOptions{NumRows: 6, NumCols: 7, RowMultiplier: 2, ColMultiplier: 2}

	padded, _, err := prune.PadAlignment(aln, tree, &opts)
	require.NoError(t, err)
	assert.Equal(t, 6, padded.Rows())
	assert.Equal(t, 7, padded.Cols())
	for r := 0; r < padded.Rows(); r++ {
		for c := 4; c < 7; c++ {
			assert.Equal(t, -1, padded[r][c], "appended columns are all-gap")
		}
	}
}

// TestPadAlignment_LikelihoodInvariance is the central padding property:
// per-column log-likelihoods before padding equal the leading columns
// after padding, for several multipliers, and the appended columns are
// exactly neutral.
func TestPadAlignment_LikelihoodInvariance(t *testing.T) {
	aln, tree := fiveTaxonFixture()
	model := jcModel(0.8)

	before, err := prune.SubLogLike(aln, tree, model)
	require.NoError(t, err)

	for _, mult := range []int{2, 3, 5} {
		opts := prune.PadOptions{RowMultiplier: mult, ColMultiplier: mult}
		padded, ptree, err := prune.PadAlignment(aln, tree, &opts)
		require.NoError(t, err)

		after, err := prune.SubLogLike(padded, ptree, model)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(after), len(before))
		for c := range before {
			assert.InDelta(t, before[c], after[c], 1e-12, "multiplier %d column %d", mult, c)
		}
		for c := len(before); c < len(after); c++ {
			assert.Equal(t, 0.0, after[c], "padding column %d must be neutral", c)
		}
	}
}

// TestPadAlignment_BadMultiplier verifies derived targets reject
// multipliers below 2.
func TestPadAlignment_BadMultiplier(t *testing.T) {
	aln, tree := fiveTaxonFixture()
	opts := prune.PadOptions{RowMultiplier: 1, ColMultiplier: 2}
	_, _, err := prune.PadAlignment(aln, tree, &opts)
	assert.ErrorIs(t, err, prune.ErrBadMultiplier)
}
