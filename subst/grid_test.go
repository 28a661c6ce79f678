package subst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylik/subst"
)

// TestDiscretization_Times verifies the grid shape: the zero entry, then
// Steps geometric points pinned at TMin and TMax.
func TestDiscretization_Times(t *testing.T) {
	d := subst.DefaultDiscretization()
	ts := d.Times()
	require.Len(t, ts, d.Steps+1)
	assert.Equal(t, 0.0, ts[0], "index 0 is the designated zero entry")
	assert.Equal(t, d.TMin, ts[1])
	assert.Equal(t, d.TMax, ts[d.Steps])
	for i := 2; i < len(ts); i++ {
		assert.Greater(t, ts[i], ts[i-1], "grid must be strictly increasing")
	}
}

// TestDiscretization_Index pins the bucket mapping: exact zero hits the
// zero entry, below-range lengths clip to TMin's bucket, above-range
// lengths clamp to the last bucket, and the index always stays in range.
func TestDiscretization_Index(t *testing.T) {
	d := subst.DefaultDiscretization()
	ts := d.Times()

	assert.Equal(t, 0, d.Index(0), "t=0 maps to the zero entry, never a neighbor")
	assert.Equal(t, d.Index(d.TMin), d.Index(d.TMin/10), "sub-TMin lengths clip to TMin's bucket")
	assert.Equal(t, d.Steps, d.Index(d.TMax), "TMax maps to the last bucket")
	assert.Equal(t, d.Steps, d.Index(d.TMax*100), "beyond-TMax lengths clamp to the last bucket")

	for _, bl := range []float64{1e-4, 1e-3, 0.01, 0.3, 1, 5, 10, 50} {
		idx := d.Index(bl)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(ts))
	}
}

// TestCache_MatchesDirectAtGridTimes verifies that looking up a branch
// length lying exactly on the grid returns the directly computed matrix of
// a grid time within one bucket of it.
func TestCache_MatchesDirectAtGridTimes(t *testing.T) {
	m := jcModel(1)
	d := subst.Discretization{TMin: 1e-3, TMax: 10, Steps: 50}
	cache, err := subst.NewCache(m, d)
	require.NoError(t, err)

	ts := d.Times()
	for _, gridIdx := range []int{1, 10, 25, 50} {
		bl := ts[gridIdx]
		got, err := cache.MatrixAt(bl)
		require.NoError(t, err)

		bucket := d.Index(bl)
		direct, err := subst.MatrixAt(m, ts[bucket])
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				assert.InDelta(t, direct.At(i, j), got.At(i, j), 1e-12,
					"grid time %g entry (%d,%d)", bl, i, j)
			}
		}
	}
}

// TestCache_ZeroEntryIsIdentity verifies the t=0 lookup returns the exact
// zero-time matrix, never an interpolated neighbor.
func TestCache_ZeroEntryIsIdentity(t *testing.T) {
	cache, err := subst.NewCache(jcModel(2), subst.DefaultDiscretization())
	require.NoError(t, err)

	p, err := cache.MatrixAt(0)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, p.At(i, j), 1e-12)
		}
	}
}

// TestCache_Validation covers grid and lookup sentinels.
func TestCache_Validation(t *testing.T) {
	_, err := subst.NewCache(jcModel(1), subst.Discretization{TMin: 0, TMax: 1, Steps: 10})
	assert.ErrorIs(t, err, subst.ErrBadGrid)

	_, err = subst.NewCache(jcModel(1), subst.Discretization{TMin: 2, TMax: 1, Steps: 10})
	assert.ErrorIs(t, err, subst.ErrBadGrid)

	cache, err := subst.NewCache(jcModel(1), subst.Discretization{TMin: 1e-3, TMax: 10, Steps: 16})
	require.NoError(t, err)
	_, err = cache.MatrixAt(-0.5)
	assert.ErrorIs(t, err, subst.ErrNegativeLength)

	_, err = cache.Matrices([]float64{0.1, -1})
	assert.ErrorIs(t, err, subst.ErrNegativeLength)
}

// TestCache_BucketsReuseMatrices verifies nearby lengths inside one bucket
// share the same cached matrix pointer.
func TestCache_BucketsReuseMatrices(t *testing.T) {
	d := subst.Discretization{TMin: 1e-3, TMax: 10, Steps: 10}
	cache, err := subst.NewCache(jcModel(1), d)
	require.NoError(t, err)

	mats, err := cache.Matrices([]float64{0.2, 0.2000001, 5})
	require.NoError(t, err)
	assert.Same(t, mats[0], mats[1], "lengths in one bucket share a matrix")
	assert.NotSame(t, mats[0], mats[2])
}
