package subst

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Discretization describes a logarithmically spaced grid of branch lengths
// used to bucket observed lengths onto precomputed transition matrices.
//
// Fields:
//   - TMin, TMax — grid bounds; observed lengths are clipped into them.
//   - Steps      — number of geometric grid points between the bounds.
//
// The effective time set is [0, geomspace(TMin, TMax, Steps)...]: index 0
// is a designated exact-zero entry that only t == 0 maps onto.
type Discretization struct {
	TMin  float64
	TMax  float64
	Steps int
}

// DefaultDiscretization returns the canonical grid: 400 geometric points
// between 1e-3 and 10, plus the zero entry.
func DefaultDiscretization() Discretization {
	return Discretization{TMin: 1e-3, TMax: 10, Steps: 400}
}

// Validate reports ErrBadGrid for degenerate grids.
func (d Discretization) Validate() error {
	if d.TMin <= 0 || d.TMax <= d.TMin || d.Steps < 2 {
		return ErrBadGrid
	}

	return nil
}

// Times returns the full grid: the zero entry followed by Steps geometric
// points from TMin to TMax inclusive.
func (d Discretization) Times() []float64 {
	out := make([]float64, 0, d.Steps+1)
	out = append(out, 0)

	ratio := math.Pow(d.TMax/d.TMin, 1/float64(d.Steps-1))
	v := d.TMin
	for i := 0; i < d.Steps; i++ {
		out = append(out, v)
		v *= ratio
	}
	out[d.Steps] = d.TMax // pin the endpoint against rounding drift

	return out
}

// Index maps a branch length to its grid bucket: exact 0 hits the zero
// entry, anything else is clipped into [TMin, TMax] and digitized against
// the geometric points. The result always indexes Times() in range.
func (d Discretization) Index(t float64) int {
	if t == 0 {
		return 0
	}
	x := math.Min(math.Max(t, d.TMin), d.TMax)
	grid := d.Times()[1:]
	// digitize: number of grid points ≤ x.
	idx := 1 + sort.Search(len(grid), func(i int) bool { return grid[i] > x })
	if idx > d.Steps {
		idx = d.Steps
	}

	return idx
}

// Cache holds the transition matrices of one model precomputed at every
// grid time, for O(1) amortized per-branch lookups.
type Cache struct {
	grid   Discretization
	points []float64 // geometric grid, Times()[1:]
	mats   []*mat.Dense
}

// NewCache precomputes expm(Rate·t) at every grid time of d.
//
// Errors: ErrBadGrid plus model validation sentinels.
//
// Complexity: O(Steps·A³) once; lookups are O(log Steps).
func NewCache(m Model, d Discretization) (*Cache, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	times := d.Times()
	mats := make([]*mat.Dense, len(times))
	for i, t := range times {
		mats[i] = expm(m.Rate, t)
	}

	return &Cache{grid: d, points: times[1:], mats: mats}, nil
}

// MatrixAt returns the cached matrix for the bucket of t. The matrix is
// shared and must be treated as read-only.
//
// Errors: ErrNegativeLength for t < 0.
func (c *Cache) MatrixAt(t float64) (*mat.Dense, error) {
	if t < 0 {
		return nil, ErrNegativeLength
	}
	if t == 0 {
		return c.mats[0], nil
	}
	x := math.Min(math.Max(t, c.grid.TMin), c.grid.TMax)
	idx := 1 + sort.Search(len(c.points), func(i int) bool { return c.points[i] > x })
	if idx > c.grid.Steps {
		idx = c.grid.Steps
	}

	return c.mats[idx], nil
}

// Matrices returns one cached matrix per branch length, mirroring the
// direct-mode Matrices shape.
func (c *Cache) Matrices(distanceToParent []float64) ([]*mat.Dense, error) {
	out := make([]*mat.Dense, len(distanceToParent))
	for i, t := range distanceToParent {
		m, err := c.MatrixAt(t)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}

	return out, nil
}
