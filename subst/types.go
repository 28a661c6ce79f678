// Package subst - model containers and sentinel errors.
package subst

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilRate indicates a model without a rate matrix.
	ErrNilRate = errors.New("subst: rate matrix must be non-nil")
	// ErrNotSquare indicates a non-square rate matrix.
	ErrNotSquare = errors.New("subst: rate matrix must be square")
	// ErrRootProbShape indicates a root frequency vector whose length does
	// not match the alphabet size of the rate matrix.
	ErrRootProbShape = errors.New("subst: root probabilities must match alphabet size")
	// ErrNegativeLength indicates a negative branch length.
	ErrNegativeLength = errors.New("subst: branch lengths must be non-negative")
	// ErrBadGrid indicates a discretization grid with non-positive bounds,
	// inverted bounds, or fewer than 2 steps.
	ErrBadGrid = errors.New("subst: discretization requires 0 < TMin < TMax and Steps ≥ 2")
	// ErrEmptyMixture indicates a mixture with no components.
	ErrEmptyMixture = errors.New("subst: mixture must have at least one component")
)

// Model is one substitution-model component: a generator matrix over an
// alphabet of A symbols and the root frequencies over the same alphabet.
// Both are treated as immutable once constructed.
type Model struct {
	// Rate is the A×A generator: off-diagonal entries are non-negative
	// substitution rates, each diagonal entry the negated row sum.
	Rate *mat.Dense
	// RootProb holds A root frequencies summing to 1.
	RootProb []float64
}

// AlphabetSize returns A, or 0 for a model without a rate matrix.
func (m Model) AlphabetSize() int {
	if m.Rate == nil {
		return 0
	}
	r, _ := m.Rate.Dims()

	return r
}

// Validate checks the structural invariants: a square rate matrix and a
// root vector of matching length.
func (m Model) Validate() error {
	if m.Rate == nil {
		return ErrNilRate
	}
	r, c := m.Rate.Dims()
	if r != c {
		return ErrNotSquare
	}
	if len(m.RootProb) != r {
		return ErrRootProbShape
	}

	return nil
}

// Mixture is an ordered set of independent model components ("hidden"
// substitution rate categories). Components do not interact; consumers
// evaluate them independently.
type Mixture []Model

// Validate checks every component and rejects empty mixtures.
func (mx Mixture) Validate() error {
	if len(mx) == 0 {
		return ErrEmptyMixture
	}
	for _, m := range mx {
		if err := m.Validate(); err != nil {
			return err
		}
	}

	return nil
}
