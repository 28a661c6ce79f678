package score

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/phylik/indel"
	"github.com/katalvlaran/phylik/prune"
	"github.com/katalvlaran/phylik/subst"
)

var (
	// ErrMixtureSize indicates a mixture with other than exactly one
	// component; combined totals are defined for single-component models.
	ErrMixtureSize = errors.New("score: exactly one mixture component is supported")
	// ErrCountsShape indicates transition counts whose length differs from
	// the number of tree nodes.
	ErrCountsShape = errors.New("score: one transition-count matrix per tree node required")
)

// Totals carries the two summed log-likelihood terms.
type Totals struct {
	// Subst is the substitution log-likelihood summed over all columns.
	Subst float64
	// Indel is the indel log-likelihood summed over all branches.
	Indel float64
}

// Options configures the per-branch indel matrices.
type Options struct {
	Indel indel.Options
}

// DefaultOptions returns the canonical configuration.
func DefaultOptions() Options {
	return Options{Indel: indel.DefaultOptions()}
}

// Total — combined substitution and indel log-likelihood.
//
// Description:
//
//	The substitution term prunes the alignment under the single mixture
//	component and sums the per-column results. The indel term scores
//	transCounts[r] — observed {Match, Insert, Delete} transition counts
//	on the branch above node r — against the log of that branch's
//	transition matrix; node 0 (the root) uses the fixed placeholder
//	matrix.
//
// Errors: ErrMixtureSize, ErrCountsShape, plus validation sentinels from
// prune, subst and indel.
func Total(aln prune.Alignment, tree prune.Tree, mix subst.Mixture, ip indel.Params, transCounts []indel.Matrix, opts *Options) (Totals, error) {
	if len(mix) != 1 {
		return Totals{}, ErrMixtureSize
	}

	perColumn, err := prune.SubLogLike(aln, tree, mix[0])
	if err != nil {
		return Totals{}, err
	}

	indelLL, err := IndelLogLike(tree, ip, mix[0].AlphabetSize(), transCounts, opts)
	if err != nil {
		return Totals{}, err
	}

	return Totals{Subst: floats.Sum(perColumn), Indel: indelLL}, nil
}

// IndelLogLike sums each branch's transition-count score under the indel
// process; see Total for the root convention.
func IndelLogLike(tree prune.Tree, ip indel.Params, alphabetSize int, transCounts []indel.Matrix, opts *Options) (float64, error) {
	if err := tree.Validate(); err != nil {
		return 0, err
	}
	if len(transCounts) != tree.Nodes() {
		return 0, ErrCountsShape
	}

	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}

	total := indel.TransitionLogLike(transCounts[0], indel.DummyRootMatrix())
	for r := 1; r < tree.Nodes(); r++ {
		m, err := indel.MatrixAt(tree.DistanceToParent[r], ip, alphabetSize, &cfg.Indel)
		if err != nil {
			return 0, err
		}
		total += indel.TransitionLogLike(transCounts[r], m)
	}

	return total, nil
}
