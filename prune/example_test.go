package prune_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/phylik/prune"
	"github.com/katalvlaran/phylik/subst"
)

////////////////////////////////////////////////////////////////////////////////
// Example: SubLogLike
////////////////////////////////////////////////////////////////////////////////

// ExampleSubLogLike scores a single-column alignment of two identical
// symbols under a model that forbids substitution. Whatever the branch
// length, the only probability spent is the root frequency of the symbol:
// the column scores log(0.25).
//
// Complexity: O(R·C·A²) after the per-branch exponentials.
func ExampleSubLogLike() {
	model := subst.Model{
		Rate:     mat.NewDense(4, 4, nil), // zero generator: nothing mutates
		RootProb: []float64{0.25, 0.25, 0.25, 0.25},
	}
	aln := prune.Alignment{{0}, {0}}
	tree := prune.Tree{
		DistanceToParent: []float64{0, 7.5},
		ParentIndex:      []int{-1, 0},
	}

	ll, _ := prune.SubLogLike(aln, tree, model)
	fmt.Printf("log-likelihood: %.4f\n", ll[0])
	fmt.Printf("log(1/4):       %.4f\n", math.Log(0.25))

	// Output:
	// log-likelihood: -1.3863
	// log(1/4):       -1.3863
}
