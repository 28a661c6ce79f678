package prune

import (
	"math"

	"github.com/exascience/pargo/parallel"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/phylik/subst"
)

// SubLogLike — substitution log-likelihood per alignment column.
//
// Description:
//
//	Computes per-branch transition matrices for the model (one exponential
//	per distinct branch length) and folds the alignment up the tree in
//	postorder. Result[c] is the log-likelihood of column c.
//
// Errors: validation sentinels from this package and from subst.
//
// Complexity: O(R·C·A²) after O(D·A³) matrix exponentials.
func SubLogLike(aln Alignment, tree Tree, model subst.Model) ([]float64, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	if err := aln.Validate(model.AlphabetSize()); err != nil {
		return nil, err
	}
	if aln.Rows() != tree.Nodes() {
		return nil, ErrShapeMismatch
	}
	mats, err := subst.Matrices(model, tree.DistanceToParent)
	if err != nil {
		return nil, err
	}

	return SubLogLikeForMatrices(aln, tree, mats, model.RootProb)
}

// SubLogLikeMixture evaluates every component of a mixture independently,
// returning one per-column slice per component ("hidden" categories are
// independent, so this is a loop over SubLogLike).
func SubLogLikeMixture(aln Alignment, tree Tree, mix subst.Mixture) ([][]float64, error) {
	if err := mix.Validate(); err != nil {
		return nil, err
	}

	out := make([][]float64, len(mix))
	for h, model := range mix {
		ll, err := SubLogLike(aln, tree, model)
		if err != nil {
			return nil, err
		}
		out[h] = ll
	}

	return out, nil
}

// SubLogLikeCached is SubLogLike with per-branch matrices taken from a
// discretized cache instead of direct exponentials.
func SubLogLikeCached(aln Alignment, tree Tree, cache *subst.Cache, rootProb []float64) ([]float64, error) {
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	mats, err := cache.Matrices(tree.DistanceToParent)
	if err != nil {
		return nil, err
	}

	return SubLogLikeForMatrices(aln, tree, mats, rootProb)
}

// SubLogLikeForMatrices — the pruning core over precomputed matrices.
//
// Algorithm Outline:
//  1. Validate shapes, the tree invariants and the token range (alphabet
//     size is taken from the matrices).
//  2. Per column: initialize each node's likelihood vector — the indicator
//     of its token, or all-ones for a gap.
//  3. Sweep child = R−1 … 1 (strict postorder under the preorder bound):
//     fold subMatrix[child]·likelihood[child] into the parent's vector,
//     then divide the parent by its maximum and add log(max) to the
//     column's normalizer. The rescale is the mandatory underflow guard.
//  4. Column result = normalizer + log(likelihood[root]·rootProb).
//
// Self-parented padding rows fold into themselves through an identity
// matrix with an all-ones vector, which changes nothing; all-gap padding
// columns score as plain stationary mass and are the caller's to strip.
//
// Columns are independent and processed in parallel ranges.
func SubLogLikeForMatrices(aln Alignment, tree Tree, subMatrix []*mat.Dense, rootProb []float64) ([]float64, error) {
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	if len(subMatrix) != tree.Nodes() {
		return nil, ErrShapeMismatch
	}
	alpha := len(rootProb)
	if err := aln.Validate(alpha); err != nil {
		return nil, err
	}
	if aln.Rows() != tree.Nodes() {
		return nil, ErrShapeMismatch
	}
	for _, m := range subMatrix {
		r, c := m.Dims()
		if r != alpha || c != alpha {
			return nil, ErrShapeMismatch
		}
	}

	R, C := aln.Rows(), aln.Cols()
	out := make([]float64, C)
	parallel.Range(0, C, 0, func(low, high int) {
		lik := make([][]float64, R)
		for r := range lik {
			lik[r] = make([]float64, alpha)
		}
		folded := make([]float64, alpha)

		for c := low; c < high; c++ {
			for r := 0; r < R; r++ {
				tokenVector(aln[r][c], lik[r])
			}

			logNorm := 0.0
			for child := R - 1; child >= 1; child-- {
				parent := tree.ParentIndex[child]
				m := subMatrix[child]
				for i := 0; i < alpha; i++ {
					dot := 0.0
					for j := 0; j < alpha; j++ {
						dot += m.At(i, j) * lik[child][j]
					}
					folded[i] = dot
				}

				p := lik[parent]
				maxLike := 0.0
				for i := 0; i < alpha; i++ {
					p[i] *= folded[i]
					if p[i] > maxLike {
						maxLike = p[i]
					}
				}
				for i := 0; i < alpha; i++ {
					p[i] /= maxLike
				}
				logNorm += math.Log(maxLike)
			}

			rootDot := 0.0
			for i := 0; i < alpha; i++ {
				rootDot += lik[0][i] * rootProb[i]
			}
			out[c] = logNorm + math.Log(rootDot)
		}
	})

	return out, nil
}

// tokenVector writes the likelihood row of one token: an indicator vector
// for an observed symbol, all ones for a gap.
func tokenVector(token int, dst []float64) {
	if token < 0 {
		for i := range dst {
			dst[i] = 1
		}

		return
	}
	for i := range dst {
		dst[i] = 0
	}
	dst[token] = 1
}
