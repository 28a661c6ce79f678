// Package prune computes per-column substitution log-likelihoods of a
// multiple sequence alignment on a phylogenetic tree by Felsenstein's
// pruning algorithm.
//
// 🚀 What is prune?
//
//	The tree lives in two flat arrays addressed by node index: a distance
//	to the parent and a parent index, with nodes in preorder so that
//	parentIndex[i] ≤ i and the root sits at index 0. One backwards sweep
//	(index R−1 down to 1) therefore visits every child before its parent —
//	a single-pass postorder without any pointer graph.
//
//	Per column, each node carries a partial likelihood vector over the
//	alphabet. A child folds into its parent through the child's branch
//	transition matrix; after every fold the parent's vector is divided by
//	its maximum and the log of that maximum accumulated, which is the
//	mandatory underflow guard for deep trees.
//
// ✨ Key features:
//   - Flat-array trees: preorder index arrays, cache-friendly postorder
//   - Mandatory rescaling: likelihoods never underflow to 0
//   - Gap tokens (−1) are neutral: an all-ones likelihood row
//   - Padding: rows/columns padded to shape targets are provably inert
//   - Parallel columns: independent columns fan out via pargo
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/phylik/prune"
//
//	ll, err := prune.SubLogLike(aln, tree, model)  // one value per column
//
// Performance: O(R·C·A²) multiply-adds per model component, columns
// processed in parallel ranges.
//
// See example_test.go for a worked two-leaf scoring.
package prune
