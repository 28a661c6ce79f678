// Package score assembles the full log-likelihood of an alignment/tree
// pair under a substitution model and an indel process: the summed
// per-column substitution term plus the summed per-branch indel term.
//
// 🚀 What is score?
//
//	The substitution term comes from prune.SubLogLike, summed over
//	columns. The indel term scores each branch's observed 3×3 transition
//	counts against the log of that branch's indel transition matrix (the
//	root, which has no incoming branch, is scored against a fixed
//	placeholder matrix). Matrix entries are floored at the smallest
//	positive normal float64 before the log, so structural zeros penalize
//	heavily but finitely.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/phylik/score"
//
//	totals, err := score.Total(aln, tree, mix, ip, transCounts, nil)
//	_ = totals.Subst + totals.Indel
//
// Performance: one pruning pass plus one indel matrix per branch.
package score
