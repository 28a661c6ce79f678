// Package subst models continuous-time substitution over an alphabet:
// generator (rate) matrices, root frequencies, and the per-branch
// transition matrices obtained by matrix exponentiation.
//
// 🚀 What is subst?
//
//	A substitution model is a generator matrix Q (off-diagonal entries are
//	non-negative rates, each diagonal entry is the negated row sum) plus a
//	root frequency vector. The transition matrix for a branch of length t
//	is expm(Q·t). Package subst provides:
//	  • Normalization: raw matrices → valid generators, raw weights → simplex
//	  • Reversible construction: detailed balance from a symmetric core
//	  • Direct mode: one exponential per distinct branch length
//	  • Discretized mode: a logarithmic time grid of precomputed
//	    exponentials with O(1) bucket lookup per branch
//
// ✨ Key features:
//   - gonum-backed: dense matrices and expm via gonum.org/v1/gonum/mat
//   - Mixtures: a Mixture is simply a slice of independent Models
//   - Deterministic: pure functions, explicit sentinel errors
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/phylik/subst"
//
//	q := subst.NormalizeRate(raw)                 // valid generator
//	model := subst.Model{Rate: q, RootProb: pi}
//	mats, err := subst.Matrices(model, branchLengths)
//
// Performance:
//
//   - Direct:      O(distinct lengths) exponentials of an A×A matrix
//   - Discretized: Steps+1 exponentials once, then O(log Steps) per lookup
//
// See example_test.go and grid_test.go for worked usage.
package subst
