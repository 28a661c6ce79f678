// Package indel derives 3-state transition probability matrices for a
// continuous-time insertion/deletion process over a branch of a
// phylogenetic tree.
//
// 🚀 What is indel?
//
//	The process is parameterized by an insertion rate λ, a deletion rate μ,
//	and geometric extension probabilities x (insertions) and y (deletions).
//	For a branch of length t, MatrixAt returns a row-stochastic 3×3 matrix
//	over the states {Match, Insert, Delete}, selecting among three regimes:
//	  1. t = 0        — exact closed form, no continuous-time effect yet
//	  2. t very large — asymptotic closed form from the survival functions
//	  3. otherwise    — numerical integration of a 4-variable counts ODE
//	    (a, b, u, q), converted to matrix entries and renormalized
//
// ✨ Key features:
//   - Degeneracy guards: near-singular denominators never surface as NaN/Inf
//   - Pluggable integration: adaptive Dopri5 (default) or fixed-step RK4
//   - Count-based scoring: log-likelihood of observed transition counts
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/phylik/indel"
//
//	p := indel.Params{Lambda: 0.1, Mu: 0.12, X: 0.4, Y: 0.4}
//	opts := indel.DefaultOptions()
//	m, err := indel.MatrixAt(0.5, p, 20, &opts)
//	_ = m // m[indel.Match][indel.Insert] etc.
//
// Performance: one ODE solve per matrix in the integrated regime; closed
// forms elsewhere. All work is bounded and deterministic.
//
// See example_test.go for a worked branch scoring.
package indel
