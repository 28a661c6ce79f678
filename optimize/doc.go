// Package optimize drives generic iterative improvement under a hard,
// statically-known iteration cap, tracking the best state ever visited.
//
// 🚀 What is optimize?
//
//	A caller supplies a score function, an update function and an initial
//	state. Bounded runs exactly enumerable work: at most MaxSteps update
//	rounds, stopping early once the score stops improving by more than a
//	relative threshold. Whatever happens, the returned pair is the best
//	(score, state) observed across the whole run, the initial state
//	included.
//
// ✨ Key features:
//   - Hard cap: MaxSteps bounds total work regardless of convergence
//   - Power-of-two discipline: MaxSteps must be 0 or a power of two,
//     keeping run lengths composable by halving
//   - First step always fires: the −Inf sentinel for "no previous score"
//     bypasses the relative-increase threshold once
//   - Best-state memory: non-monotone updates cannot lose ground
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/phylik/optimize"
//
//	best, state, err := optimize.Bounded(score, update, init, optimize.Options{
//	  MaxSteps:            64,
//	  MinRelativeIncrease: 1e-3,
//	})
//
// Performance: exactly one score evaluation for the initial state plus one
// score and one update per executed iteration.
package optimize
