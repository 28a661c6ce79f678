// Package ode integrates small systems of ordinary differential equations
// over a time interval, producing the final state and the visited trajectory.
//
// 🚀 What is ode?
//
//	Two interchangeable explicit Runge–Kutta strategies:
//	  • RK4    — classical fixed-step order-4 integration on a geometric
//	    time schedule (or an explicit caller-supplied schedule)
//	  • Dopri5 — embedded Dormand–Prince RK5(4) with either a constant
//	    step or a PI(D)-controlled adaptive step driven by rtol/atol
//
// ✨ Key features:
//   - Dimension-agnostic: any DerivFunc over a float64 state vector
//   - Geometric RK4 schedules: dense steps near t=0 where stiff indel
//     systems move fastest, sparse steps toward t
//   - Explicit schedules: evaluate exactly at caller-chosen times
//   - Deterministic: no randomness, bounded work, explicit errors
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/phylik/ode"
//
//	f := func(t float64, y []float64) []float64 { ... }
//	opts := ode.DefaultRK4Options()
//	sol, err := ode.RK4(f, []float64{1, 0, 0, 0}, 0.5, &opts)
//	_ = sol.Y // state at t=0.5
//
// Performance:
//
//   - RK4:    O(Steps) derivative evaluations ×4
//   - Dopri5: O(accepted+rejected steps) evaluations ×6 (FSAL reuses the 7th)
//
// See example_test.go for worked integrations.
package ode
