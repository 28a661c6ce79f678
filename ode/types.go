// Package ode defines derivative contracts, options and solution containers
// shared by the RK4 and Dopri5 integrators.
package ode

import "errors"

var (
	// ErrNoStepControl indicates the Dopri5 integrator was configured with
	// neither a constant step nor any tolerance (rtol/atol).
	ErrNoStepControl = errors.New("ode: specify Step, RTol, or ATol")
	// ErrBadInterval indicates a negative integration target time.
	ErrBadInterval = errors.New("ode: target time must be non-negative")
	// ErrBadState indicates an empty initial state vector.
	ErrBadState = errors.New("ode: initial state must be non-empty")
	// ErrBadSchedule indicates an explicit evaluation schedule that is empty
	// or not strictly increasing from its first entry.
	ErrBadSchedule = errors.New("ode: evaluation schedule must be non-empty and non-decreasing")
	// ErrTooManySteps indicates the adaptive controller failed to reach the
	// target time within MaxSteps accepted-or-rejected attempts.
	ErrTooManySteps = errors.New("ode: adaptive integration exceeded MaxSteps")
)

// DerivFunc evaluates the derivative of the state vector at time t.
// The returned slice must have the same length as y and must not alias it.
type DerivFunc func(t float64, y []float64) []float64

// Solution is the outcome of an integration run.
//
// Y is the state at the target time. Ts/Ys carry the full trajectory,
// including the initial state at Ts[0].
type Solution struct {
	Y  []float64
	Ts []float64
	Ys [][]float64
}

// RK4Options configures the fixed-step classical Runge–Kutta integrator.
//
// Fields:
//   - Steps        — number of integration steps when Times is nil (default 100).
//   - MaxFirstStep — upper bound on the first step of the internally built
//     geometric schedule; 0 leaves the bound at t/Steps. Callers integrating
//     rate processes typically pass the reciprocal of a characteristic rate.
//   - Times        — explicit evaluation schedule. When non-nil it replaces
//     the internal schedule entirely; Times[0] is the start time.
type RK4Options struct {
	Steps        int
	MaxFirstStep float64
	Times        []float64
}

// DefaultRK4Options returns the canonical RK4 configuration: 100 steps on an
// internally built geometric schedule.
func DefaultRK4Options() RK4Options {
	return RK4Options{Steps: 100}
}

// DopriOptions configures the adaptive Dormand–Prince RK5(4) integrator.
//
// Fields:
//   - Step     — constant step size; when positive, tolerances are ignored.
//   - RTol     — relative tolerance for the PI step controller.
//   - ATol     — absolute tolerance for the PI step controller.
//   - MaxSteps — hard cap on step attempts (default 4096).
//
// At least one of Step, RTol, ATol must be positive; otherwise Dopri5
// returns ErrNoStepControl.
type DopriOptions struct {
	Step     float64
	RTol     float64
	ATol     float64
	MaxSteps int
}

// DefaultDopriOptions returns the canonical adaptive configuration:
// rtol = atol = 1e-3, no constant step, 4096 attempt cap.
func DefaultDopriOptions() DopriOptions {
	return DopriOptions{RTol: 1e-3, ATol: 1e-3, MaxSteps: 4096}
}
