package ode

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// RK4 — classical fixed-step Runge–Kutta integration of order 4.
//
// Description:
//
//	Advances y0 from time 0 (or Times[0]) to the target time t through a
//	sequence of 4-stage Runge–Kutta updates. Unless the caller supplies an
//	explicit schedule, step times follow a geometric progression from a
//	minimum first step min(t/Steps, MaxFirstStep) up to t, prepended with
//	the start point 0. The geometric spacing concentrates evaluations near
//	t=0, where rate-process derivative systems change fastest.
//
// Algorithm Outline:
//  1. Build the schedule ts = [0, geomspace(dt0, t, Steps)...], or take
//     opts.Times verbatim.
//  2. For each consecutive pair (tᵢ, tᵢ₊₁) with dt = tᵢ₊₁ − tᵢ:
//     k1 = f(tᵢ, y)
//     k2 = f(tᵢ+dt/2, y + dt·k1/2)
//     k3 = f(tᵢ+dt/2, y + dt·k2/2)
//     k4 = f(tᵢ+dt,   y + dt·k3)
//     y ← y + dt·(k1 + 2k2 + 2k3 + k4)/6
//  3. Record every intermediate state in the returned trajectory.
//
// Errors:
//   - ErrBadInterval — t < 0.
//   - ErrBadState    — empty y0.
//   - ErrBadSchedule — explicit Times empty or decreasing.
//
// Complexity: O(Steps) derivative evaluations ×4; O(Steps·len(y0)) memory
// for the trajectory.
func RK4(f DerivFunc, y0 []float64, t float64, opts *RK4Options) (Solution, error) {
	if t < 0 {
		return Solution{}, ErrBadInterval
	}
	if len(y0) == 0 {
		return Solution{}, ErrBadState
	}

	cfg := DefaultRK4Options()
	if opts != nil {
		cfg = *opts
	}
	if cfg.Steps <= 0 {
		cfg.Steps = DefaultRK4Options().Steps
	}

	ts, err := rk4Schedule(t, cfg)
	if err != nil {
		return Solution{}, err
	}

	y := append([]float64(nil), y0...)
	sol := Solution{
		Ts: ts,
		Ys: make([][]float64, 1, len(ts)),
	}
	sol.Ys[0] = append([]float64(nil), y0...)

	scratch := make([]float64, len(y0))
	for i := 0; i+1 < len(ts); i++ {
		ti, dt := ts[i], ts[i+1]-ts[i]
		y = rk4Step(f, ti, dt, y, scratch)
		sol.Ys = append(sol.Ys, append([]float64(nil), y...))
	}
	sol.Y = y

	return sol, nil
}

// rk4Schedule builds the evaluation times: the caller's explicit schedule
// when present, otherwise [0, geomspace(dt0, t, Steps)...].
func rk4Schedule(t float64, cfg RK4Options) ([]float64, error) {
	if cfg.Times != nil {
		if len(cfg.Times) == 0 {
			return nil, ErrBadSchedule
		}
		for i := 1; i < len(cfg.Times); i++ {
			if cfg.Times[i] < cfg.Times[i-1] {
				return nil, ErrBadSchedule
			}
		}

		return append([]float64(nil), cfg.Times...), nil
	}

	if t == 0 {
		return []float64{0}, nil
	}

	dt0 := t / float64(cfg.Steps)
	if cfg.MaxFirstStep > 0 {
		dt0 = math.Min(dt0, cfg.MaxFirstStep)
	}

	ts := make([]float64, 0, cfg.Steps+1)
	ts = append(ts, 0)
	ts = append(ts, geomspace(dt0, t, cfg.Steps)...)

	return ts, nil
}

// geomspace returns n points spaced geometrically from a to b inclusive.
// Requires a > 0 and n ≥ 1; for n == 1 the single point is b.
func geomspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = b

		return out
	}
	ratio := math.Pow(b/a, 1/float64(n-1))
	v := a
	for i := 0; i < n; i++ {
		out[i] = v
		v *= ratio
	}
	out[n-1] = b // pin the endpoint against rounding drift

	return out
}

// rk4Step performs one classical 4-stage update from (ti, y) over dt.
// scratch must have len(y) and is reused across calls to avoid allocation.
func rk4Step(f DerivFunc, ti, dt float64, y, scratch []float64) []float64 {
	k1 := f(ti, y)
	floats.AddScaledTo(scratch, y, dt/2, k1)
	k2 := f(ti+dt/2, scratch)
	floats.AddScaledTo(scratch, y, dt/2, k2)
	k3 := f(ti+dt/2, scratch)
	floats.AddScaledTo(scratch, y, dt, k3)
	k4 := f(ti+dt, scratch)

	next := make([]float64, len(y))
	for j := range y {
		next[j] = y[j] + dt*(k1[j]+2*k2[j]+2*k3[j]+k4[j])/6
	}

	return next
}
