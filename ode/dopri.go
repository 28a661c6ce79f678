package ode

import "math"

// Dormand–Prince RK5(4) Butcher tableau.
var (
	dopriC = [7]float64{0, 1. / 5, 3. / 10, 4. / 5, 8. / 9, 1, 1}
	dopriA = [7][6]float64{
		{},
		{1. / 5},
		{3. / 40, 9. / 40},
		{44. / 45, -56. / 15, 32. / 9},
		{19372. / 6561, -25360. / 2187, 64448. / 6561, -212. / 729},
		{9017. / 3168, -355. / 33, 46732. / 5247, 49. / 176, -5103. / 18656},
		{35. / 384, 0, 500. / 1113, 125. / 192, -2187. / 6784, 11. / 84},
	}
	// 5th-order weights (the propagated solution).
	dopriB5 = [7]float64{35. / 384, 0, 500. / 1113, 125. / 192, -2187. / 6784, 11. / 84, 0}
	// 4th-order embedded weights (error estimation only).
	dopriB4 = [7]float64{5179. / 57600, 0, 7571. / 16695, 393. / 640, -92097. / 339200, 187. / 2100, 1. / 40}
)

// Step-controller tuning (Hairer-style PI controller for a 5th-order pair).
const (
	dopriSafety = 0.9
	dopriAlpha  = 0.14 // ≈ 1/5 − 0.75·beta
	dopriBeta   = 0.08
	dopriFacMin = 0.2
	dopriFacMax = 10.0
)

// Dopri5 — adaptive embedded Dormand–Prince integration of order 5(4).
//
// Description:
//
//	Advances y0 from time 0 to t. With opts.Step > 0 the integrator walks a
//	constant-step grid (final step truncated to land exactly on t). Otherwise
//	a PI(D) controller adapts the step so that the embedded 4th-order error
//	estimate stays below the mixed tolerance atol + rtol·|y| in RMS norm.
//
// Errors:
//   - ErrBadInterval   — t < 0.
//   - ErrBadState      — empty y0.
//   - ErrNoStepControl — Step, RTol and ATol all unset.
//   - ErrTooManySteps  — the controller could not reach t within MaxSteps
//     attempts (accepted and rejected steps both count).
//
// Complexity: 7 derivative evaluations per attempted step; O(steps·len(y0))
// memory for the trajectory.
func Dopri5(f DerivFunc, y0 []float64, t float64, opts *DopriOptions) (Solution, error) {
	if t < 0 {
		return Solution{}, ErrBadInterval
	}
	if len(y0) == 0 {
		return Solution{}, ErrBadState
	}

	cfg := DefaultDopriOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.Step <= 0 && cfg.RTol <= 0 && cfg.ATol <= 0 {
		return Solution{}, ErrNoStepControl
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultDopriOptions().MaxSteps
	}

	sol := Solution{
		Ts: []float64{0},
		Ys: [][]float64{append([]float64(nil), y0...)},
	}
	y := append([]float64(nil), y0...)
	if t == 0 {
		sol.Y = y

		return sol, nil
	}

	if cfg.Step > 0 {
		return dopriConstant(f, y, t, cfg, sol)
	}

	return dopriAdaptive(f, y, t, cfg, sol)
}

// dopriConstant walks a fixed grid of size cfg.Step without error control.
func dopriConstant(f DerivFunc, y []float64, t float64, cfg DopriOptions, sol Solution) (Solution, error) {
	cur := 0.0
	for n := 0; cur < t; n++ {
		if n >= cfg.MaxSteps {
			return Solution{}, ErrTooManySteps
		}
		h := math.Min(cfg.Step, t-cur)
		y, _ = dopriStep(f, cur, h, y)
		cur += h
		sol.Ts = append(sol.Ts, cur)
		sol.Ys = append(sol.Ys, append([]float64(nil), y...))
	}
	sol.Y = y

	return sol, nil
}

// dopriAdaptive advances with a PI-controlled step until t is reached.
func dopriAdaptive(f DerivFunc, y []float64, t float64, cfg DopriOptions, sol Solution) (Solution, error) {
	cur := 0.0
	h := t / 64 // conservative starter; the controller reshapes it quickly
	errPrev := 1.0
	for attempt := 0; cur < t; attempt++ {
		if attempt >= cfg.MaxSteps {
			return Solution{}, ErrTooManySteps
		}
		h = math.Min(h, t-cur)
		next, errEst := dopriStep(f, cur, h, y)
		errNorm := dopriErrNorm(errEst, y, next, cfg.RTol, cfg.ATol)
		if errNorm <= 1 {
			cur += h
			y = next
			sol.Ts = append(sol.Ts, cur)
			sol.Ys = append(sol.Ys, append([]float64(nil), y...))
			fac := dopriFacMax
			if errNorm > 0 {
				fac = dopriSafety * math.Pow(errNorm, -dopriAlpha) * math.Pow(errPrev, dopriBeta)
			}
			h *= math.Min(dopriFacMax, math.Max(dopriFacMin, fac))
			errPrev = math.Max(errNorm, 1e-4)
		} else {
			h *= math.Max(dopriFacMin, dopriSafety*math.Pow(errNorm, -0.2))
		}
	}
	sol.Y = y

	return sol, nil
}

// dopriStep performs one 7-stage Dormand–Prince step from (ti, y) over h,
// returning the 5th-order solution and the embedded error estimate.
func dopriStep(f DerivFunc, ti, h float64, y []float64) (next, errEst []float64) {
	n := len(y)
	var k [7][]float64
	stage := make([]float64, n)
	for s := 0; s < 7; s++ {
		copy(stage, y)
		for p := 0; p < s; p++ {
			if a := dopriA[s][p]; a != 0 {
				for j := 0; j < n; j++ {
					stage[j] += h * a * k[p][j]
				}
			}
		}
		k[s] = f(ti+dopriC[s]*h, stage)
	}

	next = make([]float64, n)
	errEst = make([]float64, n)
	for j := 0; j < n; j++ {
		var hi, lo float64
		for s := 0; s < 7; s++ {
			hi += dopriB5[s] * k[s][j]
			lo += dopriB4[s] * k[s][j]
		}
		next[j] = y[j] + h*hi
		errEst[j] = h * (hi - lo)
	}

	return next, errEst
}

// dopriErrNorm folds the componentwise error into a scaled RMS norm; a value
// of at most 1 means the step satisfies atol + rtol·|y|.
func dopriErrNorm(errEst, y, next []float64, rtol, atol float64) float64 {
	var sum float64
	for j := range errEst {
		scale := atol + rtol*math.Max(math.Abs(y[j]), math.Abs(next[j]))
		if scale == 0 {
			scale = math.SmallestNonzeroFloat64
		}
		r := errEst[j] / scale
		sum += r * r
	}

	return math.Sqrt(sum / float64(len(errEst)))
}
