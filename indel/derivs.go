package indel

import "github.com/katalvlaran/phylik/ode"

// InitCounts is the counts state at t = 0: one surviving match, nothing
// else yet.
func InitCounts() Counts {
	return Counts{1, 0, 0, 0}
}

// Derivs evaluates the time derivative of the counts state (a, b, u, q)
// under params p.
//
// Numerical guards (never errors, never NaN/Inf):
//   - When the shared denominator is not strictly positive, the closed-form
//     degenerate derivative (−λ−μ, λ, λ, 0) applies instead.
//   - A vanishing 1−M factor is floored at the smallest positive normal
//     float64.
func Derivs(t float64, counts Counts, p Params) Counts {
	lam, mu, x, y := p.Lambda, p.Mu, p.X, p.Y
	a, b, u, q := counts[0], counts[1], counts[2], counts[3]

	L := Survival(t, lam, x)
	M := Survival(t, mu, y)
	num := mu * (b*M + q*(1-M))
	denom := M*(1-y) + L*q*y + L*M*(y*(1+b-q)-1)
	if !(denom > 0) { // also catches NaN
		return Counts{-lam - mu, lam, lam, 0}
	}
	oneMinusM := minPositive
	if M < 1 {
		oneMinusM = 1 - M
	}

	return Counts{
		mu*b*u*L*M*(1-y)/denom - (lam+mu)*a,
		-b*num*L/denom + lam*(1-b),
		-u*num*L/denom + lam*a,
		((M*(1-L)-q*L*(1-M))*num/denom - q*lam/(1-y)) / oneMinusM,
	}
}

// derivFunc adapts Derivs to the ode package's slice-based contract.
func derivFunc(p Params) ode.DerivFunc {
	return func(t float64, y []float64) []float64 {
		d := Derivs(t, Counts{y[0], y[1], y[2], y[3]}, p)

		return []float64{d[0], d[1], d[2], d[3]}
	}
}

// IntegrateCounts solves the counts ODE from 0 to t with the configured
// integrator and returns the final (a, b, u, q) state.
//
// Errors: integrator configuration errors from the ode package.
func IntegrateCounts(t float64, p Params, opts *Options) (Counts, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}

	y0 := InitCounts()
	init := []float64{y0[0], y0[1], y0[2], y0[3]}

	var (
		sol ode.Solution
		err error
	)
	switch cfg.Method {
	case MethodRK4:
		rk4 := cfg.RK4
		if rk4.MaxFirstStep == 0 && rk4.Times == nil {
			// First step bounded by the reciprocal harmonic rate of the
			// process, so fast processes start with fine resolution.
			rk4.MaxFirstStep = 1/p.Lambda + 1/p.Mu
		}
		sol, err = ode.RK4(derivFunc(p), init, t, &rk4)
	default:
		sol, err = ode.Dopri5(derivFunc(p), init, t, &cfg.Dopri)
	}
	if err != nil {
		return Counts{}, err
	}

	return Counts{sol.Y[0], sol.Y[1], sol.Y[2], sol.Y[3]}, nil
}
