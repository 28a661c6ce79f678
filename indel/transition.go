package indel

import "math"

// ZeroTimeMatrix is the exact transition matrix at t = 0: no continuous-time
// event has fired, so only the geometric extension probabilities act.
func ZeroTimeMatrix(p Params) Matrix {
	return Matrix{
		{1, 0, 0},
		{1 - p.X, p.X, 0},
		{1 - p.Y, 0, p.Y},
	}
}

// LargeTimeMatrix is the asymptotic transition matrix for saturated
// branches, built from the gap-opening probabilities g = 1−Survival(t,λ,x)
// and r = 1−Survival(t,μ,y).
func LargeTimeMatrix(t float64, p Params) Matrix {
	g := 1 - Survival(t, p.Lambda, p.X)
	r := 1 - Survival(t, p.Mu, p.Y)

	return Matrix{
		{(1 - g) * (1 - r), g, (1 - g) * r},
		{(1 - g) * (1 - r), g, (1 - g) * r},
		{1 - r, 0, r},
	}
}

// FromCounts assembles the small-time transition matrix from an integrated
// counts state (a, b, u, q) at time t.
//
// The 1−L and 1−M factors are floored at the smallest positive normal
// float64 so that rate-zero parameter corners divide by a large finite
// value instead of zero. With normalize set, negative entries are clipped
// to 0 and each row is rescaled to sum to 1.
func FromCounts(t float64, p Params, counts Counts, normalize bool) Matrix {
	a, b, u, q := counts[0], counts[1], counts[2], counts[3]
	L := Survival(t, p.Lambda, p.X)
	M := Survival(t, p.Mu, p.Y)
	oneMinusL, oneMinusM := minPositive, minPositive
	if L < 1 {
		oneMinusL = 1 - L
	}
	if M < 1 {
		oneMinusM = 1 - M
	}

	ins := b + q*(1-M)/M
	m := Matrix{
		{a, b, 1 - a - b},
		{u * L / oneMinusL, 1 - ins*L/oneMinusL, (ins - u) * L / oneMinusL},
		{(1 - a - u) * M / oneMinusM, q, 1 - q - (1-a-u)*M/oneMinusM},
	}
	if normalize {
		m = m.normalized()
	}

	return m
}

// normalized clips negative entries to 0 and renormalizes each row to sum
// to 1, flooring the row sum so an all-zero row cannot divide by zero.
func (m Matrix) normalized() Matrix {
	for i := range m {
		sum := 0.0
		for j := range m[i] {
			if m[i][j] < 0 {
				m[i][j] = 0
			}
			sum += m[i][j]
		}
		if sum < minPositive {
			sum = minPositive
		}
		for j := range m[i] {
			m[i][j] /= sum
		}
	}

	return m
}

// MatrixAt — transition matrix of the indel process for a branch of
// length t.
//
// Regime selection, in priority order:
//  1. t = 0, or a fully inert process (λ = μ = 0): ZeroTimeMatrix. An inert
//     process never fires, so the zero-time form holds for every t.
//  2. Saturated branch (probablyUndetectable): LargeTimeMatrix.
//  3. Otherwise: integrate the counts ODE from 0 to max(t, tMin) and
//     assemble via FromCounts.
//
// Errors:
//   - ErrBadTime     — t < 0.
//   - ErrBadParams   — out-of-range params.
//   - ErrBadAlphabet — alphabetSize < 2.
//   - integrator configuration errors from the ode package.
func MatrixAt(t float64, p Params, alphabetSize int, opts *Options) (Matrix, error) {
	if t < 0 {
		return Matrix{}, ErrBadTime
	}
	if err := p.Validate(); err != nil {
		return Matrix{}, err
	}
	if alphabetSize < 2 {
		return Matrix{}, ErrBadAlphabet
	}

	if t == 0 || (p.Lambda == 0 && p.Mu == 0) {
		return ZeroTimeMatrix(p), nil
	}

	tSafe := math.Max(t, tMin)
	if probablyUndetectable(tSafe, p, alphabetSize) {
		return LargeTimeMatrix(tSafe, p), nil
	}

	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	counts, err := IntegrateCounts(tSafe, p, &cfg)
	if err != nil {
		return Matrix{}, err
	}

	return FromCounts(tSafe, p, counts, cfg.Normalize), nil
}

// DummyRootMatrix is the placeholder transition matrix attached to the root
// node, which has no incoming branch. Its nonzero pattern licenses the
// root's own states when multiplied against observed transition counts.
func DummyRootMatrix() Matrix {
	return Matrix{
		{0, 1, 0},
		{1, 1, 0},
		{1, 0, 0},
	}
}
