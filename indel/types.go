// Package indel - parameter, matrix and option types for the indel
// transition model.
package indel

import (
	"errors"

	"github.com/katalvlaran/phylik/ode"
)

var (
	// ErrBadParams indicates negative rates or extension probabilities
	// outside [0, 1).
	ErrBadParams = errors.New("indel: rates must be ≥ 0 and extension probabilities in [0,1)")
	// ErrBadAlphabet indicates an alphabet size below 2.
	ErrBadAlphabet = errors.New("indel: alphabet size must be at least 2")
	// ErrBadTime indicates a negative branch length.
	ErrBadTime = errors.New("indel: branch length must be non-negative")
)

// minPositive is the smallest positive normal float64. It floors
// denominators and log arguments so that degenerate inputs produce large
// finite values rather than NaN or Inf; its reciprocal is still finite.
const minPositive = 2.2250738585072014e-308

// tMin clamps branch lengths fed to the ODE integrator, which behaves
// singularly as t → 0. The t = 0 case never reaches the integrator.
const tMin = 1e-3

// kappa is the detectability threshold multiplier: once the expected indel
// load exceeds kappa · alphabetSize^(expected match run length), the branch
// is treated as saturated and the asymptotic matrix applies.
const kappa = 2.0

// State indexes rows and columns of a transition Matrix.
type State int

const (
	// Match state: an aligned residue pair survives the branch.
	Match State = iota
	// Insert state: a residue present only in the child sequence.
	Insert
	// Delete state: a residue present only in the parent sequence.
	Delete
)

// Params holds the four scalars of the indel process.
//
// Fields:
//   - Lambda — insertion rate λ ≥ 0
//   - Mu     — deletion rate μ ≥ 0
//   - X      — insertion extension probability, in [0, 1)
//   - Y      — deletion extension probability, in [0, 1)
type Params struct {
	Lambda float64
	Mu     float64
	X      float64
	Y      float64
}

// Validate reports ErrBadParams unless all four scalars are in range.
func (p Params) Validate() error {
	if p.Lambda < 0 || p.Mu < 0 ||
		p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
		return ErrBadParams
	}

	return nil
}

// Matrix is a row-stochastic 3×3 transition matrix over {Match, Insert,
// Delete}: Matrix[from][to] is the probability of moving from state `from`
// to state `to` along the branch.
type Matrix [3][3]float64

// Counts is the 4-vector (a, b, u, q) of integrated sufficient statistics
// from which the small-time transition matrix is assembled.
type Counts [4]float64

// Method selects the numerical integrator behind the small-time regime.
type Method int

const (
	// MethodDopri integrates with the adaptive Dormand–Prince solver.
	MethodDopri Method = iota
	// MethodRK4 integrates with the fixed-step RK4 solver on a geometric
	// schedule seeded from the process rates.
	MethodRK4
)

// Options configures MatrixAt's integrated regime.
//
// Fields:
//   - Method    — MethodDopri (default) or MethodRK4.
//   - Dopri     — adaptive solver settings (default rtol = atol = 1e-3).
//   - RK4       — fixed-step solver settings (default 100 geometric steps).
//   - Normalize — clip negative entries and renormalize rows (default true).
type Options struct {
	Method    Method
	Dopri     ode.DopriOptions
	RK4       ode.RK4Options
	Normalize bool
}

// DefaultOptions returns the canonical configuration: adaptive Dopri5 at
// rtol = atol = 1e-3 with row renormalization enabled.
func DefaultOptions() Options {
	return Options{
		Method:    MethodDopri,
		Dopri:     ode.DefaultDopriOptions(),
		RK4:       ode.DefaultRK4Options(),
		Normalize: true,
	}
}
