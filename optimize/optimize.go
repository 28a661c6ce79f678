package optimize

import (
	"errors"
	"math"
)

// ErrMaxSteps indicates a MaxSteps that is negative or not a power of two.
var ErrMaxSteps = errors.New("optimize: MaxSteps must be a non-negative power of two")

// Options configures a bounded run.
//
// Fields:
//   - MaxSteps            — hard iteration cap; must be 0 or a power of two.
//   - MinRelativeIncrease — stop once (cur−prev)/|prev| falls to or below
//     this threshold (default 1e-3 via DefaultOptions).
type Options struct {
	MaxSteps            int
	MinRelativeIncrease float64
}

// DefaultOptions returns the canonical configuration: 64 iterations capped,
// 1e-3 minimum relative improvement.
func DefaultOptions() Options {
	return Options{MaxSteps: 64, MinRelativeIncrease: 1e-3}
}

// Bounded — iterative improvement with a hard cap and best-state tracking.
//
// Description:
//
//	Carries (previousScore, current, best) through at most MaxSteps
//	iterations. Each live iteration shifts current into previous, applies
//	update, rescores, and advances best when the new score strictly
//	improves on it. Iteration continues while the score strictly rose AND
//	either no previous score exists (the −Inf escape, so the very first
//	iteration always executes) or the relative increase beats
//	MinRelativeIncrease. Once the predicate fails, remaining iterations
//	are no-ops: the cap is a fixed amount of work, early stopping only
//	freezes the state.
//
// Returns the best (score, state) pair observed, including the initial
// state's own score — the result can never be worse than the input.
//
// Errors: ErrMaxSteps when MaxSteps is negative or not a power of two.
//
// Complexity: exactly MaxSteps iteration slots; score/update calls only in
// live iterations.
func Bounded[S any](score func(S) float64, update func(S) S, init S, opts Options) (float64, S, error) {
	if opts.MaxSteps < 0 || opts.MaxSteps&(opts.MaxSteps-1) != 0 {
		var zero S

		return 0, zero, ErrMaxSteps
	}

	prevScore := math.Inf(-1)
	curScore, curState := score(init), init
	bestScore, bestState := curScore, curState

	stopped := false
	for i := 0; i < opts.MaxSteps; i++ {
		if stopped || !carryOn(prevScore, curScore, opts.MinRelativeIncrease) {
			stopped = true

			continue // no-op slot: state frozen, cap still honored
		}

		prevScore = curScore
		curState = update(curState)
		curScore = score(curState)
		if curScore > bestScore {
			bestScore, bestState = curScore, curState
		}
	}

	return bestScore, bestState, nil
}

// carryOn is the continuation predicate: a strict rise, and either no
// previous score yet (−Inf) or a relative increase above the threshold.
func carryOn(prev, cur, minInc float64) bool {
	if !(cur > prev) {
		return false
	}
	if math.IsInf(prev, -1) {
		return true
	}

	return (cur-prev)/math.Abs(prev) > minInc
}
