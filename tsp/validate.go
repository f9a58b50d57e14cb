// Package tsp - option validation and defaulting.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only ErrInvalidOptions wrapped
//     with the offending field.
package tsp

import (
	"fmt"
	"math"
	"time"
)

// ValidateOptions checks Options for values Solve cannot honour.
// Zero values are legal (they select defaults); negatives are not.
//
// Complexity: O(1).
func ValidateOptions(opts Options) error {
	budgets := []struct {
		name string
		v    time.Duration
	}{
		{"TimeLimit", opts.TimeLimit},
		{"ProbeBudget", opts.ProbeBudget},
		{"TwoOptBudget", opts.TwoOptBudget},
		{"RelocateBudget", opts.RelocateBudget},
	}
	for _, b := range budgets {
		if b.v < 0 {
			return fmt.Errorf("%s=%s is negative: %w", b.name, b.v, ErrInvalidOptions)
		}
	}
	if opts.ProbeStride < 0 {
		return fmt.Errorf("ProbeStride=%d is negative: %w", opts.ProbeStride, ErrInvalidOptions)
	}
	if opts.Lookahead < 0 || opts.Lookahead > MaxLookahead {
		return fmt.Errorf("Lookahead=%d outside [0..%d]: %w", opts.Lookahead, MaxLookahead, ErrInvalidOptions)
	}
	if math.IsNaN(opts.StartTemp) || math.IsNaN(opts.EndTemp) || opts.StartTemp < 0 || opts.EndTemp < 0 {
		return fmt.Errorf("temperatures %g→%g must be non-negative: %w", opts.StartTemp, opts.EndTemp, ErrInvalidOptions)
	}
	if opts.StartTemp < opts.EndTemp {
		return fmt.Errorf("StartTemp %g below EndTemp %g: %w", opts.StartTemp, opts.EndTemp, ErrInvalidOptions)
	}

	return nil
}

// withDefaults fills zero-valued knobs. TimeLimit is defaulted only when no
// per-stage budget is set either, so callers that drive the stages purely by
// explicit budgets keep exact control. Temperatures are only defaulted when
// both are zero, so an explicit "greedy acceptance" schedule (x→0) survives.
func withDefaults(opts Options) Options {
	if opts.TimeLimit == 0 && opts.ProbeBudget == 0 && opts.TwoOptBudget == 0 && opts.RelocateBudget == 0 {
		opts.TimeLimit = DefaultTimeLimit
	}
	if opts.ProbeStride == 0 {
		opts.ProbeStride = DefaultProbeStride
	}
	if opts.Lookahead == 0 {
		opts.Lookahead = DefaultLookahead
	}
	if opts.StartTemp == 0 && opts.EndTemp == 0 {
		opts.StartTemp = DefaultStartTemp
		opts.EndTemp = DefaultEndTemp
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}

	return opts
}
