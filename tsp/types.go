package tsp

import (
	"errors"
	"time"
)

// Sentinel errors. Every message is prefixed with "tsp:" so it greps well in logs.
var (
	// ErrInvalidTour is returned by ValidateTour when a tour is not a permutation
	// of 0..n-1. Inside the solvers the same condition is a programming defect
	// and panics instead (see assertTour).
	ErrInvalidTour = errors.New("tsp: tour is not a permutation of all points")

	// ErrInvalidOptions is returned by ValidateOptions for negative budgets,
	// out-of-range lookahead/stride, or an inverted temperature schedule.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrStartOutOfRange is returned when a requested start city is not in [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start city out of range")
)

// Tour is an open visiting order: a permutation of point indices of length n.
// The edge after the last element wraps back to the first.
type Tour []int

// Stage names the pipeline step a StageReport refers to.
type Stage string

const (
	// StageProbe is a short Constructor + 2-opt run from one candidate start.
	StageProbe Stage = "probe"
	// StageGreedy is the tour rebuilt from the winning start.
	StageGreedy Stage = "greedy"
	// StageTwoOpt is the long 2-opt refinement.
	StageTwoOpt Stage = "two-opt"
	// StageRelocate is the simulated-annealing subsequence relocation.
	StageRelocate Stage = "relocate"
)

// StageReport is emitted at every stage boundary of Solve.
type StageReport struct {
	Stage   Stage         // which step finished
	Start   int           // start city the tour was built from
	Score   float64       // recomputed cyclic tour length
	Elapsed time.Duration // time since Solve began, measured on Options.Clock
}

// Result holds the outcome of Solve.
type Result struct {
	// Tour is the final visiting order (len == n, no closing vertex).
	Tour Tour

	// Score is the total cyclic length, rounded to 1e-9.
	Score float64

	// Start is the start city that won the probe phase.
	Start int

	// Stages lists every StageReport in emission order.
	Stages []StageReport
}

// Default knobs. The temperatures suit coordinates in the hundreds to
// thousands; rescale them with the instance.
const (
	DefaultTimeLimit   = 10 * time.Second
	DefaultProbeStride = 64
	DefaultLookahead   = 1
	DefaultStartTemp   = 1.75
	DefaultEndTemp     = 0.05

	// MaxLookahead bounds the constructor's search depth; cost is O(n^depth) per step.
	MaxLookahead = 4
)

// Options configures Solve.
//
// Budgets: TimeLimit is partitioned by SplitBudget; any of ProbeBudget,
// TwoOptBudget or RelocateBudget set to a positive value overrides its share.
// ProbeBudget is per probed start city. When all four are zero, TimeLimit
// becomes DefaultTimeLimit.
type Options struct {
	TimeLimit      time.Duration
	ProbeBudget    time.Duration
	TwoOptBudget   time.Duration
	RelocateBudget time.Duration

	// ProbeStride probes every k-th city as a start (0 ⇒ DefaultProbeStride).
	ProbeStride int

	// Lookahead is the constructor depth; 1 is plain nearest neighbour (0 ⇒ 1).
	Lookahead int

	// StartTemp and EndTemp define the linear annealing schedule.
	StartTemp float64
	EndTemp   float64

	// Seed selects the RNG stream; 0 ⇒ defaultRNGSeed.
	Seed int64

	// Clock is the time source for every deadline (nil ⇒ wall clock).
	Clock Clock

	// Observer, when set, receives every StageReport synchronously.
	Observer func(StageReport)
}

// DefaultOptions returns Options populated with the package defaults.
func DefaultOptions() Options {
	return Options{
		TimeLimit:   DefaultTimeLimit,
		ProbeStride: DefaultProbeStride,
		Lookahead:   DefaultLookahead,
		StartTemp:   DefaultStartTemp,
		EndTemp:     DefaultEndTemp,
	}
}
