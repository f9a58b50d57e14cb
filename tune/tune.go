// Package tune searches annealing temperatures for the relocation stage.
//
// The search space is the unit square. A point x maps to a schedule by
//
//	StartTemp = MaxTemp · x[0]
//	EndTemp   = StartTemp · x[1]
//
// so every point is a valid, non-increasing schedule. Each evaluation runs
// tsp.Relocate for Probe time from the same baseline tour (greedy + 2-opt)
// with the same RNG stream and returns the resulting tour length; the
// optimizer minimizes that length.
package tune

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvtsp/geom"
	"github.com/katalvlaran/lvtsp/tsp"
)

// Defaults for Options.
const (
	DefaultIterations = 30
	DefaultPopulation = MinPopulation
	DefaultProbe      = 200 * time.Millisecond
)

// ErrTooSmall is returned when the instance has too few points for
// relocation to do anything.
var ErrTooSmall = errors.New("tune: need at least 3 points")

// Options configures Temperatures. Zero fields take defaults.
type Options struct {
	// MaxTemp bounds StartTemp. 0 ⇒ the mean edge length of the baseline tour.
	MaxTemp float64

	// Probe is the relocation budget of one evaluation.
	Probe time.Duration

	Iterations int
	Population int
	Seed       int64

	// Clock drives every evaluation's deadline (nil ⇒ wall clock).
	Clock tsp.Clock

	// Optimizer overrides the default Mayfly optimizer.
	Optimizer Optimizer
}

// Result is the best schedule found.
type Result struct {
	StartTemp float64
	EndTemp   float64

	// Score is the tour length the best schedule reached.
	Score float64

	// Baseline is the length of the tour every evaluation started from.
	Baseline float64

	// Evaluations counts objective calls.
	Evaluations int
}

// Temperatures tunes StartTemp and EndTemp for the instance behind d.
func Temperatures(d *geom.Distances, opts Options) (Result, error) {
	n := d.Len()
	if n < 3 {
		return Result{}, fmt.Errorf("%d points: %w", n, ErrTooSmall)
	}
	if opts.MaxTemp < 0 || math.IsNaN(opts.MaxTemp) {
		return Result{}, fmt.Errorf("MaxTemp=%g: %w", opts.MaxTemp, tsp.ErrInvalidOptions)
	}
	opts = withDefaults(opts)

	rng := tsp.NewRand(opts.Seed)
	base := tsp.GreedyTour(0, d)
	base, baseline := tsp.TwoOpt(base, d, tsp.NewDeadline(opts.Clock, opts.Probe), rng)

	maxTemp := opts.MaxTemp
	if maxTemp == 0 {
		maxTemp = baseline / float64(n)
	}

	evals := 0
	objective := func(x []float64) float64 {
		evals++
		sched := schedule(x, maxTemp)
		_, score := tsp.Relocate(base, d, tsp.NewDeadline(opts.Clock, opts.Probe), sched, tsp.NewRand(opts.Seed))

		return score
	}

	x, score := opts.Optimizer.Minimize(objective, UnitBox(2))
	best := schedule(x, maxTemp)

	return Result{
		StartTemp:   best.Start,
		EndTemp:     best.End,
		Score:       score,
		Baseline:    baseline,
		Evaluations: evals,
	}, nil
}

// schedule maps a point of the unit square to a temperature schedule.
// Coordinates outside [0, 1] are clamped.
func schedule(x []float64, maxTemp float64) tsp.Schedule {
	start := maxTemp * clamp01(x[0])

	return tsp.Schedule{Start: start, End: start * clamp01(x[1])}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func withDefaults(opts Options) Options {
	if opts.Probe <= 0 {
		opts.Probe = DefaultProbe
	}
	if opts.Iterations <= 0 {
		opts.Iterations = DefaultIterations
	}
	if opts.Population <= 0 {
		opts.Population = DefaultPopulation
	}
	if opts.Clock == nil {
		opts.Clock = tsp.SystemClock()
	}
	if opts.Optimizer == nil {
		opts.Optimizer = NewMayfly(opts.Iterations, opts.Population, opts.Seed)
	}

	return opts
}
