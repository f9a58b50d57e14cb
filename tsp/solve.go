// Package tsp - multi-start orchestrator.
//
// Solve sequences the stages under time budgets:
//
//  1. Probe: for every ProbeStride-th start city, build a tour (GreedyTour or
//     LookaheadTour) and give it a short 2-opt pass; keep the start with the
//     lowest score (ties: the earliest start).
//  2. Rebuild the tour from the winning start.
//  3. 2-opt until its budget expires.
//  4. Subsequence relocation until its budget expires.
//
// After every stage the tour is checked against the permutation invariant,
// its score is recomputed from scratch and a StageReport is emitted.
//
// Design principles:
//   - Single goroutine; one RNG family per run (see rng.go).
//   - Stages take a tour and return a new one; nothing is shared between them.
//   - Budget exhaustion is the normal way out of every stage, never an error.
package tsp

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvtsp/geom"
)

// Budget shares applied by SplitBudget.
const (
	probeShare  = 0.10
	twoOptShare = 0.15
)

// Budgets is the per-stage partition of a total time limit.
type Budgets struct {
	Probe    time.Duration // per probed start city
	TwoOpt   time.Duration
	Relocate time.Duration
}

// SplitBudget partitions total: 10% is spread evenly across the probe starts,
// 15% goes to 2-opt refinement and the remainder to relocation. With a
// single probe (or none) the probe share is folded into relocation, since
// there is nothing to choose between.
//
// Complexity: O(1).
func SplitBudget(total time.Duration, probes int) Budgets {
	if total <= 0 {
		return Budgets{}
	}
	b := Budgets{TwoOpt: time.Duration(float64(total) * twoOptShare)}
	rest := total - b.TwoOpt
	if probes > 1 {
		b.Probe = time.Duration(float64(total) * probeShare / float64(probes))
		rest -= b.Probe * time.Duration(probes)
	}
	b.Relocate = rest

	return b
}

// ProbeStarts lists the candidate start cities: 0, stride, 2·stride, … < n.
func ProbeStarts(n, stride int) []int {
	if n <= 0 {
		return nil
	}
	if stride < 1 {
		stride = 1
	}
	starts := make([]int, 0, (n+stride-1)/stride)
	for s := 0; s < n; s += stride {
		starts = append(starts, s)
	}

	return starts
}

// Solve computes a short closed tour over the points behind d.
//
// Degenerate inputs short-circuit without probing: n == 0 yields an empty tour
// and n == 1 yields [0], both with score 0.
//
// Errors: ErrInvalidOptions (wrapped) from ValidateOptions. Invariant
// violations inside the stages panic; see assertTour.
func Solve(d *geom.Distances, opts Options) (Result, error) {
	if err := ValidateOptions(opts); err != nil {
		return Result{}, err
	}
	opts = withDefaults(opts)

	n := d.Len()
	if n <= 1 {
		tour := make(Tour, n)
		return Result{Tour: tour, Score: 0, Start: 0}, nil
	}

	s := &solver{
		d:     d,
		n:     n,
		opts:  opts,
		began: opts.Clock.Now(),
		base:  rngFromSeed(opts.Seed),
	}

	starts := ProbeStarts(n, opts.ProbeStride)
	b := resolveBudgets(opts, len(starts))

	best := s.probe(starts, b.Probe)

	tour := s.construct(best)
	s.report(StageGreedy, best, tour)

	tour, _ = TwoOpt(tour, d, NewDeadline(opts.Clock, b.TwoOpt), s.base)
	s.report(StageTwoOpt, best, tour)

	sched := Schedule{Start: opts.StartTemp, End: opts.EndTemp}
	tour, _ = Relocate(tour, d, NewDeadline(opts.Clock, b.Relocate), sched, s.base)
	final := s.report(StageRelocate, best, tour)

	return Result{
		Tour:   tour,
		Score:  round1e9(final),
		Start:  best,
		Stages: s.stages,
	}, nil
}

// SolvePoints is Solve over raw points.
func SolvePoints(points []geom.Point, opts Options) (Result, error) {
	return Solve(geom.EuclideanDistances(points), opts)
}

// resolveBudgets applies explicit per-stage overrides on top of SplitBudget.
func resolveBudgets(opts Options, probes int) Budgets {
	b := SplitBudget(opts.TimeLimit, probes)
	if opts.ProbeBudget > 0 {
		b.Probe = opts.ProbeBudget
	}
	if opts.TwoOptBudget > 0 {
		b.TwoOpt = opts.TwoOptBudget
	}
	if opts.RelocateBudget > 0 {
		b.Relocate = opts.RelocateBudget
	}

	return b
}

// solver carries the per-run state shared by the stages.
type solver struct {
	d      *geom.Distances
	n      int
	opts   Options
	began  time.Time
	base   *rand.Rand
	stages []StageReport
}

// construct builds the initial tour from start with the configured lookahead.
func (s *solver) construct(start int) Tour {
	return LookaheadTour(start, s.opts.Lookahead, s.d)
}

// probe runs Constructor + short 2-opt from each start and returns the winner.
// A single candidate wins without spending any budget.
func (s *solver) probe(starts []int, budget time.Duration) int {
	if len(starts) <= 1 {
		return 0
	}

	var (
		best      = starts[0]
		bestScore = math.Inf(1)
		tour      Tour
		score     float64
	)
	for _, start := range starts {
		tour = s.construct(start)
		tour, _ = TwoOpt(tour, s.d, NewDeadline(s.opts.Clock, budget), deriveRNG(s.base, uint64(start)))
		score = s.report(StageProbe, start, tour)
		if score < bestScore {
			bestScore = score
			best = start
		}
	}

	return best
}

// report validates tour, recomputes its score and emits a StageReport.
func (s *solver) report(stage Stage, start int, tour Tour) float64 {
	assertTour(tour, s.n)
	score := TourScore(tour, s.d)

	r := StageReport{
		Stage:   stage,
		Start:   start,
		Score:   round1e9(score),
		Elapsed: s.opts.Clock.Now().Sub(s.began),
	}
	s.stages = append(s.stages, r)
	if s.opts.Observer != nil {
		s.opts.Observer(r)
	}

	return score
}
