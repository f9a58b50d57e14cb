// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: a deterministic clock, point-set generators and a
// brute-force reference for tiny instances.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/lvtsp/geom"
	"github.com/katalvlaran/lvtsp/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsScore is the tolerance for comparing recomputed tour lengths.
	epsScore = 1e-9

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(7)

	// tick is how far the step clock advances on every Now() call.
	tick = time.Millisecond
)

// -----------------------------------------------------------------------------
// Deterministic clock
// -----------------------------------------------------------------------------

// stepClock advances by a fixed step every time it is read, so every
// deadline-driven loop terminates after an exact, repeatable number of polls.
type stepClock struct {
	now  time.Time
	step time.Duration
}

var _ tsp.Clock = (*stepClock)(nil)

func newStepClock() *stepClock {
	return &stepClock{now: time.Unix(1_700_000_000, 0), step: tick}
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)

	return t
}

// deadline starts a budget on a fresh step clock.
func deadline(budget time.Duration) tsp.Deadline {
	return tsp.NewDeadline(newStepClock(), budget)
}

// -----------------------------------------------------------------------------
// Instances
// -----------------------------------------------------------------------------

// unitSquare returns (0,0), (0,1), (1,0), (1,1): boundary order is [0 1 3 2].
func unitSquare() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}
}

// circle returns n points on a circle of the given radius, in angular order,
// so the optimal tour is the polygon boundary.
func circle(n int, radius float64) []geom.Point {
	pts := make([]geom.Point, n)
	var (
		i  int
		th float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Point{X: radius * math.Cos(th), Y: radius * math.Sin(th)}
	}

	return pts
}

// polygonPerimeter is the length of the regular n-gon inscribed in a circle.
func polygonPerimeter(n int, radius float64) float64 {
	return float64(n) * 2 * radius * math.Sin(math.Pi/float64(n))
}

// randomPoints returns n points uniform in [0,1000)².
func randomPoints(n int, seed int64) []geom.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: r.Float64() * 1000, Y: r.Float64() * 1000}
	}

	return pts
}

// shuffledTour returns a random permutation of 0..n-1 (a poor starting tour).
func shuffledTour(n int, seed int64) tsp.Tour {
	return tsp.Tour(rand.New(rand.NewSource(seed)).Perm(n))
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// requireValid asserts the permutation invariant.
func requireValid(t *testing.T, tour tsp.Tour, n int) {
	t.Helper()
	require.Truef(t, tsp.IsValidTour(tour, n), "invalid tour for n=%d: %s", n, tsp.DebugString(tour))
}

// bruteForceOptimum enumerates every tour starting at 0 (n ≤ 8).
func bruteForceOptimum(d *geom.Distances) float64 {
	n := d.Len()
	if n <= 1 {
		return 0
	}
	rest := make([]int, n-1)
	for i := range rest {
		rest[i] = i + 1
	}

	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			tour := append(tsp.Tour{0}, rest...)
			best = math.Min(best, tsp.TourScore(tour, d))
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}
