package tsp

import (
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/lvtsp/geom"
	"github.com/stretchr/testify/require"
)

func internalPoints(n int) []geom.Point {
	r := rand.New(rand.NewSource(11))
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: r.Float64() * 100, Y: r.Float64() * 100}
	}

	return pts
}

// TestPlacementDeltaIsExact enumerates every cut, insertion point and
// orientation on a small instance and checks that the Δ used for acceptance
// equals the real change in tour length.
func TestPlacementDeltaIsExact(t *testing.T) {
	const n = 6
	d := geom.EuclideanDistances(internalPoints(n))
	cur := Tour{4, 0, 5, 2, 1, 3}
	before := TourScore(cur, d)
	next := make(Tour, n)

	var main, sub []int
	for first := 0; first < n; first++ {
		for second := first + 1; second < n; second++ {
			main, sub = cutOut(cur, first, second, main[:0], sub[:0])
			require.Len(t, main, n-(second-first))
			require.Len(t, sub, second-first)

			base := placementGain(main, sub, first, false, d)
			for k := 0; k < len(main); k++ {
				for _, reversed := range []bool{true, false} {
					insertAt(next, main, sub, k, reversed)
					require.True(t, IsValidTour(next, n), "cut [%d,%d) k=%d rev=%v", first, second, k, reversed)

					want := TourScore(next, d) - before
					got := placementGain(main, sub, k, reversed, d) - base
					require.InDelta(t, want, got, 1e-9, "cut [%d,%d) k=%d rev=%v", first, second, k, reversed)
				}
			}

			// Forward placement at the cut position restores the tour.
			insertAt(next, main, sub, first, false)
			require.Equal(t, cur, next)
		}
	}
}

func TestUncross_MatchesRecomputedScore(t *testing.T) {
	const n = 9
	d := geom.EuclideanDistances(internalPoints(n))
	src := Tour{3, 7, 1, 8, 0, 5, 2, 6, 4}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			tour := CopyTour(src)
			before := TourScore(tour, d)
			moved := uncross(tour, i, j, d)
			require.True(t, IsValidTour(tour, n))
			if moved {
				require.Less(t, TourScore(tour, d), before)
			} else {
				require.Equal(t, src, tour)
			}
		}
	}
}

func TestRandomPair(t *testing.T) {
	rng := rngFromSeed(5)
	seen := map[[2]int]bool{}
	for s := 0; s < 2000; s++ {
		i, j := randomPair(5, rng)
		require.True(t, 0 <= i && i < j && j < 5, "pair (%d,%d)", i, j)
		seen[[2]int{i, j}] = true
	}
	require.Len(t, seen, 10, "every ordered pair of 5 positions is reachable")

	i, j := randomPair(2, rng)
	require.Equal(t, 0, i)
	require.Equal(t, 1, j)
}

func TestSeedDerivation(t *testing.T) {
	require.Equal(t, deriveSeed(7, 3), deriveSeed(7, 3))
	require.NotEqual(t, deriveSeed(7, 3), deriveSeed(7, 4))
	require.NotEqual(t, deriveSeed(7, 3), deriveSeed(8, 3))

	// Seed 0 and defaultRNGSeed select the same stream.
	require.Equal(t, rngFromSeed(0).Int63(), rngFromSeed(defaultRNGSeed).Int63())

	a := deriveRNG(rngFromSeed(9), 64)
	b := deriveRNG(rngFromSeed(9), 64)
	require.Equal(t, a.Int63(), b.Int63())
	require.NotNil(t, deriveRNG(nil, 1))
}

func TestWithDefaults(t *testing.T) {
	o := withDefaults(Options{})
	require.Equal(t, DefaultProbeStride, o.ProbeStride)
	require.Equal(t, DefaultLookahead, o.Lookahead)
	require.Equal(t, DefaultStartTemp, o.StartTemp)
	require.Equal(t, DefaultEndTemp, o.EndTemp)
	require.NotNil(t, o.Clock)
	require.Equal(t, DefaultTimeLimit, o.TimeLimit)

	// Explicit stage budgets alone leave TimeLimit at zero.
	o = withDefaults(Options{RelocateBudget: time.Second})
	require.Zero(t, o.TimeLimit)
	o = withDefaults(Options{TimeLimit: time.Second})
	require.Equal(t, time.Second, o.TimeLimit)

	// An explicit greedy-acceptance schedule is kept.
	o = withDefaults(Options{StartTemp: 0.5})
	require.Equal(t, 0.5, o.StartTemp)
	require.Equal(t, 0.0, o.EndTemp)
}
