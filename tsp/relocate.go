// Package tsp - simulated-annealing subsequence relocation.
//
// Each draw cuts a random contiguous block [first, second) out of the tour,
// leaving `main` (n-len cities) and `sub`. The block is then offered every
// insertion point of main, each in both orientations, in order:
//
//	for k in 0..len(main)-1:          insert before main[k]
//	    for reversed in {true, false}:
//	        Δ = gain(k, reversed) − gain(first, false)
//
// where gain(k, r) = w(head, main[k-1]) + w(tail, main[k]) − w(main[k-1], main[k])
// with head/tail the block ends in the chosen orientation. gain(first, false)
// is the cost of putting the block back where it was, so Δ is the exact score
// change relative to the current tour. The identity placement is skipped.
//
// Acceptance follows the Metropolis rule with a linear cooling schedule:
// accept with probability exp(−Δ/T), T = Start + (End−Start)·progress. The
// first accepted candidate is applied and the rest of the draw is dropped.
//
// Complexity:
//   - O(n) per draw (cut + scan of 2·len(main) candidates + rebuild on accept).
//   - O(n) extra space, reused across draws.
package tsp

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvtsp/geom"
)

// Schedule is a linear temperature schedule.
type Schedule struct {
	Start float64
	End   float64
}

// Temperature returns the temperature at progress p ∈ [0, 1].
func (s Schedule) Temperature(p float64) float64 {
	return s.Start + (s.End-s.Start)*p
}

// Relocate runs subsequence relocation until dl expires and returns a new tour
// and its recomputed score. Decisions use only the local Δ of each candidate,
// so no running total is carried that could drift from the exact score.
// The input tour is not modified. Tours with fewer than three cities admit no
// distinct cycle and are returned as a copy.
func Relocate(tour Tour, d *geom.Distances, dl Deadline, sched Schedule, rng *rand.Rand) (Tour, float64) {
	cur := CopyTour(tour)
	n := len(cur)
	if n < 3 {
		return cur, TourScore(cur, d)
	}

	var (
		main = make([]int, 0, n)
		sub  = make([]int, 0, n)
		next = make(Tour, n)

		first, second int
		k, o          int
		reversed      bool
		temp          float64
		base, delta   float64
	)

	for !dl.Expired() {
		first, second = randomPair(n, rng)
		main, sub = cutOut(cur, first, second, main[:0], sub[:0])
		temp = sched.Temperature(dl.Progress())
		base = placementGain(main, sub, first, false, d)

	candidates:
		for k = 0; k < len(main); k++ {
			for o = 0; o < 2; o++ {
				reversed = o == 0
				if k == first && !reversed {
					continue // identity placement
				}
				delta = placementGain(main, sub, k, reversed, d) - base
				if accept(delta, temp, rng) {
					insertAt(next, main, sub, k, reversed)
					cur, next = next, cur
					break candidates
				}
			}
		}
	}

	assertTour(cur, n)

	return cur, TourScore(cur, d)
}

// accept implements the Metropolis criterion. Improving and neutral moves are
// always taken; with a non-positive temperature worsening moves never are.
func accept(delta, temp float64, rng *rand.Rand) bool {
	if delta <= 0 {
		return true
	}
	if temp <= 0 {
		return false
	}

	return rng.Float64() < math.Exp(-delta/temp)
}

// cutOut splits tour into main = tour[:first] ++ tour[second:] and
// sub = tour[first:second], appending into the provided buffers.
// Contracts: 0 ≤ first < second < len(tour), so main is never empty.
func cutOut(tour Tour, first, second int, main, sub []int) ([]int, []int) {
	main = append(main, tour[:first]...)
	main = append(main, tour[second:]...)
	sub = append(sub, tour[first:second]...)

	return main, sub
}

// placementGain is the score change of inserting sub before main[k]
// (between main[k-1] and main[k], cyclically), in the given orientation.
func placementGain(main, sub []int, k int, reversed bool, d *geom.Distances) float64 {
	m := len(main)
	prev := main[(k+m-1)%m]
	at := main[k]

	head, tail := sub[0], sub[len(sub)-1]
	if reversed {
		head, tail = tail, head
	}

	return d.At(prev, head) + d.At(tail, at) - d.At(prev, at)
}

// insertAt writes main with sub inserted before main[k] into dst (len == n).
func insertAt(dst Tour, main, sub []int, k int, reversed bool) {
	pos := copy(dst, main[:k])
	if reversed {
		for i := len(sub) - 1; i >= 0; i-- {
			dst[pos] = sub[i]
			pos++
		}
	} else {
		pos += copy(dst[pos:], sub)
	}
	copy(dst[pos:], main[k:])
}
