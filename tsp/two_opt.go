// Package tsp - randomized 2-opt local search.
//
// TwoOpt samples two edge-start positions i < j uniformly at random and
// un-crosses the edges (t[i],t[i+1]) and (t[j],t[j+1]) when that strictly
// shortens the tour:
//
//	removed = w(t[i],t[i+1]) + w(t[j],t[j+1])
//	added   = w(t[i],t[j])   + w(t[i+1],t[j+1])      (indices mod n)
//	accept iff added < removed, by reversing t[i+1..j].
//
// The reversal only reorders cities, so the permutation invariant holds by
// construction. Every accepted move strictly lowers the score; the loop runs
// until the deadline and returns whatever tour it holds at that moment.
//
// Complexity:
//   - O(1) per sampled candidate plus one clock read, O(j-i) per accepted move.
//   - O(n) extra space (the working copy).
package tsp

import (
	"math/rand"

	"github.com/katalvlaran/lvtsp/geom"
)

// TwoOpt runs randomized first-improvement 2-opt until dl expires.
// The deadline is checked before every sample, so no candidate is drawn once
// it has passed. The input tour is not modified; the improved copy and its
// recomputed score are returned. Tours with fewer than four cities have no
// improving move and are returned as a copy immediately.
func TwoOpt(tour Tour, d *geom.Distances, dl Deadline, rng *rand.Rand) (Tour, float64) {
	cur := CopyTour(tour)
	n := len(cur)
	if n < 4 {
		return cur, TourScore(cur, d)
	}

	var i, j int
	for !dl.Expired() {
		i, j = randomPair(n, rng)
		uncross(cur, i, j, d)
	}

	assertTour(cur, n)

	return cur, TourScore(cur, d)
}

// TwoOptMove applies a single 2-opt move at positions (i, j) to a copy of
// tour. It returns the copy and whether the move improved the tour; a
// non-improving or out-of-range pair returns an unchanged copy.
//
// Complexity: O(n).
func TwoOptMove(tour Tour, i, j int, d *geom.Distances) (Tour, bool) {
	cur := CopyTour(tour)
	if i < 0 || j >= len(cur) || i >= j {
		return cur, false
	}

	return cur, uncross(cur, i, j, d)
}

// uncross applies the 2-opt move in place when it strictly improves the tour.
// Contracts: 0 ≤ i < j < len(tour).
func uncross(tour Tour, i, j int, d *geom.Distances) bool {
	n := len(tour)
	var (
		a = tour[i]
		b = tour[i+1]
		c = tour[j]
		e = tour[(j+1)%n]
	)
	removed := d.At(a, b) + d.At(c, e)
	added := d.At(a, c) + d.At(b, e)
	if added < removed {
		reverseInPlace(tour, i+1, j)
		return true
	}

	return false
}
