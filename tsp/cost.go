// Package tsp - scoring helpers.
//
// The authoritative score of a tour is always TourScore(tour, d). Stages may
// track a running score for their own decisions, but they resynchronise from
// TourScore before handing the tour back.
package tsp

import (
	"math"

	"github.com/katalvlaran/lvtsp/geom"
)

// roundScale controls final score stabilization precision (1e-9).
const roundScale = 1e9

// TourScore sums d[t[i]][t[(i+1) mod n]] over the cyclic tour.
// Pure function: 0 for n ≤ 1, twice the single edge for n == 2.
//
// Complexity: O(n).
func TourScore(tour Tour, d *geom.Distances) float64 {
	n := len(tour)
	if n <= 1 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += d.At(tour[i], tour[i+1])
	}
	sum += d.At(tour[n-1], tour[0]) // closing edge

	return sum
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps reported scores stable across platforms without affecting the search.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
