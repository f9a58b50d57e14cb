// Package tsp provides time-budgeted heuristics for the Euclidean
// Travelling Salesman Problem.
//
// The pipeline, driven by Solve, is:
//
//   - GreedyTour / LookaheadTour: build a tour from a start city by
//     repeatedly moving to the nearest unvisited city (optionally with a
//     shallow depth-first lookahead).
//
//   - TwoOpt: randomized first-improvement 2-opt. Two sampled edges are
//     swapped when that strictly shortens the tour.
//
//   - Relocate: simulated annealing over subsequence relocation. A block is
//     cut out and offered every insertion point in both orientations; the
//     Metropolis rule under a linearly cooling temperature decides.
//
// Every improvement stage runs until its Deadline expires; budgets are the
// only stopping criterion and running out of time is never an error.
//
// Tours are open permutations of 0..n-1 (Tour, len == n); the closing edge
// from the last city back to the first is implied. All stages take a tour by
// value and return a new one with its score recomputed from scratch.
//
// Determinism: given the same Distances, Options.Seed and a deterministic
// Options.Clock, Solve returns the same Result. With the wall clock the
// number of iterations, and therefore the tour, depends on machine speed.
//
// Use this package for instances from a handful up to hundreds of thousands of
// points; the O(n²) Distances matrix is the practical memory ceiling.
package tsp
