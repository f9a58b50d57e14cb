// Package geom holds the planar geometry consumed by the tour solvers.
//
// It provides two things:
//
//   - Point: an immutable (x, y) pair loaded once per run.
//   - Distances: a dense, symmetric, read-only n×n matrix of pairwise
//     Euclidean distances, stored row-major in a flat slice.
//
// Distances is built once (EuclideanDistances, or FromRows for hand-written
// instances) and then only read. There is deliberately no setter: every
// solver stage may share the same *Distances without copying.
//
// Complexity:
//   - EuclideanDistances: O(n²) time and memory.
//   - At, Len: O(1).
package geom
