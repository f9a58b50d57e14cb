// Package tsp - tour utilities shared by every stage.
//
// This file contains compact helpers that operate purely on tour structure
// (index sequences), without touching distances:
//   - IsValidTour / ValidateTour: the permutation invariant.
//   - assertTour: the in-solver guard; a violation is a programming defect.
//   - CopyTour: independent copy (stages never alias their input).
//   - RotateToStart: cyclic shift so the tour begins at a given city.
//   - EqualCycles: equality under rotation and reflection.
//   - reverseInPlace: in-place segment reversal (2-opt core).
//   - DebugString: compact printable form for panics and test output.
package tsp

import (
	"fmt"
	"strconv"
	"strings"
)

// IsValidTour reports whether tour has length n and contains every index of
// 0..n-1 exactly once. The empty tour is valid for n == 0.
//
// Complexity: O(n) time, O(n) space.
func IsValidTour(tour Tour, n int) bool {
	if n < 0 || len(tour) != n {
		return false
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// ValidateTour is IsValidTour for I/O boundaries: it returns ErrInvalidTour
// wrapped with the expected size instead of a bool.
func ValidateTour(tour Tour, n int) error {
	if !IsValidTour(tour, n) {
		return fmt.Errorf("want permutation of %d points, got %d entries: %w", n, len(tour), ErrInvalidTour)
	}

	return nil
}

// assertTour panics when a stage produced an invalid tour. Stages only ever
// reverse or move contiguous segments, so reaching the panic means a bug.
func assertTour(tour Tour, n int) {
	if !IsValidTour(tour, n) {
		panic(fmt.Sprintf("%v: n=%d tour=%s", ErrInvalidTour, n, DebugString(tour)))
	}
}

// assertStart panics unless 0 ≤ start < n.
func assertStart(start, n int) {
	if start < 0 || start >= n {
		panic(fmt.Sprintf("%v: start=%d n=%d", ErrStartOutOfRange, start, n))
	}
}

// CopyTour returns an independent copy of the input tour.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour Tour) Tour {
	if tour == nil {
		return nil
	}
	out := make(Tour, len(tour))
	copy(out, tour)

	return out
}

// RotateToStart returns a fresh copy of tour shifted so that out[0] == start.
// Returns ErrStartOutOfRange when start does not occur in tour.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(tour Tour, start int) (Tour, error) {
	n := len(tour)
	pivot := -1

	var i int
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrStartOutOfRange
	}

	out := make(Tour, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// EqualCycles reports whether a and b describe the same cycle, allowing any
// rotation and either direction.
//
// Complexity: O(n) time.
func EqualCycles(a, b Tour) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}

	// Locate a[0] in b.
	p := -1

	var i int
	for i = 0; i < n; i++ {
		if b[i] == a[0] {
			p = i
			break
		}
	}
	if p == -1 {
		return false
	}

	forward, backward := true, true
	for i = 0; i < n && (forward || backward); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[(p-i+n)%n] {
			backward = false
		}
	}

	return forward || backward
}

// reverseInPlace reverses the inclusive segment tour[i..k].
// Contracts: 0 ≤ i ≤ k < len(tour).
//
// Complexity: O(k-i) time, O(1) space.
func reverseInPlace(tour Tour, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// DebugString returns a compact printable representation, e.g. "[0 3 1 2]".
// Long tours are elided in the middle.
func DebugString(tour Tour) string {
	const maxShown = 32

	var b strings.Builder
	b.WriteByte('[')
	for i, v := range tour {
		if len(tour) > maxShown && i == maxShown/2 {
			b.WriteString(" …")
		}
		if len(tour) > maxShown && i >= maxShown/2 && i < len(tour)-maxShown/2 {
			continue
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')

	return b.String()
}
