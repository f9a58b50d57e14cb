// Package tsp - time sources and deadlines for the budgeted search loops.
//
// Every improvement loop polls a Deadline between iterations; there is no other
// cancellation signal. The Deadline reads time through a Clock so tests can
// substitute a deterministic source and get exact, repeatable termination.
package tsp

import "time"

// Clock is the time source consulted by deadlines.
type Clock interface {
	Now() time.Time
}

// systemClock reads the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Deadline is a search budget anchored at the moment it was created.
// The zero Deadline has no budget and reads the wall clock, so it is
// already expired.
type Deadline struct {
	clock Clock
	start time.Time
	end   time.Time
}

// NewDeadline starts a budget of length budget on clock c (nil ⇒ wall clock).
// A non-positive budget yields an already expired deadline.
//
// Complexity: O(1).
func NewDeadline(c Clock, budget time.Duration) Deadline {
	if c == nil {
		c = systemClock{}
	}
	if budget < 0 {
		budget = 0
	}
	now := c.Now()

	return Deadline{clock: c, start: now, end: now.Add(budget)}
}

func (d Deadline) now() time.Time {
	if d.clock == nil {
		return time.Now()
	}

	return d.clock.Now()
}

// Expired reports whether the budget has been used up.
func (d Deadline) Expired() bool {
	return !d.now().Before(d.end)
}

// Budget returns the total length of the deadline.
func (d Deadline) Budget() time.Duration {
	return d.end.Sub(d.start)
}

// Progress returns the elapsed fraction of the budget, clamped to [0, 1].
// A zero budget is reported as fully elapsed.
func (d Deadline) Progress() float64 {
	total := d.end.Sub(d.start)
	if total <= 0 {
		return 1
	}
	p := float64(d.now().Sub(d.start)) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}

	return p
}
