// Package tsp - constructive heuristics.
//
// GreedyTour is the classic nearest-neighbour construction. LookaheadTour
// generalizes it: instead of committing to the single closest city, it
// explores every simple path of up to `depth` unvisited cities and commits the
// whole cheapest path. The search uses an explicit stack, so depth never
// translates into recursion.
//
// Both constructors are deterministic: candidates are scanned in ascending
// index order and only a strictly better candidate replaces the incumbent,
// so ties go to the lowest index (or the path discovered first).
package tsp

import (
	"math"

	"github.com/katalvlaran/lvtsp/geom"
)

// GreedyTour builds a tour from start by repeatedly moving to the nearest
// unvisited city. The cycle closes implicitly back to start.
//
// Contracts:
//   - 0 ≤ start < d.Len() when d.Len() > 0; anything else panics with
//     ErrStartOutOfRange in the message. An empty matrix yields an empty tour.
//
// Complexity: O(n²) time, O(n) space.
func GreedyTour(start int, d *geom.Distances) Tour {
	n := d.Len()
	if n == 0 {
		return Tour{}
	}
	assertStart(start, n)

	visited := make([]bool, n)
	tour := make(Tour, 0, n)
	tour = append(tour, start)
	visited[start] = true

	var (
		cur     = start
		next    int
		nearest int
	)
	for len(tour) < n {
		nearest = -1
		for next = 0; next < n; next++ {
			if visited[next] {
				continue
			}
			if nearest == -1 || d.At(cur, next) < d.At(cur, nearest) {
				nearest = next
			}
		}
		cur = nearest
		visited[cur] = true
		tour = append(tour, cur)
	}

	return tour
}

// LookaheadTour builds a tour from start with a bounded-depth lookahead.
// At each step it considers every simple path of min(depth, remaining)
// unvisited cities leaving the current city and commits the cheapest one.
// When a path would visit the last remaining cities, the closing edge back
// to start is included in its cost.
//
// depth ≤ 1 is exactly GreedyTour. The start contract is the same as
// GreedyTour's.
//
// Complexity: O(n^(depth+1)) time in the worst case, O(n + depth) space.
func LookaheadTour(start, depth int, d *geom.Distances) Tour {
	if depth <= 1 {
		return GreedyTour(start, d)
	}
	n := d.Len()
	if n == 0 {
		return Tour{}
	}
	assertStart(start, n)

	visited := make([]bool, n)
	tour := make(Tour, 0, n)
	tour = append(tour, start)
	visited[start] = true

	s := newLookahead(n, depth)
	cur := start
	for len(tour) < n {
		path := s.bestPath(cur, start, min(depth, n-len(tour)), n-len(tour), d, visited)
		for _, c := range path {
			visited[c] = true
			tour = append(tour, c)
		}
		cur = path[len(path)-1]
	}

	return tour
}

// lookaheadFrame is one level of the explicit DFS stack.
type lookaheadFrame struct {
	city int     // city this frame extends from
	next int     // next candidate index to try
	cost float64 // path cost up to city
}

// lookahead holds reusable buffers for bestPath.
type lookahead struct {
	n     int
	stack []lookaheadFrame
	path  []int
	best  []int
}

func newLookahead(n, depth int) *lookahead {
	return &lookahead{
		n:     n,
		stack: make([]lookaheadFrame, 0, depth+1),
		path:  make([]int, 0, depth),
		best:  make([]int, 0, depth),
	}
}

// bestPath returns the cheapest simple path of exactly horizon unvisited
// cities leaving from. remaining is the number of unvisited cities; when
// horizon == remaining the path closes the tour and pays the edge back to home.
// visited is restored before returning. The returned slice is reused across
// calls.
func (s *lookahead) bestPath(from, home, horizon, remaining int, d *geom.Distances, visited []bool) []int {
	var (
		bestCost = math.Inf(1)
		closes   = horizon == remaining
		total    float64
		top      *lookaheadFrame
		c        int
		city     int
		cost     float64
	)
	s.best = s.best[:0]
	s.path = s.path[:0]
	s.stack = append(s.stack[:0], lookaheadFrame{city: from})

	for len(s.stack) > 0 {
		top = &s.stack[len(s.stack)-1]

		// Leaf: the path has reached the horizon.
		if len(s.path) == horizon {
			total = top.cost
			if closes {
				total += d.At(top.city, home)
			}
			if total < bestCost {
				bestCost = total
				s.best = append(s.best[:0], s.path...)
			}
			s.pop(visited)
			continue
		}

		// Advance to the next unvisited candidate.
		for top.next < s.n && visited[top.next] {
			top.next++
		}
		if top.next == s.n {
			s.pop(visited)
			continue
		}
		c = top.next
		top.next++
		city, cost = top.city, top.cost

		visited[c] = true
		s.path = append(s.path, c)
		s.stack = append(s.stack, lookaheadFrame{city: c, cost: cost + d.At(city, c)})
	}

	return s.best
}

// pop drops the top frame and un-marks the city it added (the root frame added none).
func (s *lookahead) pop(visited []bool) {
	s.stack = s.stack[:len(s.stack)-1]
	if len(s.path) > 0 {
		visited[s.path[len(s.path)-1]] = false
		s.path = s.path[:len(s.path)-1]
	}
}
