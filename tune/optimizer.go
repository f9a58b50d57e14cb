// Package tune - derivative-free minimizers over a box.
//
// Temperatures only needs "minimize f over a box" from its search backend, so
// the backend sits behind the Optimizer interface and tests can substitute a
// scripted one. The default is the Mayfly swarm from github.com/cwbudde/mayfly.
//
// Contracts:
//   - len(Box.Lower) == len(Box.Upper) > 0 and Lower[i] ≤ Upper[i].
//   - The returned point lies inside the box; its cost is f at that point.
//
// Complexity:
//   - Mayfly: O(iterations · population) objective calls.
package tune

import (
	"math"
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// Objective is a cost to be minimized.
type Objective func(x []float64) float64

// Box is an axis-aligned search region.
type Box struct {
	Lower []float64
	Upper []float64
}

// UnitBox is [0, 1]^dim.
func UnitBox(dim int) Box {
	b := Box{Lower: make([]float64, dim), Upper: make([]float64, dim)}
	for i := range b.Upper {
		b.Upper[i] = 1
	}

	return b
}

// Dim is the number of coordinates.
func (b Box) Dim() int { return len(b.Lower) }

// hull returns the smallest cube [lo, hi]^dim that contains b.
func (b Box) hull() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := range b.Lower {
		lo = math.Min(lo, b.Lower[i])
		hi = math.Max(hi, b.Upper[i])
	}

	return lo, hi
}

// clip moves x into b in place and reports whether anything changed.
func (b Box) clip(x []float64) bool {
	moved := false
	for i := range x {
		switch {
		case x[i] < b.Lower[i]:
			x[i], moved = b.Lower[i], true
		case x[i] > b.Upper[i]:
			x[i], moved = b.Upper[i], true
		}
	}

	return moved
}

// Optimizer minimizes an Objective over a Box.
type Optimizer interface {
	Minimize(f Objective, box Box) (best []float64, cost float64)
}

// MinPopulation is the smallest swarm mayfly v0.1.0 accepts.
const MinPopulation = 20

// Mayfly is the swarm optimizer used by default.
type Mayfly struct {
	iterations int
	population int
	seed       int64
}

var _ Optimizer = (*Mayfly)(nil)

// NewMayfly returns a seeded Mayfly optimizer; a population below
// MinPopulation is raised to it.
func NewMayfly(iterations, population int, seed int64) *Mayfly {
	if population < MinPopulation {
		population = MinPopulation
	}

	return &Mayfly{iterations: iterations, population: population, seed: seed}
}

// Minimize runs the swarm. The library bounds every coordinate by the same
// scalar pair, so the swarm searches the cube around box and the winner is
// clipped back into box (and re-scored when clipping moved it). If the library
// refuses the configuration, the lower corner is returned.
func (m *Mayfly) Minimize(f Objective, box Box) ([]float64, float64) {
	lo, hi := box.hull()

	cfg := mayfly.NewDefaultConfig()
	cfg.ObjectiveFunc = mayfly.ObjectiveFunction(f)
	cfg.ProblemSize = box.Dim()
	cfg.MaxIterations = m.iterations
	cfg.NPop = m.population
	cfg.LowerBound = lo
	cfg.UpperBound = hi
	cfg.Rand = rand.New(rand.NewSource(m.seed))

	res, err := mayfly.Optimize(cfg)
	if err != nil {
		x := append([]float64(nil), box.Lower...)
		return x, f(x)
	}

	x := append([]float64(nil), res.GlobalBest.Position...)
	if box.clip(x) {
		return x, f(x)
	}

	return x, res.GlobalBest.Cost
}
