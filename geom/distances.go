package geom

import (
	"fmt"
	"math"
)

// symTol is the structural tolerance for symmetry and diagonal checks.
const symTol = 1e-12

// Point is a planar coordinate. Points are created at load time and never mutated.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between p and q.
// Complexity: O(1).
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Distances is a square, symmetric, non-negative matrix of pairwise distances.
// n is the order, data holds n*n elements in row-major order.
type Distances struct {
	n    int       // number of points
	data []float64 // flat backing storage, length == n*n
}

// EuclideanDistances computes all pairwise distances between points.
// Stage 1 (Prepare): allocate the flat n*n buffer.
// Stage 2 (Execute): fill the upper triangle and mirror it, keeping the matrix
// exactly symmetric regardless of floating-point evaluation order.
// An empty input yields an empty matrix (Len()==0).
// Complexity: O(n²) time and memory.
func EuclideanDistances(points []Point) *Distances {
	n := len(points)
	d := &Distances{n: n, data: make([]float64, n*n)}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = points[i].Dist(points[j])
			d.data[i*n+j] = w
			d.data[j*n+i] = w
		}
	}

	return d
}

// FromRows builds Distances from hand-written rows after validating that
// they describe a symmetric, non-negative matrix with zero diagonal.
//
// Errors: ErrNonSquare, ErrNaNInf, ErrNegativeWeight, ErrNonZeroDiagonal,
// ErrAsymmetry, each wrapped with the offending coordinates.
//
// Complexity: O(n²).
func FromRows(rows [][]float64) (*Distances, error) {
	n := len(rows)
	d := &Distances{n: n, data: make([]float64, n*n)}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("row %d has %d columns: %w", i, len(rows[i]), ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			w = rows[i][j]
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, ErrNaNInf)
			}
			if w < 0 {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, ErrNegativeWeight)
			}
			d.data[i*n+j] = w
		}
	}

	// Structural checks run on the copied data so the caller's rows are never retained.
	for i = 0; i < n; i++ {
		if math.Abs(d.data[i*n+i]) > symTol {
			return nil, fmt.Errorf("entry (%d,%d): %w", i, i, ErrNonZeroDiagonal)
		}
		for j = i + 1; j < n; j++ {
			if math.Abs(d.data[i*n+j]-d.data[j*n+i]) > symTol {
				return nil, fmt.Errorf("entries (%d,%d)/(%d,%d): %w", i, j, j, i, ErrAsymmetry)
			}
		}
	}

	return d, nil
}

// Len returns the matrix order (the number of points).
// Complexity: O(1).
func (d *Distances) Len() int {
	if d == nil {
		return 0
	}

	return d.n
}

// At returns the distance between points i and j.
// Indices are not bounds-checked beyond the slice access itself: the solvers
// only ever pass indices taken from a validated tour.
// Complexity: O(1).
func (d *Distances) At(i, j int) float64 {
	return d.data[i*d.n+j]
}

// Row returns a copy of row i, handy for debugging and tests.
// Complexity: O(n).
func (d *Distances) Row(i int) []float64 {
	out := make([]float64, d.n)
	copy(out, d.data[i*d.n:(i+1)*d.n])

	return out
}
