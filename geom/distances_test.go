// Package geom_test covers distance-matrix construction and validation.
package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtsp/geom"
	"github.com/stretchr/testify/require"
)

// unitSquare returns the four corners of the unit square in input order.
func unitSquare() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}
}

// TestEuclideanDistances_UnitSquare checks side and diagonal lengths.
func TestEuclideanDistances_UnitSquare(t *testing.T) {
	d := geom.EuclideanDistances(unitSquare())
	require.Equal(t, 4, d.Len())

	require.InDelta(t, 1.0, d.At(0, 1), 1e-12)       // vertical side
	require.InDelta(t, 1.0, d.At(0, 2), 1e-12)       // horizontal side
	require.InDelta(t, math.Sqrt2, d.At(0, 3), 1e-4) // diagonal
	require.InDelta(t, math.Sqrt2, d.At(1, 2), 1e-4) // other diagonal
	require.Equal(t, 0.0, d.At(1, 1))                // zero diagonal
}

// TestEuclideanDistances_Symmetric ensures exact symmetry on irregular input.
func TestEuclideanDistances_Symmetric(t *testing.T) {
	pts := []geom.Point{{X: 0.1, Y: 7.3}, {X: -3.2, Y: 2}, {X: 1e3, Y: -4.4}, {X: 5, Y: 5}, {X: 0.1, Y: 7.3}}
	d := geom.EuclideanDistances(pts)

	for i := 0; i < d.Len(); i++ {
		require.Equal(t, 0.0, d.At(i, i))
		for j := 0; j < d.Len(); j++ {
			require.Equal(t, d.At(i, j), d.At(j, i), "asymmetry at (%d,%d)", i, j)
			require.GreaterOrEqual(t, d.At(i, j), 0.0)
		}
	}
	// Duplicate points are legal and sit at distance zero.
	require.Equal(t, 0.0, d.At(0, 4))
}

// TestEuclideanDistances_Empty verifies the degenerate empty input.
func TestEuclideanDistances_Empty(t *testing.T) {
	d := geom.EuclideanDistances(nil)
	require.Equal(t, 0, d.Len())

	var nilD *geom.Distances
	require.Equal(t, 0, nilD.Len())
}

// TestFromRows_Validation walks every rejection path.
func TestFromRows_Validation(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"non-square", [][]float64{{0, 1}, {1}}, geom.ErrNonSquare},
		{"nan", [][]float64{{0, math.NaN()}, {1, 0}}, geom.ErrNaNInf},
		{"inf", [][]float64{{0, math.Inf(1)}, {1, 0}}, geom.ErrNaNInf},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, geom.ErrNegativeWeight},
		{"diagonal", [][]float64{{1, 1}, {1, 0}}, geom.ErrNonZeroDiagonal},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, geom.ErrAsymmetry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := geom.FromRows(tc.rows)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestFromRows_CopiesInput ensures later edits to the rows do not leak in.
func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]float64{
		{0, 2, 3},
		{2, 0, 4},
		{3, 4, 0},
	}
	d, err := geom.FromRows(rows)
	require.NoError(t, err)

	rows[0][1] = 99
	require.Equal(t, 2.0, d.At(0, 1))
	require.Equal(t, []float64{2, 0, 4}, d.Row(1))
}
