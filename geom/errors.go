package geom

import "errors"

// Sentinel errors returned by FromRows. Callers match them with errors.Is.
var (
	// ErrNonSquare is returned when the rows do not form an n×n matrix.
	ErrNonSquare = errors.New("geom: matrix is not square")

	// ErrNaNInf is returned when an entry is NaN or ±Inf.
	ErrNaNInf = errors.New("geom: NaN or Inf encountered")

	// ErrNegativeWeight is returned when an entry is negative.
	ErrNegativeWeight = errors.New("geom: negative distance")

	// ErrNonZeroDiagonal is returned when d[i][i] differs from zero.
	ErrNonZeroDiagonal = errors.New("geom: diagonal not zero within eps")

	// ErrAsymmetry is returned when d[i][j] and d[j][i] differ beyond tolerance.
	ErrAsymmetry = errors.New("geom: matrix is not symmetric within eps")
)
