package tourio_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvtsp/geom"
	"github.com/katalvlaran/lvtsp/tourio"
	"github.com/katalvlaran/lvtsp/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPoints(t *testing.T) {
	in := "x,y\n214.98,762.69\n 1.5 , -2\n\n0,0\n"

	pts, err := tourio.ReadPoints(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []geom.Point{
		{X: 214.98, Y: 762.69},
		{X: 1.5, Y: -2},
		{X: 0, Y: 0},
	}, pts)
}

func TestReadPoints_HeaderOnly(t *testing.T) {
	pts, err := tourio.ReadPoints(strings.NewReader("x,y\n"))
	require.NoError(t, err)
	require.Empty(t, pts)
}

func TestReadPoints_MissingHeader(t *testing.T) {
	_, err := tourio.ReadPoints(strings.NewReader(""))
	require.ErrorIs(t, err, tourio.ErrMissingHeader)
}

func TestReadPoints_MalformedRows(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line string
	}{
		{"no comma", "x,y\n1,2\n3 4\n", "line 3"},
		{"bad x", "x,y\nabc,2\n", "line 2"},
		{"bad y", "x,y\n1,2\n\n5,\n", "line 4"},
		{"nan", "x,y\nNaN,1\n", "line 2"},
		{"three fields", "x,y\n1,2,3\n", "line 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tourio.ReadPoints(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tourio.ErrMalformedRow)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestWriteTour(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tourio.WriteTour(&buf, tsp.Tour{2, 0, 1}))
	require.Equal(t, "index\n2\n0\n1\n", buf.String())
}

func TestTourRoundTrip(t *testing.T) {
	tour := tsp.Tour{4, 1, 3, 0, 2}

	var buf bytes.Buffer
	require.NoError(t, tourio.WriteTour(&buf, tour))
	got, err := tourio.ReadTour(&buf)
	require.NoError(t, err)
	require.Equal(t, tour, got)
}

func TestReadTour_Malformed(t *testing.T) {
	_, err := tourio.ReadTour(strings.NewReader("index\n0\n1.5\n"))
	require.ErrorIs(t, err, tourio.ErrMalformedRow)
	require.Contains(t, err.Error(), "line 3")
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input_0.csv")
	out := filepath.Join(dir, "output_0.csv")
	require.NoError(t, os.WriteFile(in, []byte("x,y\n0,0\n0,1\n1,0\n1,1\n"), 0o644))

	pts, err := tourio.ReadPointsFile(in)
	require.NoError(t, err)
	require.Len(t, pts, 4)

	require.NoError(t, tourio.WriteTourFile(out, tsp.Tour{0, 1, 3, 2}))
	tour, err := tourio.ReadTourFile(out)
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(tour, len(pts)))

	_, err = tourio.ReadPointsFile(filepath.Join(dir, "missing.csv"))
	require.True(t, errors.Is(err, os.ErrNotExist))

	err = tourio.WriteTourFile(filepath.Join(dir, "no", "such", "dir.csv"), tour)
	require.Error(t, err)
}
