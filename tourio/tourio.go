// Package tourio reads point files and reads/writes tour files.
//
// Point file: a header line (conventionally "x,y") followed by one "x,y" pair
// of decimal numbers per line. Line order defines the point index 0..N-1.
//
// Tour file: the header "index" followed by one point index per line in
// visiting order. The return to the first city is implied.
//
// Blank lines (including a trailing newline) are ignored in both formats;
// surrounding whitespace on a field is trimmed.
package tourio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtsp/geom"
	"github.com/katalvlaran/lvtsp/tsp"
)

// TourHeader is the first line of every tour file.
const TourHeader = "index"

var (
	// ErrMissingHeader is returned when the input has no header line at all.
	ErrMissingHeader = errors.New("tourio: missing header line")

	// ErrMalformedRow is returned for a data line that does not parse. The
	// wrapping error names the 1-based line number.
	ErrMalformedRow = errors.New("tourio: malformed row")
)

// ReadPoints parses a point file from r.
func ReadPoints(r io.Reader) ([]geom.Point, error) {
	var pts []geom.Point
	err := scanRows(r, func(line int, row string) error {
		xs, ys, ok := strings.Cut(row, ",")
		if !ok {
			return fmt.Errorf("line %d: want \"x,y\", got %q: %w", line, row, ErrMalformedRow)
		}
		x, err := parseCoord(xs)
		if err != nil {
			return fmt.Errorf("line %d: x: %v: %w", line, err, ErrMalformedRow)
		}
		y, err := parseCoord(ys)
		if err != nil {
			return fmt.Errorf("line %d: y: %v: %w", line, err, ErrMalformedRow)
		}
		pts = append(pts, geom.Point{X: x, Y: y})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return pts, nil
}

// ReadPointsFile opens path and parses it with ReadPoints.
func ReadPointsFile(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open points: %w", err)
	}
	defer f.Close()

	pts, err := ReadPoints(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}

// ReadTour parses a tour file from r. It checks only the syntax; use
// tsp.ValidateTour to check the indices against a point set.
func ReadTour(r io.Reader) (tsp.Tour, error) {
	var tour tsp.Tour
	err := scanRows(r, func(line int, row string) error {
		idx, err := strconv.Atoi(strings.TrimSpace(row))
		if err != nil {
			return fmt.Errorf("line %d: index %q: %w", line, row, ErrMalformedRow)
		}
		tour = append(tour, idx)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tour, nil
}

// ReadTourFile opens path and parses it with ReadTour.
func ReadTourFile(path string) (tsp.Tour, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tour: %w", err)
	}
	defer f.Close()

	tour, err := ReadTour(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return tour, nil
}

// WriteTour writes the header and one index per line to w.
func WriteTour(w io.Writer, tour tsp.Tour) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(TourHeader)
	bw.WriteByte('\n')
	for _, idx := range tour {
		bw.WriteString(strconv.Itoa(idx))
		bw.WriteByte('\n')
	}

	// bufio.Writer keeps the first write error and reports it here.
	return bw.Flush()
}

// WriteTourFile creates (or truncates) path and writes tour to it.
func WriteTourFile(path string, tour tsp.Tour) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create tour: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close tour: %w", cerr)
		}
	}()

	if err = WriteTour(f, tour); err != nil {
		return fmt.Errorf("write tour: %w", err)
	}

	return nil
}

// scanRows skips the header and hands every non-blank line to fn together
// with its 1-based line number.
func scanRows(r io.Reader, fn func(line int, row string) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	header := false
	for sc.Scan() {
		line++
		row := strings.TrimSpace(sc.Text())
		if !header {
			header = true
			continue
		}
		if row == "" {
			continue
		}
		if err := fn(line, row); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", line+1, err)
	}
	if !header {
		return ErrMissingHeader
	}

	return nil
}

// parseCoord accepts any finite decimal.
func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}

	return v, nil
}
