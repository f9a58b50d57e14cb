// Package lvtsp is a heuristic engine for the Euclidean Travelling Salesman
// Problem: given up to a few hundred thousand points, it returns a short
// closed tour within a wall-clock budget.
//
// What is inside:
//
//	geom/          points and the dense symmetric distance matrix
//	tsp/           constructors, randomized 2-opt, annealed relocation, Solve
//	tourio/        the CSV-like point and tour file formats
//	config/        defaults from lvtsp.env and LVTSP_* environment variables
//	tune/          search for annealing temperatures with the Mayfly optimizer
//	cmd/lvtsp/     the command line: solve, score, tune, version
//
// Quick example:
//
//	pts, _ := tourio.ReadPointsFile("input_1.csv")
//	res, _ := tsp.SolvePoints(pts, tsp.DefaultOptions())
//	_ = tourio.WriteTourFile("output_1.csv", res.Tour)
//
// Or from the shell:
//
//	lvtsp solve input_1.csv output_1.csv --time 30s
//	lvtsp score input_1.csv output_1.csv
//
//	go install github.com/katalvlaran/lvtsp/cmd/lvtsp@latest
package lvtsp
