package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvtsp/tourio"
	"github.com/katalvlaran/lvtsp/tsp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve <input> <output>",
	Short: "Compute a tour for a point file",
	Long: `Reads points ("x,y" per line after a header), runs the multi-start
heuristic for the configured time and writes the visiting order to the output
file ("index" header, one point index per line). The final score is printed
to stdout.`,
	Args: cobra.ExactArgs(2),
	RunE: runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.Duration("time", tsp.DefaultTimeLimit, "Total time budget")
	f.Int64("seed", 0, "Random seed (0 = derive from the clock)")
	f.Int("stride", tsp.DefaultProbeStride, "Probe every k-th city as a start")
	f.Int("lookahead", tsp.DefaultLookahead, "Constructor lookahead depth (1 = nearest neighbour)")
	f.Float64("start-temp", tsp.DefaultStartTemp, "Annealing start temperature")
	f.Float64("end-temp", tsp.DefaultEndTemp, "Annealing end temperature")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	opts := cfg.Options()
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	runLog := logger.With().Str("run_id", uuid.NewString()).Logger()
	opts.Observer = stageLogger(runLog)

	runLog.Info().
		Str("input", args[0]).
		Dur("time_limit", opts.TimeLimit).
		Int64("seed", opts.Seed).
		Int("lookahead", opts.Lookahead).
		Msg("Starting solve")

	res, err := solveFile(args[0], args[1], opts)
	if err != nil {
		return err
	}

	runLog.Info().
		Str("output", args[1]).
		Int("points", len(res.Tour)).
		Int("start", res.Start).
		Float64("score", res.Score).
		Msg("Solve complete")

	fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", res.Score)

	return nil
}

// solveFile reads points from in, solves and writes the tour to out.
// An output path that cannot be written fails before the search starts.
func solveFile(in, out string, opts tsp.Options) (tsp.Result, error) {
	pts, err := tourio.ReadPointsFile(in)
	if err != nil {
		return tsp.Result{}, err
	}
	if err = checkWritable(out); err != nil {
		return tsp.Result{}, err
	}

	res, err := tsp.SolvePoints(pts, opts)
	if err != nil {
		return tsp.Result{}, err
	}

	if err = tourio.WriteTourFile(out, res.Tour); err != nil {
		return tsp.Result{}, err
	}

	return res, nil
}

// checkWritable opens path for writing without truncating it.
func checkWritable(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("output %s: %w", path, err)
	}

	return f.Close()
}

// stageLogger turns stage reports into log lines. Probes can number in the
// thousands, so they go to debug.
func stageLogger(l zerolog.Logger) func(tsp.StageReport) {
	return func(r tsp.StageReport) {
		ev := l.Info()
		if r.Stage == tsp.StageProbe {
			ev = l.Debug()
		}
		ev.Str("stage", string(r.Stage)).
			Int("start", r.Start).
			Float64("score", r.Score).
			Dur("elapsed", r.Elapsed).
			Msg("Stage done")
	}
}
