package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvtsp/geom"
	"github.com/katalvlaran/lvtsp/tourio"
	"github.com/katalvlaran/lvtsp/tune"
	"github.com/spf13/cobra"
)

var (
	tuneIters   int
	tunePop     int
	tuneProbe   time.Duration
	tuneMaxTemp float64
)

var tuneCmd = &cobra.Command{
	Use:   "tune <input>",
	Short: "Search annealing temperatures for a point file",
	Long: `Runs the Mayfly optimizer over (start, end) temperature pairs. Every
candidate anneals the same baseline tour for --probe and is scored by the
resulting length. Feed the result back through --start-temp/--end-temp or
START_TEMP/END_TEMP in lvtsp.env.`,
	Args: cobra.ExactArgs(1),
	RunE: runTune,
}

func init() {
	tuneCmd.Flags().IntVar(&tuneIters, "iters", tune.DefaultIterations, "Max optimizer iterations")
	tuneCmd.Flags().IntVar(&tunePop, "pop", tune.DefaultPopulation, "Population size (at least 20)")
	tuneCmd.Flags().DurationVar(&tuneProbe, "probe", tune.DefaultProbe, "Relocation budget per evaluation")
	tuneCmd.Flags().Float64Var(&tuneMaxTemp, "max-temp", 0, "Upper bound for the start temperature (0 = mean edge length)")
	tuneCmd.Flags().Int64("seed", 0, "Random seed (0 = derive from the clock)")

	rootCmd.AddCommand(tuneCmd)
}

func runTune(cmd *cobra.Command, args []string) error {
	pts, err := tourio.ReadPointsFile(args[0])
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info().
		Str("input", args[0]).
		Int("points", len(pts)).
		Int("iters", tuneIters).
		Int("pop", tunePop).
		Dur("probe", tuneProbe).
		Msg("Starting tuning")

	start := time.Now()
	res, err := tune.Temperatures(geom.EuclideanDistances(pts), tune.Options{
		MaxTemp:    tuneMaxTemp,
		Probe:      tuneProbe,
		Iterations: tuneIters,
		Population: tunePop,
		Seed:       seed,
	})
	if err != nil {
		return err
	}

	logger.Info().
		Dur("elapsed", time.Since(start)).
		Int("evaluations", res.Evaluations).
		Float64("baseline", res.Baseline).
		Float64("score", res.Score).
		Msg("Tuning complete")

	fmt.Fprintf(cmd.OutOrStdout(), "start-temp=%.6g end-temp=%.6g score=%.6f\n", res.StartTemp, res.EndTemp, res.Score)

	return nil
}
