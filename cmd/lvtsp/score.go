package main

import (
	"fmt"

	"github.com/katalvlaran/lvtsp/geom"
	"github.com/katalvlaran/lvtsp/tourio"
	"github.com/katalvlaran/lvtsp/tsp"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score <input> <tour>",
	Short: "Validate a tour file and print its length",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := scoreFile(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", score)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

// scoreFile checks that the tour at tourPath visits every point of
// pointsPath exactly once and returns its cyclic length.
func scoreFile(pointsPath, tourPath string) (float64, error) {
	pts, err := tourio.ReadPointsFile(pointsPath)
	if err != nil {
		return 0, err
	}
	tour, err := tourio.ReadTourFile(tourPath)
	if err != nil {
		return 0, err
	}
	if err = tsp.ValidateTour(tour, len(pts)); err != nil {
		return 0, fmt.Errorf("%s: %w", tourPath, err)
	}

	return tsp.TourScore(tour, geom.EuclideanDistances(pts)), nil
}
