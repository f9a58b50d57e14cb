package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvtsp/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configDir string
	cfg       config.Config
	logger    zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lvtsp",
	Short: "Time-budgeted heuristic solver for the planar TSP",
	Long: `lvtsp computes a short closed tour through a set of 2-D points within a
wall-clock budget: nearest-neighbour construction, randomized 2-opt and
simulated-annealing subsequence relocation.

Settings come from flags, LVTSP_* environment variables and an optional
lvtsp.env file in the --config directory, in that order of precedence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configDir, cmd.Flags())
		if err != nil {
			return err
		}

		logger, err = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		log.Logger = logger

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "Directory holding an optional lvtsp.env")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format (console, json)")
}

// newLogger builds the process logger. Console output is meant for a
// terminal; json is one object per line for log shippers.
func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(strings.ToLower(level)); err != nil {
			return zerolog.Logger{}, fmt.Errorf("log level %q: %w", level, err)
		}
	}

	switch strings.ToLower(format) {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: w}
	case "json":
	default:
		return zerolog.Logger{}, fmt.Errorf("unknown log format %q (want console or json)", format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
