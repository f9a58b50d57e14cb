// Package config loads run settings for the lvtsp command.
//
// Sources, lowest priority first: built-in defaults, an optional lvtsp.env
// file, LVTSP_* environment variables, and command-line flags that were set
// explicitly.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvtsp/tsp"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when looking up environment variables.
const EnvPrefix = "LVTSP"

// Config stores all configuration of a run.
// The values are read by viper from a config file or environment variable.
type Config struct {
	TimeLimit   time.Duration `mapstructure:"TIME_LIMIT"`
	Seed        int64         `mapstructure:"SEED"`
	ProbeStride int           `mapstructure:"PROBE_STRIDE"`
	Lookahead   int           `mapstructure:"LOOKAHEAD"`
	StartTemp   float64       `mapstructure:"START_TEMP"`
	EndTemp     float64       `mapstructure:"END_TEMP"`
	LogLevel    string        `mapstructure:"LOG_LEVEL"`
	LogFormat   string        `mapstructure:"LOG_FORMAT"`
}

// FlagKeys maps command-line flag names to config keys. Only flags present
// in the set passed to Load are bound.
var FlagKeys = map[string]string{
	"time":       "TIME_LIMIT",
	"seed":       "SEED",
	"stride":     "PROBE_STRIDE",
	"lookahead":  "LOOKAHEAD",
	"start-temp": "START_TEMP",
	"end-temp":   "END_TEMP",
	"log-level":  "LOG_LEVEL",
	"log-format": "LOG_FORMAT",
}

// Defaults returns the configuration used when nothing is overridden.
// Seed 0 means "pick one from the clock" to the command.
func Defaults() Config {
	return Config{
		TimeLimit:   tsp.DefaultTimeLimit,
		ProbeStride: tsp.DefaultProbeStride,
		Lookahead:   tsp.DefaultLookahead,
		StartTemp:   tsp.DefaultStartTemp,
		EndTemp:     tsp.DefaultEndTemp,
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

// Load reads lvtsp.env from dir (if dir is non-empty and the file exists),
// then the environment, then the changed flags in flags (may be nil).
func Load(dir string, flags *pflag.FlagSet) (config Config, err error) {
	v := viper.New()
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.SetConfigName("lvtsp")
	v.SetConfigType("env")

	setDefaults(v, Defaults())

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err = v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %q: %w", name, err)
				}
			}
		}
	}

	if dir != "" {
		if err = v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return config, nil
}

// Options converts the run settings into solver options.
func (c Config) Options() tsp.Options {
	return tsp.Options{
		TimeLimit:   c.TimeLimit,
		ProbeStride: c.ProbeStride,
		Lookahead:   c.Lookahead,
		StartTemp:   c.StartTemp,
		EndTemp:     c.EndTemp,
		Seed:        c.Seed,
	}
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("TIME_LIMIT", d.TimeLimit)
	v.SetDefault("SEED", d.Seed)
	v.SetDefault("PROBE_STRIDE", d.ProbeStride)
	v.SetDefault("LOOKAHEAD", d.Lookahead)
	v.SetDefault("START_TEMP", d.StartTemp)
	v.SetDefault("END_TEMP", d.EndTemp)
	v.SetDefault("LOG_LEVEL", d.LogLevel)
	v.SetDefault("LOG_FORMAT", d.LogFormat)
}
