// Package config is a layered configuration loader for the CLI's
// tunables: flags, then environment variables (MAXCLIQUE_ prefix), then
// defaults, using github.com/spf13/viper the way the perf-analysis
// service's pkg/config does for its own tunables. The solver packages
// themselves never import viper — they take a plain solver.Params. Load
// returns a Config; cmd/maxclique does not call it, and nothing in this
// module turns a Config into solver options.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the resolved set of CLI-tunable defaults (spec.md §6): the
// ones a user would otherwise have to repeat as flags on every
// invocation can instead be set via MAXCLIQUE_* environment variables or
// a config file.
type Config struct {
	Threads          int    `mapstructure:"threads"`
	StopAfterFinding int    `mapstructure:"stop_after_finding"`
	InitialBound     int    `mapstructure:"initial_bound"`
	SplitDepth       int    `mapstructure:"split_depth"`
	WorkDonation     bool   `mapstructure:"work_donation"`
	TimeoutSeconds   int    `mapstructure:"timeout_seconds"`
	Format           string `mapstructure:"format"`
	LogLevel         string `mapstructure:"log_level"`
}

// setDefaults mirrors SPEC_FULL.md's Open Question decision: split depth
// defaults to 0; threads defaults to 0 (solver.Solve resolves that to
// runtime.NumCPU()). Config has no donation size or wait settings.
func setDefaults(v *viper.Viper) {
	v.SetDefault("threads", 0)
	v.SetDefault("stop_after_finding", 0)
	v.SetDefault("initial_bound", 0)
	v.SetDefault("split_depth", 0)
	v.SetDefault("work_donation", false)
	v.SetDefault("timeout_seconds", 0)
	v.SetDefault("format", "dimacs")
	v.SetDefault("log_level", "info")
}

// Load resolves a Config from, in increasing priority: built-in
// defaults, an optional config file at configPath (skipped silently if
// empty or not found), MAXCLIQUE_*-prefixed environment variables, and
// finally flags already bound to fs (nil is fine — Load is often called
// before flag parsing, in which case only defaults/env/file apply).
func Load(configPath string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
			}
		}
	}

	v.SetEnvPrefix("MAXCLIQUE")
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("config: binding flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &cfg, nil
}
