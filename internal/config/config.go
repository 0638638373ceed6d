// Package config provides Viper-based configuration loading for the
// robot simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/robosim/internal/game/world"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// TableConfig holds the startup table surface. The max edges are
// exclusive.
type TableConfig struct {
	XMin int `mapstructure:"xmin"`
	YMin int `mapstructure:"ymin"`
	XMax int `mapstructure:"xmax"`
	YMax int `mapstructure:"ymax"`
}

// Bounds converts the table settings to world bounds.
func (t TableConfig) Bounds() world.Bounds {
	return world.Bounds{XMin: t.XMin, YMin: t.YMin, XMax: t.XMax, YMax: t.YMax}
}

// SimulationConfig holds the startup entity roster.
type SimulationConfig struct {
	// Robots are the names of the robots created before the first
	// command is read.
	Robots []string `mapstructure:"robots"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Table      TableConfig      `mapstructure:"table"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// Scenario converts the configured table and roster into a startup
// scenario.
func (c Config) Scenario() *world.Scenario {
	return &world.Scenario{Table: c.Table.Bounds(), Robots: c.Simulation.Robots}
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := c.Table.Bounds().Validate(); err != nil {
		errs = append(errs, err.Error())
	}
	if err := c.Scenario().Validate(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies
// environment variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return unmarshal(v)
}

// Default builds the built-in configuration, still honoring
// environment variable overrides.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Default() (Config, error) {
	return unmarshal(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with ROBOSIM_ prefix
	v.SetEnvPrefix("ROBOSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("table.xmin", 0)
	v.SetDefault("table.ymin", 0)
	v.SetDefault("table.xmax", 5)
	v.SetDefault("table.ymax", 5)

	v.SetDefault("simulation.robots", []string{"robbie", "bertie"})
}
