// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the ratdom CLI, stored as
// YAML. Flags given on the command line override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ratdom/algebra"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// EnvLogLevel overrides Log.Level when set.
const EnvLogLevel = "RATDOM_LOG_LEVEL"

// Config is the full run configuration.
type Config struct {
	// Size is the number of balls n; the state space grows quadratically.
	Size int `yaml:"size"`

	// Rounds is the number of symbolic refinement rounds.
	Rounds int `yaml:"rounds"`

	// Workers bounds the goroutines of each matrix multiplication.
	Workers int `yaml:"workers"`

	// Samples are the λ values (fraction strings, each ≥ 1) for the
	// numeric cross-check.
	Samples []string `yaml:"samples"`

	// Powers is the number of matrix powers inspected per sample.
	Powers int `yaml:"powers"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Size:    3,
		Rounds:  3,
		Workers: 1,
		Samples: []string{"1", "3/2", "2", "5"},
		Powers:  3,
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Log.Level = lvl
	}
}

// Validate reports the first out-of-range field.
func (c *Config) Validate() error {
	switch {
	case c.Size < 1:
		return fmt.Errorf("size %d: %w", c.Size, ErrInvalid)
	case c.Rounds < 1:
		return fmt.Errorf("rounds %d: %w", c.Rounds, ErrInvalid)
	case c.Workers < 1:
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalid)
	case c.Powers < 1:
		return fmt.Errorf("powers %d: %w", c.Powers, ErrInvalid)
	}
	if _, err := c.Lambdas(); err != nil {
		return err
	}
	if _, err := c.ZapLevel(); err != nil {
		return err
	}

	return nil
}

// Lambdas parses Samples. Every value must be a fraction ≥ 1.
func (c *Config) Lambdas() ([]algebra.Fraction, error) {
	one := algebra.FractionFromInt(1)
	out := make([]algebra.Fraction, 0, len(c.Samples))
	for _, s := range c.Samples {
		f, err := algebra.ParseFraction(s)
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w: %v", s, ErrInvalid, err)
		}
		if f.Less(one) {
			return nil, fmt.Errorf("sample %q below 1: %w", s, ErrInvalid)
		}
		out = append(out, f)
	}

	return out, nil
}

// ZapLevel parses Log.Level.
func (c *Config) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level %q: %w", c.Log.Level, ErrInvalid)
	}

	return lvl, nil
}
