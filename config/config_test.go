// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/ratdom/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.Rounds)

	lambdas, err := cfg.Lambdas()
	require.NoError(t, err)
	assert.Len(t, lambdas, 4)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "nested", "ratdom.yaml")

	cfg := config.Default()
	cfg.Size = 5
	cfg.Samples = []string{"7/3"}
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	path := filepath.Join(t.TempDir(), "ratdom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rounds: 5\nlog:\n  level: debug\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Rounds)
	assert.Equal(t, 3, cfg.Size)
	lvl, err := cfg.ZapLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratdom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: [1"), 0o644))
	_, err := config.Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "warn")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"size":         func(c *config.Config) { c.Size = 0 },
		"rounds":       func(c *config.Config) { c.Rounds = -1 },
		"workers":      func(c *config.Config) { c.Workers = 0 },
		"powers":       func(c *config.Config) { c.Powers = 0 },
		"sample parse": func(c *config.Config) { c.Samples = []string{"x/2"} },
		"sample low":   func(c *config.Config) { c.Samples = []string{"1/2"} },
		"log level":    func(c *config.Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
