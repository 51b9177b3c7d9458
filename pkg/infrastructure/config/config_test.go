package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Zones)
	assert.Equal(t, "normal", cfg.Scenario)
	assert.Equal(t, 1, cfg.Cycles)
	assert.Equal(t, 8, cfg.MaxZonesPerCycle)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.False(t, cfg.Advisory.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Advisory.BaseURL)
	assert.Equal(t, 0.10, cfg.Allocation.ReserveFraction)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
zones: 25
scenario: scarce
cycles: 5
advisory:
  enabled: true
  model: mistral:7b
allocation:
  reserve_fraction: 0.25
output:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Zones)
	assert.Equal(t, "scarce", cfg.Scenario)
	assert.Equal(t, 5, cfg.Cycles)
	assert.True(t, cfg.Advisory.Enabled)
	assert.Equal(t, "mistral:7b", cfg.Advisory.Model)
	assert.Equal(t, 0.25, cfg.Allocation.ReserveFraction)
	assert.Equal(t, "json", cfg.Output.Format)

	// Values absent from the file keep their defaults
	assert.Equal(t, 8, cfg.MaxZonesPerCycle)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero zones", func(c *Config) { c.Zones = 0 }, "zones"},
		{"negative cycles", func(c *Config) { c.Cycles = -1 }, "cycles"},
		{"zero max zones", func(c *Config) { c.MaxZonesPerCycle = 0 }, "max_zones_per_cycle"},
		{"unknown scenario", func(c *Config) { c.Scenario = "plentiful" }, "scenario"},
		{"reserve fraction too high", func(c *Config) { c.Allocation.ReserveFraction = 1.0 }, "reserve_fraction"},
		{"negative reserve fraction", func(c *Config) { c.Allocation.ReserveFraction = -0.1 }, "reserve_fraction"},
		{"unknown output format", func(c *Config) { c.Output.Format = "xml" }, "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
