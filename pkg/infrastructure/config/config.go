// Package config loads process configuration from defaults, an optional
// YAML file, and AIDCYCLE_-prefixed environment variables, in that order
// of increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AdvisoryConfig controls the external advisory service client
type AdvisoryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	BaseURL        string `mapstructure:"base_url"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	NumPredict     int    `mapstructure:"num_predict"`
}

// AllocationConfig controls allocation policy knobs
type AllocationConfig struct {
	// ReserveFraction is the share of each pool quantity held back by the
	// fallback allocator (the "emergency reserve"). The validator always
	// enforces the full-pool bound regardless of this setting.
	ReserveFraction float64 `mapstructure:"reserve_fraction"`
}

// OutputConfig controls where and how cycle records are written
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"` // text, json
}

// LogConfig controls structured logging
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Console    bool   `mapstructure:"console"`
}

// Config is the full process configuration
type Config struct {
	Zones            int    `mapstructure:"zones"`
	Scenario         string `mapstructure:"scenario"`
	Cycles           int    `mapstructure:"cycles"`
	MaxZonesPerCycle int    `mapstructure:"max_zones_per_cycle"`
	Seed             int64  `mapstructure:"seed"`
	FixtureFile      string `mapstructure:"fixture_file"`

	Advisory   AdvisoryConfig   `mapstructure:"advisory"`
	Allocation AllocationConfig `mapstructure:"allocation"`
	Output     OutputConfig     `mapstructure:"output"`
	Log        LogConfig        `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("zones", 10)
	v.SetDefault("scenario", "normal")
	v.SetDefault("cycles", 1)
	v.SetDefault("max_zones_per_cycle", 8)
	v.SetDefault("seed", 42)
	v.SetDefault("fixture_file", "")

	v.SetDefault("advisory.enabled", false)
	v.SetDefault("advisory.base_url", "http://localhost:11434")
	v.SetDefault("advisory.model", "llama3.2:3b")
	v.SetDefault("advisory.timeout_seconds", 120)
	v.SetDefault("advisory.num_predict", 2048)

	v.SetDefault("allocation.reserve_fraction", 0.10)

	v.SetDefault("output.dir", "outputs")
	v.SetDefault("output.format", "text")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 14)
	v.SetDefault("log.console", true)
}

// Load reads configuration; path may be empty to use defaults and env only
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("AIDCYCLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks configuration invariants
func (c *Config) Validate() error {
	if c.Zones <= 0 {
		return fmt.Errorf("zones must be positive, got %d", c.Zones)
	}
	if c.Cycles <= 0 {
		return fmt.Errorf("cycles must be positive, got %d", c.Cycles)
	}
	if c.MaxZonesPerCycle <= 0 {
		return fmt.Errorf("max_zones_per_cycle must be positive, got %d", c.MaxZonesPerCycle)
	}
	switch c.Scenario {
	case "abundant", "normal", "scarce":
	default:
		return fmt.Errorf("unknown scenario %q (want abundant, normal or scarce)", c.Scenario)
	}
	if c.Allocation.ReserveFraction < 0 || c.Allocation.ReserveFraction >= 1 {
		return fmt.Errorf("allocation.reserve_fraction must be in [0,1), got %g", c.Allocation.ReserveFraction)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", c.Output.Format)
	}
	return nil
}
