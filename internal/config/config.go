// Package config handles configuration for aiwatch.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultIntervalSeconds is the default scan cadence.
const DefaultIntervalSeconds = 10

// Config holds the agent's settings. Precedence, lowest to highest:
// defaults, environment, config file, command-line flags (applied by cmd).
type Config struct {
	IntervalSeconds int    `yaml:"interval_seconds"`
	LogFile         string `yaml:"logfile"`
	Signatures      string `yaml:"signatures"` // optional custom rule file
	LogLevel        string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		IntervalSeconds: DefaultIntervalSeconds,
		LogLevel:        "info",
	}
}

// Load builds the configuration from defaults, environment variables, and
// (if path is non-empty) a YAML config file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if v := os.Getenv("AIWATCH_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.IntervalSeconds = n
		}
	}
	if v := os.Getenv("AIWATCH_LOGFILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("AIWATCH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if cfg.IntervalSeconds <= 0 {
		cfg.IntervalSeconds = DefaultIntervalSeconds
	}

	return cfg, nil
}
