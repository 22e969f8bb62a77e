// Package config loads the optional application config file. Everything has
// a default; a missing file is not an error, a broken one falls back to the
// defaults so the overlay always comes up.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPollMS is the pointer poll cadence for the cursor policy.
	DefaultPollMS = 50

	MinPollMS = 10
	MaxPollMS = 1000
)

// Config is the application config, separate from crosshair profiles: it
// holds behavior knobs, not appearance.
type Config struct {
	// PollIntervalMS is how often the pointer position is sampled.
	PollIntervalMS int `yaml:"poll_interval_ms"`
	// CloseToTray keeps the app in the tray when the panel is closed.
	CloseToTray bool `yaml:"close_to_tray"`
	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// ProfileDir is where file dialogs start. Empty means the config dir.
	ProfileDir string `yaml:"profile_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PollIntervalMS: DefaultPollMS,
		CloseToTray:    true,
		LogLevel:       "info",
	}
}

// DefaultPath returns <user config dir>/crosssight/config.yaml.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "crosssight", "config.yaml"), nil
}

// Load reads the config at path. A missing file yields the defaults with no
// error; any other failure yields the defaults plus the error so the caller
// can log it and keep going.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Default(), err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg.sanitized(), nil
}

// PollInterval returns the poll cadence as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

func (c Config) sanitized() Config {
	if c.PollIntervalMS < MinPollMS {
		c.PollIntervalMS = MinPollMS
	}
	if c.PollIntervalMS > MaxPollMS {
		c.PollIntervalMS = MaxPollMS
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = "info"
	}
	return c
}
