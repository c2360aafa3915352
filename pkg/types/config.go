// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// LocatorConfig holds settings for locating text in articles.
type LocatorConfig struct {
	// IgnoreCase makes all substring searches case-insensitive.
	IgnoreCase bool `json:"ignore_case" yaml:"ignore_case" mapstructure:"ignore_case"`

	// PunctuationFallback retries word-index matching with punctuation
	// stripped when the exact token match finds nothing (default true).
	PunctuationFallback bool `json:"punctuation_fallback" yaml:"punctuation_fallback" mapstructure:"punctuation_fallback"`

	// Reconcile enables prefix-trimming reconciliation for targets that
	// straddle a paragraph boundary (default true).
	Reconcile bool `json:"reconcile" yaml:"reconcile" mapstructure:"reconcile"`
}

// MatcherConfig holds settings for person-name resolution.
type MatcherConfig struct {
	// StripPeriods removes periods from name parts during standardization
	// ("Jr." becomes "Jr").
	StripPeriods bool `json:"strip_periods" yaml:"strip_periods" mapstructure:"strip_periods"`
}

// StoreConfig holds settings for the SQLite store.
type StoreConfig struct {
	// DataDir is the directory containing the database file.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is json or console (default console).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all settings.
type Config struct {
	Locator LocatorConfig `json:"locator" yaml:"locator" mapstructure:"locator"`
	Matcher MatcherConfig `json:"matcher" yaml:"matcher" mapstructure:"matcher"`
	Store   StoreConfig   `json:"store" yaml:"store" mapstructure:"store"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Locator: LocatorConfig{
			PunctuationFallback: true,
			Reconcile:           true,
		},
		Store: StoreConfig{DataDir: "data"},
		Log:   LogConfig{Level: "info", Format: "console"},
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q: use debug, info, warn, or error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q: use json or console", c.Log.Format)
	}
	if c.Store.DataDir == "" {
		return fmt.Errorf("store.data_dir is required")
	}
	return nil
}
