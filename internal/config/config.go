// Package config provides file-based configuration for the campdata CLI.
//
// Configuration is a small YAML file covering data paths, request pacing,
// and logging. Every field has a working default, so the file is optional
// and may set only what it wants to change. Command-line flags override the
// file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Validation errors.
var (
	ErrMissingCampCSV     = errors.New("data.camp_csv is required")
	ErrMissingGradesCSV   = errors.New("data.grades_csv is required")
	ErrInvalidDelay       = errors.New("request delays must be non-negative")
	ErrInvalidCheckpoint  = errors.New("fetching.checkpoint_every must be at least 1")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidGeocoderURL = errors.New("geocoding.base_url must not be empty")
)

// Config is the complete campdata configuration.
type Config struct {
	Data      DataConfig      `yaml:"data"`
	Geocoding GeocodingConfig `yaml:"geocoding"`
	Fetching  FetchingConfig  `yaml:"fetching"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DataConfig locates the source table, the reference table, and the derived
// output artifact.
type DataConfig struct {
	CampCSV   string `yaml:"camp_csv"`
	GradesCSV string `yaml:"grades_csv"`
	OutputJS  string `yaml:"output_js"`
}

// GeocodingConfig controls the address lookup service.
type GeocodingConfig struct {
	BaseURL        string `yaml:"base_url"`
	RequestDelayMs int    `yaml:"request_delay_ms"`
}

// FetchingConfig controls webpage description fetching.
type FetchingConfig struct {
	RequestDelayMs  int `yaml:"request_delay_ms"`
	CheckpointEvery int `yaml:"checkpoint_every"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			CampCSV:   "data/2026 Summer Camp.csv",
			GradesCSV: "data/Age to Grade.csv",
			OutputJS:  "data.js",
		},
		Geocoding: GeocodingConfig{
			BaseURL:        "https://nominatim.openstreetmap.org/search",
			RequestDelayMs: 700,
		},
		Fetching: FetchingConfig{
			RequestDelayMs:  800,
			CheckpointEvery: 25,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file on top of the defaults and validates the
// result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Data.CampCSV == "" {
		return ErrMissingCampCSV
	}
	if c.Data.GradesCSV == "" {
		return ErrMissingGradesCSV
	}
	if c.Geocoding.BaseURL == "" {
		return ErrInvalidGeocoderURL
	}
	if c.Geocoding.RequestDelayMs < 0 || c.Fetching.RequestDelayMs < 0 {
		return ErrInvalidDelay
	}
	if c.Fetching.CheckpointEvery < 1 {
		return ErrInvalidCheckpoint
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

// GeocodeDelay returns the inter-request delay for geocoding lookups.
func (c *Config) GeocodeDelay() time.Duration {
	return time.Duration(c.Geocoding.RequestDelayMs) * time.Millisecond
}

// FetchDelay returns the inter-request delay for webpage fetches.
func (c *Config) FetchDelay() time.Duration {
	return time.Duration(c.Fetching.RequestDelayMs) * time.Millisecond
}
