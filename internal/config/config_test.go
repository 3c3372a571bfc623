package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data:
  camp_csv: testdata/camps.csv
geocoding:
  request_delay_ms: 1500
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Data.CampCSV != "testdata/camps.csv" {
		t.Errorf("camp_csv = %q", cfg.Data.CampCSV)
	}
	// Untouched fields keep their defaults.
	if cfg.Data.GradesCSV != "data/Age to Grade.csv" {
		t.Errorf("grades_csv default lost: %q", cfg.Data.GradesCSV)
	}
	if cfg.Fetching.CheckpointEvery != 25 {
		t.Errorf("checkpoint_every default lost: %d", cfg.Fetching.CheckpointEvery)
	}
	if cfg.GeocodeDelay() != 1500*time.Millisecond {
		t.Errorf("geocode delay = %v", cfg.GeocodeDelay())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"missing camp csv", func(c *Config) { c.Data.CampCSV = "" }, ErrMissingCampCSV},
		{"missing grades csv", func(c *Config) { c.Data.GradesCSV = "" }, ErrMissingGradesCSV},
		{"empty geocoder url", func(c *Config) { c.Geocoding.BaseURL = "" }, ErrInvalidGeocoderURL},
		{"negative delay", func(c *Config) { c.Geocoding.RequestDelayMs = -1 }, ErrInvalidDelay},
		{"zero checkpoint", func(c *Config) { c.Fetching.CheckpointEvery = 0 }, ErrInvalidCheckpoint},
		{"bad level", func(c *Config) { c.Logging.Level = "chatty" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, expected %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
