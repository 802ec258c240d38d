// Package config resolves where tally keeps its data and how it behaves.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML file, and TALLY_* environment variables. Command-line flags are applied
// on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendCSV    Backend = "csv"
	BackendSQLite Backend = "sqlite"
)

// ErrUnknownBackend indicates a backend name other than csv or sqlite.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Config holds all runtime settings.
type Config struct {
	// File is the CSV hours file used by the csv backend.
	File string `yaml:"file"`
	// Backend selects csv or sqlite storage.
	Backend Backend `yaml:"backend"`
	// DB is the SQLite database used by the sqlite backend.
	DB string `yaml:"db"`
	// MonthlyTarget is the number of hours aimed for each month; 0 disables progress display.
	MonthlyTarget float64 `yaml:"monthly_target"`
	// LogUseCases writes one log line per service call to stderr.
	LogUseCases bool `yaml:"log_use_cases"`
}

// Dir returns the default data directory, ~/.tally.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".tally"), nil
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig(dir string) *Config {
	return &Config{
		File:    filepath.Join(dir, "hours.csv"),
		Backend: BackendCSV,
		DB:      filepath.Join(dir, "tally.db"),
	}
}

// DefaultPath returns the config file location: TALLY_CONFIG, or
// config.yaml inside dir.
func DefaultPath(dir string) string {
	if v := os.Getenv("TALLY_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(dir, "config.yaml")
}

// Load builds a Config from defaults rooted at dir, the YAML file at path if
// it exists, and environment overrides.
func Load(dir, path string) (*Config, error) {
	cfg := DefaultConfig(dir)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TALLY_FILE"); v != "" {
		c.File = v
	}
	if v := os.Getenv("TALLY_BACKEND"); v != "" {
		c.Backend = Backend(v)
	}
	if v := os.Getenv("TALLY_DB"); v != "" {
		c.DB = v
	}
	if v := os.Getenv("TALLY_MONTHLY_TARGET"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			c.MonthlyTarget = f
		}
	}
	if v := os.Getenv("TALLY_LOG_USE_CASES"); v != "" {
		c.LogUseCases, _ = strconv.ParseBool(v)
	}
}

// Validate checks settings that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendCSV:
		if c.File == "" {
			return fmt.Errorf("csv backend needs a file path")
		}
	case BackendSQLite:
		if c.DB == "" {
			return fmt.Errorf("sqlite backend needs a database path")
		}
	default:
		return fmt.Errorf("%q: %w", c.Backend, ErrUnknownBackend)
	}
	if c.MonthlyTarget < 0 {
		return fmt.Errorf("monthly target must not be negative")
	}
	return nil
}
