// Package config loads the optional checkbook configuration file.
//
// The file is YAML, by default at $XDG_CONFIG_HOME/checkbook/config.yaml
// (falling back to ~/.config). Everything in it has a working default, and
// command-line flags override whatever the file sets.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds the application configuration.
type Config struct {
	// Store selects the persistence backend: "file" (a directory of JSON
	// files) or "sqlite" (a single database file).
	Store string `yaml:"store"`

	// Path is the data location: a directory for the file backend, a
	// database file for the sqlite backend.
	Path string `yaml:"path"`

	// Currency is the display currency code used by the register and
	// exports. Computations are currency-agnostic.
	Currency string `yaml:"currency"`

	// Accounts overrides the default chart-of-accounts seed used when the
	// store has no account list yet.
	Accounts []string `yaml:"accounts"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Store:    StoreFile,
		Path:     defaultDataPath(),
		Currency: "USD",
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "checkbook", "config.yaml")
}

// Load reads the config file at path, applying defaults for anything unset.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("unknown store backend %q (expected %q or %q)", c.Store, StoreFile, StoreSQLite)
	}
	if c.Path == "" {
		return fmt.Errorf("path must not be empty")
	}
	return nil
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".local", "share", "checkbook")
}
