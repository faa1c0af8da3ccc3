// Package config provides configuration management for opsboard with
// layered precedence.
//
// Configuration sources are loaded in the following order (highest
// precedence first):
//  1. Environment variables (OPSBOARD_* prefix)
//  2. Project config (.opsboard/config.yaml)
//  3. User config (~/.opsboard/config.yaml)
//  4. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and
// internal/errors, but MUST NOT import internal/domain or other
// internal packages.
package config

import "time"

// Config is the root configuration structure for opsboard.
type Config struct {
	// Store contains settings for the remote record store.
	Store StoreConfig `yaml:"store" mapstructure:"store"`

	// Board contains settings for the task board views.
	Board BoardConfig `yaml:"board" mapstructure:"board"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// StoreConfig contains settings for the remote record store.
type StoreConfig struct {
	// URL is the backend base URL (e.g. https://xyz.example.co).
	// Required unless Offline is set.
	URL string `yaml:"url" mapstructure:"url"`

	// APIKey authenticates every table API request. Prefer setting it
	// through OPSBOARD_STORE_API_KEY rather than a config file.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`

	// Offline swaps the REST store for the seeded in-memory store so
	// the board runs without credentials.
	Offline bool `yaml:"offline" mapstructure:"offline"`
}

// BoardConfig contains settings for the task board views.
type BoardConfig struct {
	// RefreshInterval is how often the TUI re-fetches the snapshot.
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"`

	// Actor is the logged-in staff member's display name, used to
	// attribute completions. Empty falls back to the item's assignee,
	// then to the system actor.
	Actor string `yaml:"actor" mapstructure:"actor"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// File is the log file path; empty disables file logging.
	File string `yaml:"file" mapstructure:"file"`

	// MaxSizeMB caps the log file size before rotation.
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups caps how many rotated files are kept.
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`
}
