package config

import (
	"net/url"

	"github.com/otelassist/opsboard/internal/errors"
)

// configFileName is the file name looked up inside config directories.
const configFileName = "config.yaml"

// Validate checks a Config for values the application cannot run with.
// Offline mode waives the store requirements, since the in-memory
// store needs no deployment identity.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if !cfg.Store.Offline {
		if cfg.Store.URL == "" {
			return errors.Wrap(errors.ErrConfigInvalidStore, "store.url is required")
		}
		u, err := url.Parse(cfg.Store.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.Wrapf(errors.ErrConfigInvalidStore, "store.url %q is not an absolute URL", cfg.Store.URL)
		}
		if cfg.Store.APIKey == "" {
			return errors.Wrap(errors.ErrConfigInvalidStore, "store.api_key is required")
		}
	}

	if cfg.Board.RefreshInterval <= 0 {
		return errors.Wrap(errors.ErrConfigInvalidBoard, "board.refresh_interval must be positive")
	}
	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 {
		return errors.Wrap(errors.ErrConfigInvalidBoard, "log rotation values must not be negative")
	}
	return nil
}
