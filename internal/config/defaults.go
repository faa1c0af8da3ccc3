package config

import (
	"github.com/spf13/viper"

	"github.com/otelassist/opsboard/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by
// config files and environment variables.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			// URL and APIKey have no defaults; they identify a
			// deployment and must come from the environment or a
			// config file.
			Offline: false,
		},
		Board: BoardConfig{
			RefreshInterval: constants.DefaultRefreshInterval,
		},
		Log: LogConfig{
			// File: empty means console-only logging.
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// setDefaults registers the default values on a viper instance so the
// layering keeps them as the lowest-precedence source.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("store.url", def.Store.URL)
	v.SetDefault("store.api_key", def.Store.APIKey)
	v.SetDefault("store.offline", def.Store.Offline)
	v.SetDefault("board.refresh_interval", def.Board.RefreshInterval)
	v.SetDefault("board.actor", def.Board.Actor)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", def.Log.MaxBackups)
}
