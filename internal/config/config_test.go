package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/errors"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Store.URL = "https://ops.example.com"
	cfg.Store.APIKey = "key"
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, constants.DefaultRefreshInterval, cfg.Board.RefreshInterval)
	assert.False(t, cfg.Store.Offline)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "missing url",
			mutate:  func(c *Config) { c.Store.URL = "" },
			wantErr: errors.ErrConfigInvalidStore,
		},
		{
			name:    "relative url",
			mutate:  func(c *Config) { c.Store.URL = "ops.example.com" },
			wantErr: errors.ErrConfigInvalidStore,
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.Store.APIKey = "" },
			wantErr: errors.ErrConfigInvalidStore,
		},
		{
			name: "offline waives store settings",
			mutate: func(c *Config) {
				c.Store = StoreConfig{Offline: true}
			},
		},
		{
			name:    "zero refresh interval",
			mutate:  func(c *Config) { c.Board.RefreshInterval = 0 },
			wantErr: errors.ErrConfigInvalidBoard,
		},
		{
			name:    "negative rotation",
			mutate:  func(c *Config) { c.Log.MaxBackups = -1 },
			wantErr: errors.ErrConfigInvalidBoard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NilConfig(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), errors.ErrConfigNil)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
store:
  url: https://ops.example.com
  api_key: secret
board:
  refresh_interval: 45s
  actor: Ayşe
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://ops.example.com", cfg.Store.URL)
	assert.Equal(t, "secret", cfg.Store.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Board.RefreshInterval)
	assert.Equal(t, "Ayşe", cfg.Board.Actor)
	// Unset keys keep defaults.
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, errors.ErrConfigNotFound)
}

func TestLoadFromFile_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  offline: true\nboard:\n  refresh_interval: 0s\n"), 0o600))

	_, err := LoadFromFile(path)
	assert.ErrorIs(t, err, errors.ErrConfigInvalidBoard)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("OPSBOARD_STORE_URL", "https://env.example.com")
	t.Setenv("OPSBOARD_STORE_API_KEY", "env-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Store.URL)
	assert.Equal(t, "env-key", cfg.Store.APIKey)
}

func TestLoadFromFile_OfflineOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	// No store url or api_key: only valid because the override forces
	// offline mode above every other source.
	require.NoError(t, os.WriteFile(path, []byte("board:\n  actor: Ayşe\n"), 0o600))

	_, err := LoadFromFile(path)
	require.Error(t, err)

	cfg, err := LoadFromFile(path, WithOffline())
	require.NoError(t, err)
	assert.True(t, cfg.Store.Offline)
	assert.Equal(t, "Ayşe", cfg.Board.Actor)
}
