package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/errors"
)

// newViperInstance creates a new Viper instance with standard opsboard
// configuration: defaults, OPSBOARD_ env prefix, and a key replacer so
// store.api_key binds to OPSBOARD_STORE_API_KEY.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config
// file not found error. Missing config files are expected in many
// scenarios and are not errors.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// viperDecoderOption returns the decode hooks used when unmarshaling
// config: duration strings ("45s") and string slices.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
}

// unmarshalAndValidate unmarshals viper config into Config and
// validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Override applies a caller-supplied setting on top of every other
// source. The CLI uses it to push flag values (e.g. --offline) above
// the environment and config files before validation runs.
type Override func(v *viper.Viper)

// WithOffline forces offline mode regardless of config sources.
func WithOffline() Override {
	return func(v *viper.Viper) {
		v.Set("store.offline", true)
	}
}

// Load reads configuration from all available sources with proper
// precedence. Configuration is loaded in the following order (highest
// precedence first):
//  1. Explicit overrides (CLI flags)
//  2. Environment variables (OPSBOARD_* prefix)
//  3. Project config (.opsboard/config.yaml)
//  4. User config (~/.opsboard/config.yaml)
//  5. Built-in defaults
//
// The function returns an error only for actual configuration
// problems, not for missing config files.
func Load(overrides ...Override) (*Config, error) {
	v := newViperInstance()
	for _, o := range overrides {
		o(v)
	}

	// User config first: project config merged after it wins on
	// conflicting keys.
	if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigFile(filepath.Join(home, constants.ConfigDirName, configFileName))
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to read user config")
		}
	}

	projectPath := filepath.Join(constants.ConfigDirName, configFileName)
	if _, err := os.Stat(projectPath); err == nil {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to read project config")
		}
	}

	return unmarshalAndValidate(v)
}

// LoadFromFile reads configuration from one explicit file over the
// defaults, for --config overrides and tests.
func LoadFromFile(path string, overrides ...Override) (*Config, error) {
	v := newViperInstance()
	for _, o := range overrides {
		o(v)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if isConfigNotFoundError(err) || os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrConfigNotFound, "%s", path)
		}
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return unmarshalAndValidate(v)
}
