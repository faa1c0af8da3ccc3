package cli

import (
	stderrors "errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/otelassist/opsboard/internal/config"
	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input.
	ExitInvalidInput = 2
)

// Output format constants.
const (
	// OutputText is the default human-readable output format.
	OutputText = "text"
	// OutputJSON is the machine-readable JSON output format.
	OutputJSON = "json"
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Output specifies the output format (text or json).
	Output string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
	// ConfigFile points at an explicit config file, bypassing the
	// layered lookup.
	ConfigFile string
	// Offline forces the seeded in-memory store regardless of config.
	Offline bool

	// cfg is the resolved configuration, populated by the root
	// command's PersistentPreRunE.
	cfg *config.Config
}

// AddGlobalFlags adds global flags to a command.
// These flags are available to all subcommands via PersistentFlags.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", OutputText, "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "path to config file")
	cmd.PersistentFlags().BoolVar(&flags.Offline, "offline", false, "use the seeded demo store instead of the remote backend")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds global flags to Viper for configuration file
// and environment variable support. The OPSBOARD_ prefix is used for
// environment variables (e.g., OPSBOARD_OUTPUT, OPSBOARD_VERBOSE).
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) error {
	// Use Root().PersistentFlags() to find flags defined on the root
	// command, even when called from a subcommand's PersistentPreRunE.
	rootFlags := cmd.Root().PersistentFlags()

	for _, name := range []string{"output", "verbose", "quiet", "offline"} {
		if err := v.BindPFlag(name, rootFlags.Lookup(name)); err != nil {
			return err
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	return nil
}

// loadConfig resolves the effective configuration for a run, honoring
// the --config and --offline flags.
func loadConfig(flags *GlobalFlags) (*config.Config, error) {
	var overrides []config.Override
	if flags.Offline {
		overrides = append(overrides, config.WithOffline())
	}
	if flags.ConfigFile != "" {
		return config.LoadFromFile(flags.ConfigFile, overrides...)
	}
	return config.Load(overrides...)
}

// ValidOutputFormats returns the list of valid output format values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// IsValidOutputFormat checks if the given format is a valid output format.
func IsValidOutputFormat(format string) bool {
	for _, valid := range ValidOutputFormats() {
		if format == valid {
			return true
		}
	}
	return false
}

// ExitCodeForError returns the appropriate exit code for the given
// error. Returns ExitSuccess (0) for nil errors, ExitInvalidInput (2)
// for user input errors (invalid flags, bad arguments), and ExitError
// (1) for all other errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if stderrors.Is(err, errors.ErrInvalidOutputFormat) || stderrors.Is(err, errors.ErrEmptyValue) {
		return ExitInvalidInput
	}

	// Cobra's own flag validation errors.
	if isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}

	return ExitError
}

// isInvalidInputError checks if an error message indicates invalid user
// input. This catches Cobra's built-in flag validation errors.
func isInvalidInputError(errMsg string) bool {
	patterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"invalid argument",
		"were all set",
		"accepts",
		"requires at least",
	}
	for _, p := range patterns {
		if strings.Contains(errMsg, p) {
			return true
		}
	}
	return false
}
