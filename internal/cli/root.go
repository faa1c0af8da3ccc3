// Package cli provides the command-line interface for opsboard.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/otelassist/opsboard/internal/config"
	"github.com/otelassist/opsboard/internal/errors"
	"github.com/otelassist/opsboard/internal/logging"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// This is set during PersistentPreRunE and should be accessed via
// GetLogger. Access is protected by globalLoggerMu for thread safety.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// IMPORTANT: This function MUST only be called after the root command's
// PersistentPreRunE has executed. Calling it before initialization will
// return a zero-value logger that discards all log output.
//
// This function is safe for concurrent use.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

func setGlobalLogger(log zerolog.Logger) {
	globalLoggerMu.Lock()
	globalLogger = log
	globalLoggerMu.Unlock()
}

// newRootCmd creates and returns the root command for the opsboard CLI.
// This function-based approach avoids package-level command globals,
// making the code more testable.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "opsboard",
		Short: "opsboard - hotel operations task board",
		Long: `opsboard merges the hotel CRM's housekeeping tasks and guest requests
into a single three-column task board.

Features:
  • Interactive terminal board with keyboard card movement
  • Unified view over the Tasks and GuestRequests collections
  • Completion and work time tracking per card
  • Offline demo mode with seeded data`,
		Version: formatVersion(info),
		// Run displays help when the root command is invoked without
		// subcommands, so PersistentPreRunE still validates flags.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			// Help, completion and the bare root must work without a
			// valid config; only store-backed commands load it.
			cfg := config.DefaultConfig()
			if commandNeedsConfig(cmd) {
				loaded, err := loadConfig(flags)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			log := logging.New(cfg.Log, logging.Options{
				Verbose: flags.Verbose,
				Quiet:   flags.Quiet,
			})
			setGlobalLogger(log)
			flags.cfg = cfg
			return nil
		},
		// SilenceUsage prevents printing usage on error
		// (we handle our own error messages)
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	AddBoardCommand(cmd, flags)
	AddListCommand(cmd, flags)
	AddCreateCommand(cmd, flags)

	return cmd
}

// commandNeedsConfig reports whether the invoked command talks to the
// record store and therefore needs a resolved configuration.
func commandNeedsConfig(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "board", "list", "create":
		return true
	default:
		return false
	}
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	return cmd.ExecuteContext(ctx)
}
