// Package logging provides zerolog logger construction for opsboard.
// Console output goes through a human-readable writer when stderr is a
// terminal; file output is JSON, rotated by lumberjack.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/otelassist/opsboard/internal/config"
)

// zerologConfigOnce ensures zerolog global settings are configured exactly once.
var zerologConfigOnce sync.Once //nolint:gochecknoglobals // One-time configuration

// configureZerologGlobals sets zerolog global field names so log
// entries match the store's snake_case convention. Safe for concurrent
// use; runs once.
func configureZerologGlobals() {
	zerologConfigOnce.Do(func() {
		zerolog.TimestampFieldName = "ts"
		zerolog.MessageFieldName = "event"
	})
}

// Options controls logger construction.
type Options struct {
	// Verbose enables debug-level logging.
	Verbose bool

	// Quiet raises the threshold to warn.
	Quiet bool

	// Console is the console destination; defaults to os.Stderr.
	Console io.Writer

	// ForceConsoleWriter renders the console destination with the
	// human-readable writer even when it is not a terminal (tests).
	ForceConsoleWriter bool
}

// SelectLevel maps the verbose/quiet flags onto a zerolog level.
// Verbose wins; the flags are mutually exclusive at the CLI layer.
func SelectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds the application logger from the log configuration and
// options. When cfg.File is set, entries additionally go to a rotated
// JSON file; file writer failures degrade to console-only logging
// rather than failing startup.
func New(cfg config.LogConfig, opts Options) zerolog.Logger {
	configureZerologGlobals()

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	if isTerminal(console) || opts.ForceConsoleWriter {
		console = zerolog.ConsoleWriter{Out: console}
	}

	var sink io.Writer = console
	if cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		sink = zerolog.MultiLevelWriter(console, fileWriter)
	}

	return zerolog.New(sink).
		Level(SelectLevel(opts.Verbose, opts.Quiet)).
		With().
		Timestamp().
		Logger()
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
