// Package main provides the entry point for the opsboard CLI.
package main

import (
	"context"
	"os"

	"github.com/otelassist/opsboard/internal/cli"
	"github.com/otelassist/opsboard/internal/signal"
)

// Build information, injected via ldflags.
//
//nolint:gochecknoglobals // Set at build time
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	h := signal.NewHandler(context.Background())
	defer h.Stop()

	err := cli.Execute(h.Context(), cli.BuildInfo{Version: version, Commit: commit, Date: date})
	os.Exit(cli.ExitCodeForError(err))
}
