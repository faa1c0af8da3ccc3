package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/otelassist/opsboard/internal/board"
	"github.com/otelassist/opsboard/internal/store"
	"github.com/otelassist/opsboard/internal/tui"
)

// AddBoardCommand adds the interactive board command to the root command.
func AddBoardCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive task board",
		Long: `Open the three-column task board in the terminal.

Cards from the Tasks and GuestRequests collections appear side by side.
Move the cursor with the arrow keys, pick a card up with space, drop it
on another column to change its status, or on a neighboring card to
reorder within the column. Escape puts a picked card back.

Examples:
  opsboard board             # Connect to the configured backend
  opsboard board --offline   # Run on seeded demo data`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoard(cmd, flags)
		},
	}
	parent.AddCommand(cmd)
}

func runBoard(cmd *cobra.Command, flags *GlobalFlags) error {
	ctx := cmd.Context()
	log := GetLogger()
	tui.CheckNoColor()

	ctrl, err := newController(flags, log)
	if err != nil {
		return err
	}
	defer ctrl.Flush()

	model := tui.NewBoardModel(ctx, ctrl, tui.BoardConfig{
		RefreshInterval: flags.cfg.Board.RefreshInterval,
		Actor:           flags.cfg.Board.Actor,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("board session failed: %w", err)
	}
	return nil
}

// newController builds the board controller over the configured record
// store. Offline mode swaps in the seeded in-memory store.
func newController(flags *GlobalFlags, log zerolog.Logger) (*board.Controller, error) {
	var st store.RecordStore
	if flags.cfg.Store.Offline {
		log.Debug().Msg("using offline demo store")
		st = store.NewDemoStore(time.Now())
	} else {
		st = store.NewRESTStore(flags.cfg.Store.URL, flags.cfg.Store.APIKey, store.WithLogger(log))
	}
	return board.NewController(st, board.WithControllerLogger(log)), nil
}
