package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/otelassist/opsboard/internal/board"
	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/ctxutil"
	"github.com/otelassist/opsboard/internal/domain"
	"github.com/otelassist/opsboard/internal/tui"
)

// listRow is one board item in the list command's JSON output. It adds
// the flat board id to the merged item fields.
type listRow struct {
	ID int64 `json:"id"`
	domain.WorkItem
}

// AddListCommand adds the non-interactive list command to the root command.
func AddListCommand(parent *cobra.Command, flags *GlobalFlags) {
	var stats bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the merged board",
		Long: `Print the merged task board without opening the interactive view.

The default output groups cards by column. With --stats, per-column
counts and average completion/work times are appended. With
--output json, the merged items are printed as a JSON array for
scripting.

Examples:
  opsboard list                  # Grouped text listing
  opsboard list --stats          # Listing plus board statistics
  opsboard list --output json    # Machine-readable items`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), flags, stats)
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "append board statistics")
	parent.AddCommand(cmd)
}

func runList(ctx context.Context, w io.Writer, flags *GlobalFlags, stats bool) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	tui.CheckNoColor()

	ctrl, err := newController(flags, GetLogger())
	if err != nil {
		return err
	}

	loadCtx, cancel := context.WithTimeout(ctx, constants.DefaultFetchTimeout)
	defer cancel()
	if err := ctrl.Load(loadCtx); err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}

	if flags.Output == OutputJSON {
		return writeListJSON(w, ctrl.Items(), ctrl.Summary(), stats)
	}

	_, _ = fmt.Fprint(w, tui.RenderList(ctrl.Items()))
	if stats {
		_, _ = fmt.Fprint(w, tui.RenderSummary(ctrl.Summary()))
	}
	return nil
}

func writeListJSON(w io.Writer, items []domain.WorkItem, sum board.Summary, stats bool) error {
	rows := make([]listRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, listRow{ID: item.ID(), WorkItem: item})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if !stats {
		return enc.Encode(rows)
	}
	return enc.Encode(struct {
		Items []listRow     `json:"items"`
		Stats board.Summary `json:"stats"`
	}{Items: rows, Stats: sum})
}
