package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/ctxutil"
	"github.com/otelassist/opsboard/internal/domain"
	"github.com/otelassist/opsboard/internal/errors"
)

// createFlags holds the create command's own flags.
type createFlags struct {
	priority     string
	source       string
	assignee     string
	guestID      int64
	departmentID int64
}

// AddCreateCommand adds the create command to the root command.
func AddCreateCommand(parent *cobra.Command, flags *GlobalFlags) {
	var cf createFlags

	cmd := &cobra.Command{
		Use:   "create [description]",
		Short: "Create a task in the primary collection",
		Long: `Create a new task in the Tasks collection. The task starts in the
pending column; guest and department references are optional and join
against the lookup collections on the next board load.

When called without a description argument or flags on a terminal, an
interactive form collects the fields. With a description argument the
task is created directly, for scripts.

Examples:
  # Interactive form (for humans)
  opsboard create

  # Direct mode (for scripts)
  opsboard create "Oda 104 ekstra havlu"
  opsboard create "Klima arızası" --priority high --department-id 2
  opsboard create "Geç çıkış talebi" --source phone --guest-id 7`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd.Context(), cmd.OutOrStdout(), flags, &cf, args)
		},
	}

	cmd.Flags().StringVar(&cf.priority, "priority", "", "task priority (low|medium|high; empty defaults to medium)")
	cmd.Flags().StringVar(&cf.source, "source", "", "request channel (whatsapp|phone|direct|crm; empty defaults to direct)")
	cmd.Flags().StringVar(&cf.assignee, "assignee", "", "staff member assigned to the task")
	cmd.Flags().Int64Var(&cf.guestID, "guest-id", 0, "guest record to join against")
	cmd.Flags().Int64Var(&cf.departmentID, "department-id", 0, "department record to join against")
	parent.AddCommand(cmd)
}

func runCreate(ctx context.Context, w io.Writer, flags *GlobalFlags, cf *createFlags, args []string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	rec, err := resolveCreateRecord(cf, args, isInteractiveTerminal())
	if err != nil {
		return err
	}

	log := GetLogger()
	ctrl, err := newController(flags, log)
	if err != nil {
		return err
	}

	createCtx, cancel := context.WithTimeout(ctx, constants.DefaultFetchTimeout)
	defer cancel()
	if err := ctrl.CreateTask(createCtx, rec); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	log.Info().Str("description", rec.Description).Msg("task created")
	_, _ = fmt.Fprintln(w, "Görev oluşturuldu.")
	return nil
}

// hasAnyCreateFlags checks if any create flags were provided.
func hasAnyCreateFlags(cf *createFlags) bool {
	return cf.priority != "" || cf.source != "" || cf.assignee != "" ||
		cf.guestID != 0 || cf.departmentID != 0
}

// isInteractiveTerminal reports whether stdin is a terminal a form can
// run on.
func isInteractiveTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// resolveCreateRecord determines whether to use interactive or direct
// mode and returns the task record to insert.
func resolveCreateRecord(cf *createFlags, args []string, interactive bool) (*domain.RawTask, error) {
	// Interactive mode: no args, no flags, and a terminal to draw on.
	if len(args) == 0 && !hasAnyCreateFlags(cf) && interactive {
		return runCreateInteractive()
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("%w: description argument is required in direct mode", errors.ErrEmptyValue)
	}
	description := strings.TrimSpace(args[0])
	if description == "" {
		return nil, fmt.Errorf("%w: description", errors.ErrEmptyValue)
	}

	rec := &domain.RawTask{
		Description: description,
		Priority:    cf.priority,
		Source:      cf.source,
		AssignedTo:  cf.assignee,
	}
	if cf.guestID > 0 {
		rec.GuestID = &cf.guestID
	}
	if cf.departmentID > 0 {
		rec.DepartmentID = &cf.departmentID
	}
	return rec, nil
}

// createFormValues backs the interactive form's inputs. The id fields
// stay strings until the form validates them.
type createFormValues struct {
	description  string
	priority     string
	source       string
	assignee     string
	guestID      string
	departmentID string
}

// newCreateForm builds the interactive task form.
func newCreateForm(v *createFormValues) *huh.Form {
	priorityOptions := make([]huh.Option[string], 0, len(constants.Priorities()))
	for _, p := range constants.Priorities() {
		priorityOptions = append(priorityOptions, huh.NewOption(string(p), string(p)))
	}

	sourceOptions := make([]huh.Option[string], 0, len(constants.Sources()))
	for _, s := range constants.Sources() {
		sourceOptions = append(sourceOptions, huh.NewOption(string(s), string(s)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Talep").
				Description("Ne yapılması gerekiyor? (zorunlu)").
				Value(&v.description).
				CharLimit(500).
				Validate(validateDescription),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Öncelik").
				Options(priorityOptions...).
				Value(&v.priority),
			huh.NewSelect[string]().
				Title("Kanal").
				Description("Talep hangi kanaldan geldi?").
				Options(sourceOptions...).
				Value(&v.source),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Atanan (opsiyonel)").
				Value(&v.assignee),
			huh.NewInput().
				Title("Misafir kaydı (opsiyonel)").
				Description("Misafir tablosundaki id").
				Validate(validateOptionalID).
				Value(&v.guestID),
			huh.NewInput().
				Title("Departman kaydı (opsiyonel)").
				Description("Departman tablosundaki id").
				Validate(validateOptionalID).
				Value(&v.departmentID),
		),
	)
}

func validateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: description", errors.ErrEmptyValue)
	}
	return nil
}

func validateOptionalID(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("%w: %q", errors.ErrNotANumber, s)
	}
	return nil
}

// runCreateInteractive runs the interactive form and builds the record.
func runCreateInteractive() (*domain.RawTask, error) {
	v := &createFormValues{
		priority: string(constants.PriorityMedium),
		source:   string(constants.SourceDirect),
	}
	if err := newCreateForm(v).Run(); err != nil {
		return nil, fmt.Errorf("form canceled: %w", err)
	}

	rec := &domain.RawTask{
		Description: strings.TrimSpace(v.description),
		Priority:    v.priority,
		Source:      v.source,
		AssignedTo:  strings.TrimSpace(v.assignee),
	}
	// Validation already passed in the form.
	if v.guestID != "" {
		id, _ := strconv.ParseInt(v.guestID, 10, 64)
		rec.GuestID = &id
	}
	if v.departmentID != "" {
		id, _ := strconv.ParseInt(v.departmentID, 10, 64)
		rec.DepartmentID = &id
	}
	return rec, nil
}
