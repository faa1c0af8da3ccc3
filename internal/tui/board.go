package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/otelassist/opsboard/internal/board"
	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/domain"
	"github.com/otelassist/opsboard/internal/store"
)

// BoardConfig holds configuration for the interactive board.
type BoardConfig struct {
	// RefreshInterval is how often the board re-fetches the snapshot.
	RefreshInterval time.Duration

	// Actor is the staff member's name, attributed on completions.
	Actor string
}

// BoardModel is the Bubble Tea model for the interactive task board.
// It implements tea.Model (Init, Update, View).
//
// Cards move between columns with a keyboard pick-up-and-drop gesture
// that drives the same reorder engine semantics as a pointer drag:
// picking a card starts the drag session, dropping on a column header
// is a column target, dropping on a neighboring card is an item target,
// and escape cancels.
type BoardModel struct {
	ctrl   *board.Controller
	config BoardConfig

	// Cursor position: column index into constants.Statuses() and row
	// within that column.
	col int
	row int

	// picked is the flat id of the card being carried, 0 when none.
	picked int64

	loading bool
	spin    spinner.Model
	err     error

	lastUpdate time.Time
	width      int
	height     int
	quitting   bool

	// baseCtx is stored for use in async Bubble Tea commands.
	// Storing context in structs is generally discouraged, but Bubble
	// Tea's async command model requires it for proper context
	// propagation.
	baseCtx context.Context //nolint:containedctx // Required for Bubble Tea async commands
}

// TickMsg signals time for a refresh.
type TickMsg time.Time

// RefreshMsg carries a fresh snapshot from an async load.
type RefreshMsg struct {
	Snap *store.Snapshot
	Err  error
}

// NewBoardModel creates a board model over the given controller.
func NewBoardModel(ctx context.Context, ctrl *board.Controller, cfg BoardConfig) *BoardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)
	return &BoardModel{
		ctrl:    ctrl,
		config:  cfg,
		loading: true,
		spin:    sp,
		width:   80,
		height:  24,
		baseCtx: ctx,
	}
}

// Init starts the spinner, the first load and the refresh timer.
func (m *BoardModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refreshData(), m.tick())
}

// Update handles messages and returns the updated model and any commands.
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		// Skip the refresh while a card is in hand: replacing the item
		// slice mid-gesture would drop the card on stale coordinates.
		if m.picked != 0 {
			return m, m.tick()
		}
		return m, tea.Batch(m.refreshData(), m.tick())

	case RefreshMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.ctrl.Apply(msg.Snap)
		m.lastUpdate = time.Now()
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "r":
		m.loading = true
		return m, m.refreshData()

	case "esc":
		// Cancelled drag: state untouched.
		if m.picked != 0 {
			m.ctrl.DragCancel()
			m.picked = 0
		}
		return m, nil

	case "left", "h":
		return m.moveHorizontal(-1), nil

	case "right", "l":
		return m.moveHorizontal(1), nil

	case "up", "k":
		return m.moveVertical(-1), nil

	case "down", "j":
		return m.moveVertical(1), nil

	case " ", "enter":
		return m.togglePick(), nil
	}
	return m, nil
}

// togglePick picks up the card under the cursor, or drops a carried
// card onto its current column (a same-column drop, which the engine
// treats as a no-op).
func (m *BoardModel) togglePick() *BoardModel {
	if m.picked != 0 {
		m.dropOnColumn(m.currentStatus())
		return m
	}
	if item, ok := m.itemUnderCursor(); ok {
		m.picked = item.ID()
		m.ctrl.DragStart(m.picked)
	}
	return m
}

// moveHorizontal moves the cursor across columns; with a card in hand
// it is a column-target drop on the adjacent column.
func (m *BoardModel) moveHorizontal(delta int) *BoardModel {
	statuses := constants.Statuses()
	next := m.col + delta
	if next < 0 || next >= len(statuses) {
		return m
	}
	if m.picked != 0 {
		m.dropOnColumn(statuses[next])
		m.col = next
		m.clampCursor()
		return m
	}
	m.col = next
	m.clampCursor()
	return m
}

// moveVertical moves the cursor within the column; with a card in hand
// it is an item-target drop on the vertical neighbor, i.e. a local
// reorder within the column.
func (m *BoardModel) moveVertical(delta int) *BoardModel {
	items := m.columnItems(m.currentStatus())
	next := m.row + delta
	if next < 0 || next >= len(items) {
		return m
	}
	if m.picked != 0 {
		m.ctrl.DragEnd(board.DropTarget{Kind: board.TargetItem, ItemID: items[next].ID()}, m.config.Actor)
		// Keep carrying: re-grab so repeated moves chain naturally.
		m.ctrl.DragStart(m.picked)
		m.row = next
		return m
	}
	m.row = next
	return m
}

// dropOnColumn finishes the drag session with a column target.
func (m *BoardModel) dropOnColumn(status constants.Status) {
	m.ctrl.DragEnd(board.DropTarget{Kind: board.TargetColumn, Status: status}, m.config.Actor)
	m.picked = 0
}

// View renders the current state to a string.
func (m *BoardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return fmt.Sprintf("\n  %s panoyu yükleniyor...\n", m.spin.View())
	}
	if m.err != nil {
		return m.errorView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.columnsView())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m *BoardModel) errorView() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(ColorError).Render("Pano yüklenemedi"))
	b.WriteString("\n\n  " + m.err.Error() + "\n\n")
	b.WriteString(StyleDim.Render("  r: tekrar dene · q: çık"))
	return b.String()
}

func (m *BoardModel) headerView() string {
	title := StyleBold.Render("Operasyon Panosu")
	if m.lastUpdate.IsZero() {
		return title
	}
	stamp := StyleDim.Render("güncellendi " + RelativeAge(m.lastUpdate.UnixMilli()))
	return title + "  " + stamp
}

func (m *BoardModel) columnsView() string {
	statuses := constants.Statuses()
	colWidth := m.width/len(statuses) - 2
	if colWidth < 20 {
		colWidth = 20
	}

	columns := make([]string, 0, len(statuses))
	for i, status := range statuses {
		columns = append(columns, m.columnView(status, i == m.col, colWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m *BoardModel) columnView(status constants.Status, active bool, width int) string {
	color := StatusColors()[status]
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Width(width).
		Padding(0, 1)
	if active {
		border = border.BorderForeground(ColorPrimary)
	}

	items := m.columnItems(status)
	head := lipgloss.NewStyle().Foreground(color).Bold(true).
		Render(fmt.Sprintf("%s %s (%d)", StatusIcon(status), StatusTitle(status), len(items)))

	lines := []string{head, ""}
	if len(items) == 0 {
		lines = append(lines, StyleDim.Render("boş"))
	}
	for i, item := range items {
		lines = append(lines, m.cardView(item, active && i == m.row, width-2))
	}
	return border.Render(strings.Join(lines, "\n"))
}

func (m *BoardModel) cardView(item domain.WorkItem, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = "> "
		if m.picked == item.ID() {
			marker = "◆ "
		}
	}

	head := marker + StyleBold.Render("Oda "+orDash(item.Room))
	if pl := PriorityLabel(item.Priority); pl != "" {
		head += " " + pl
	}

	text := item.RequestText
	if limit := width - 4; limit > 3 && len([]rune(text)) > limit {
		text = string([]rune(text)[:limit-1]) + "…"
	}

	meta := StyleDim.Render(fmt.Sprintf("%s · %s", orDash(item.GuestName), RelativeAge(item.CreatedAt)))
	return strings.Join([]string{head, "  " + text, "  " + meta}, "\n")
}

func (m *BoardModel) footerView() string {
	sum := m.ctrl.Summary()
	stats := fmt.Sprintf("%d talep · ort. tamamlama %d dk · ort. çalışma %d dk",
		sum.Total(), sum.AvgCompletionMinutes, sum.AvgWorkMinutes)
	help := "←→: kolon · ↑↓: kart · boşluk: al/bırak · esc: vazgeç · r: yenile · q: çık"
	if m.picked != 0 {
		help = "←→: kolona taşı · ↑↓: sırala · boşluk/esc: bırak"
	}
	return StyleDim.Render(stats) + "\n" + StyleDim.Render(help)
}

// refreshData loads a snapshot asynchronously. Only the fetch happens
// off the UI goroutine; the merge/apply runs in Update.
func (m *BoardModel) refreshData() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.baseCtx, constants.DefaultFetchTimeout)
		defer cancel()
		snap, err := m.ctrl.Fetch(ctx)
		return RefreshMsg{Snap: snap, Err: err}
	}
}

// tick schedules the next periodic refresh.
func (m *BoardModel) tick() tea.Cmd {
	return tea.Tick(m.config.RefreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// columnItems returns the board items of one column, render order.
func (m *BoardModel) columnItems(status constants.Status) []domain.WorkItem {
	var out []domain.WorkItem
	for _, item := range m.ctrl.Items() {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out
}

func (m *BoardModel) currentStatus() constants.Status {
	return constants.Statuses()[m.col]
}

func (m *BoardModel) itemUnderCursor() (domain.WorkItem, bool) {
	items := m.columnItems(m.currentStatus())
	if m.row < 0 || m.row >= len(items) {
		return domain.WorkItem{}, false
	}
	return items[m.row], true
}

// clampCursor keeps the row valid after loads and cross-column moves.
func (m *BoardModel) clampCursor() {
	n := len(m.columnItems(m.currentStatus()))
	if n == 0 {
		m.row = 0
		return
	}
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
