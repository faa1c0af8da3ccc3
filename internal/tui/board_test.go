package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otelassist/opsboard/internal/board"
	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/store"
)

func newTestBoard(t *testing.T) (*BoardModel, *board.Controller) {
	t.Helper()

	st := store.NewDemoStore(time.Now())
	ctrl := board.NewController(st)
	require.NoError(t, ctrl.Load(context.Background()))

	m := NewBoardModel(context.Background(), ctrl, BoardConfig{
		RefreshInterval: time.Minute,
		Actor:           "Test Kullanıcı",
	})
	m.loading = false
	t.Cleanup(ctrl.Flush)
	return m, ctrl
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// TestBoardModel_CursorMovesAcrossColumns verifies the horizontal
// cursor stays within the three columns.
func TestBoardModel_CursorMovesAcrossColumns(t *testing.T) {
	m, _ := newTestBoard(t)

	_, _ = m.Update(key("l"))
	assert.Equal(t, 1, m.col)

	_, _ = m.Update(key("l"))
	assert.Equal(t, 2, m.col)

	// Edge clamped.
	_, _ = m.Update(key("l"))
	assert.Equal(t, 2, m.col)

	_, _ = m.Update(key("h"))
	_, _ = m.Update(key("h"))
	_, _ = m.Update(key("h"))
	assert.Equal(t, 0, m.col)
}

// TestBoardModel_PickAndDropOnColumn verifies the keyboard gesture:
// picking a pending card and moving right drops it on the in-progress
// column, which transitions the card.
func TestBoardModel_PickAndDropOnColumn(t *testing.T) {
	m, ctrl := newTestBoard(t)

	target, ok := m.itemUnderCursor()
	require.True(t, ok)
	require.Equal(t, constants.StatusPending, target.Status)

	_, _ = m.Update(key(" "))
	assert.Equal(t, target.ID(), m.picked)

	_, _ = m.Update(key("l"))
	assert.Zero(t, m.picked)
	assert.Equal(t, 1, m.col)

	for _, item := range ctrl.Items() {
		if item.ID() == target.ID() {
			assert.Equal(t, constants.StatusInProgress, item.Status)
			return
		}
	}
	t.Fatalf("card %d disappeared from the board", target.ID())
}

// TestBoardModel_SameColumnDropIsNoOp verifies dropping a card back on
// its own column leaves its status alone.
func TestBoardModel_SameColumnDropIsNoOp(t *testing.T) {
	m, ctrl := newTestBoard(t)

	target, ok := m.itemUnderCursor()
	require.True(t, ok)

	_, _ = m.Update(key(" "))
	_, _ = m.Update(key(" "))
	assert.Zero(t, m.picked)

	for _, item := range ctrl.Items() {
		if item.ID() == target.ID() {
			assert.Equal(t, target.Status, item.Status)
		}
	}
}

// TestBoardModel_EscapeCancelsPick verifies escape puts the card back
// without touching state.
func TestBoardModel_EscapeCancelsPick(t *testing.T) {
	m, ctrl := newTestBoard(t)
	before := ctrl.Items()

	_, _ = m.Update(key(" "))
	require.NotZero(t, m.picked)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Zero(t, m.picked)
	assert.Equal(t, before, ctrl.Items())
}

// TestBoardModel_VerticalReorderKeepsCarrying verifies an up/down move
// with a card in hand reorders within the column and keeps the card
// picked for chained moves.
func TestBoardModel_VerticalReorderKeepsCarrying(t *testing.T) {
	m, _ := newTestBoard(t)

	items := m.columnItems(m.currentStatus())
	require.GreaterOrEqual(t, len(items), 2)

	_, _ = m.Update(key(" "))
	picked := m.picked
	require.NotZero(t, picked)

	_, _ = m.Update(key("j"))
	assert.Equal(t, picked, m.picked)
	assert.Equal(t, 1, m.row)

	moved := m.columnItems(m.currentStatus())
	assert.Equal(t, picked, moved[1].ID())
}

// TestBoardModel_TickWhilePickedSkipsRefresh verifies the periodic
// refresh is deferred while a card is in hand.
func TestBoardModel_TickWhilePickedSkipsRefresh(t *testing.T) {
	m, ctrl := newTestBoard(t)
	before := ctrl.Items()

	_, _ = m.Update(key(" "))
	require.NotZero(t, m.picked)

	_, cmd := m.Update(TickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.NotZero(t, m.picked)
	// A deferred refresh must not have replaced the item slice except
	// for the pick itself.
	assert.Len(t, ctrl.Items(), len(before))
}

// TestBoardModel_RefreshMsgAppliesSnapshot verifies a fetched snapshot
// is merged into controller state on the update goroutine.
func TestBoardModel_RefreshMsgAppliesSnapshot(t *testing.T) {
	m, ctrl := newTestBoard(t)

	snap, err := ctrl.Fetch(context.Background())
	require.NoError(t, err)

	m.loading = true
	_, _ = m.Update(RefreshMsg{Snap: snap})
	assert.False(t, m.loading)
	assert.NoError(t, m.err)
	assert.False(t, m.lastUpdate.IsZero())
}

// TestBoardModel_RefreshMsgError keeps the previous items and shows
// the error view.
func TestBoardModel_RefreshMsgError(t *testing.T) {
	m, ctrl := newTestBoard(t)
	before := len(ctrl.Items())

	_, _ = m.Update(RefreshMsg{Err: assert.AnError})
	assert.Error(t, m.err)
	assert.Len(t, ctrl.Items(), before)
	assert.Contains(t, m.View(), "Pano yüklenemedi")
}

// TestBoardModel_View smoke-tests the full render path.
func TestBoardModel_View(t *testing.T) {
	m, _ := newTestBoard(t)
	_, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.View()
	assert.Contains(t, out, "Operasyon Panosu")
	assert.Contains(t, out, "Bekleyen")
	assert.Contains(t, out, "İşlemde")
	assert.Contains(t, out, "Tamamlanan")
}

// TestBoardModel_QuitReturnsQuitCmd verifies q ends the program.
func TestBoardModel_QuitReturnsQuitCmd(t *testing.T) {
	m, _ := newTestBoard(t)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}
