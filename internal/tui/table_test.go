package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otelassist/opsboard/internal/board"
	"github.com/otelassist/opsboard/internal/store"
)

// TestRenderList groups cards under their column headings.
func TestRenderList(t *testing.T) {
	st := store.NewDemoStore(time.Now())
	snap, err := st.FetchAll(context.Background())
	require.NoError(t, err)
	items := board.Merge(snap)

	out := RenderList(items)
	assert.Contains(t, out, "Bekleyen")
	assert.Contains(t, out, "İşlemde")
	assert.Contains(t, out, "Tamamlanan")
	assert.Contains(t, out, "Oda")
}

// TestRenderList_EmptyColumns marks empty columns instead of hiding them.
func TestRenderList_EmptyColumns(t *testing.T) {
	out := RenderList(nil)
	assert.Contains(t, out, "Bekleyen")
	assert.Contains(t, out, "boş")
}

// TestRenderSummary prints counts, averages and department breakdown.
func TestRenderSummary(t *testing.T) {
	sum := board.Summary{
		Pending:              2,
		InProgress:           1,
		Completed:            3,
		AvgCompletionMinutes: 40,
		AvgWorkMinutes:       25,
		ByDepartment:         map[string]int{"Housekeeping": 4, "": 2},
	}

	out := RenderSummary(sum)
	assert.Contains(t, out, "Pano Özeti")
	assert.Contains(t, out, "toplam: 6")
	assert.Contains(t, out, "ort. tamamlama: 40 dk")
	assert.Contains(t, out, "Housekeeping")
	assert.Contains(t, out, "(atanmamış)")
}

// TestRenderSummary_DepartmentOrder pins the breakdown to sorted key
// order so repeated runs never shuffle the lines.
func TestRenderSummary_DepartmentOrder(t *testing.T) {
	sum := board.Summary{
		ByDepartment: map[string]int{"Teknik": 1, "Housekeeping": 2, "Resepsiyon": 3},
	}

	out := RenderSummary(sum)
	hk := strings.Index(out, "Housekeeping")
	rs := strings.Index(out, "Resepsiyon")
	tk := strings.Index(out, "Teknik")
	require.NotEqual(t, -1, hk)
	assert.Less(t, hk, rs)
	assert.Less(t, rs, tk)
}
