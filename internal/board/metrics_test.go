package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/domain"
)

func TestSummarize(t *testing.T) {
	ct1, wt1 := int64(30), int64(20)
	ct2, wt2 := int64(10), int64(4)
	items := []domain.WorkItem{
		{Status: constants.StatusPending, Department: "Housekeeping"},
		{Status: constants.StatusPending, Department: "Housekeeping"},
		{Status: constants.StatusInProgress, Department: "Room Service"},
		{Status: constants.StatusCompleted, Department: "Teknik Servis", CompletionTime: &ct1, WorkTime: &wt1},
		{Status: constants.StatusCompleted, CompletionTime: &ct2, WorkTime: &wt2},
	}

	sum := Summarize(items)
	assert.Equal(t, 2, sum.Pending)
	assert.Equal(t, 1, sum.InProgress)
	assert.Equal(t, 2, sum.Completed)
	assert.Equal(t, 5, sum.Total())
	assert.Equal(t, int64(20), sum.AvgCompletionMinutes)
	assert.Equal(t, int64(12), sum.AvgWorkMinutes)
	assert.Equal(t, 2, sum.ByDepartment["Housekeeping"])
	assert.Equal(t, 1, sum.ByDepartment["Room Service"])
	// Unresolved departments tally under the empty key.
	assert.Equal(t, 1, sum.ByDepartment[""])
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(nil)
	assert.Zero(t, sum.Total())
	assert.Zero(t, sum.AvgCompletionMinutes)
	assert.Zero(t, sum.AvgWorkMinutes)
}

func TestSummarize_CompletedWithoutDurations(t *testing.T) {
	// Legacy completed rows may miss derived columns; they count toward
	// the column total but not the averages.
	items := []domain.WorkItem{{Status: constants.StatusCompleted}}

	sum := Summarize(items)
	assert.Equal(t, 1, sum.Completed)
	assert.Zero(t, sum.AvgCompletionMinutes)
	assert.Zero(t, sum.AvgWorkMinutes)
}
