package board

import (
	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/domain"
)

// Metrics collects observations about board activity. Implementations
// can forward these to monitoring systems; the default is a no-op.
type Metrics interface {
	// SnapshotLoaded is called after each successful load with the
	// merged item count and whether the snapshot was partial.
	SnapshotLoaded(items int, partial bool)

	// TransitionApplied is called after an optimistic local transition.
	TransitionApplied(id int64, from, to constants.Status)

	// PersistFailed is called when a fire-and-forget write is rejected.
	PersistFailed(id int64)
}

// NoopMetrics is a no-op implementation of Metrics for default behavior.
type NoopMetrics struct{}

// Ensure NoopMetrics implements Metrics interface.
var _ Metrics = (*NoopMetrics)(nil)

// SnapshotLoaded implements Metrics.
func (NoopMetrics) SnapshotLoaded(int, bool) {}

// TransitionApplied implements Metrics.
func (NoopMetrics) TransitionApplied(int64, constants.Status, constants.Status) {}

// PersistFailed implements Metrics.
func (NoopMetrics) PersistFailed(int64) {}

// Summary aggregates a work item slice for the CRM stats view and the
// TUI footer.
type Summary struct {
	// Pending, InProgress, Completed are per-column counts.
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`

	// AvgCompletionMinutes and AvgWorkMinutes average the derived
	// durations over completed items carrying them. Zero when no
	// completed items exist.
	AvgCompletionMinutes int64 `json:"avg_completion_minutes"`
	AvgWorkMinutes       int64 `json:"avg_work_minutes"`

	// ByDepartment counts items per resolved department label; items
	// with an unresolved department are keyed under "".
	ByDepartment map[string]int `json:"by_department"`
}

// Total returns the number of items on the board.
func (s Summary) Total() int {
	return s.Pending + s.InProgress + s.Completed
}

// Summarize computes board statistics over a merged item slice.
// Pure function.
func Summarize(items []domain.WorkItem) Summary {
	sum := Summary{ByDepartment: make(map[string]int)}
	var completionTotal, workTotal, completionN, workN int64

	for _, item := range items {
		sum.ByDepartment[item.Department]++
		switch item.Status {
		case constants.StatusPending:
			sum.Pending++
		case constants.StatusInProgress:
			sum.InProgress++
		case constants.StatusCompleted:
			sum.Completed++
			if item.CompletionTime != nil {
				completionTotal += *item.CompletionTime
				completionN++
			}
			if item.WorkTime != nil {
				workTotal += *item.WorkTime
				workN++
			}
		}
	}
	if completionN > 0 {
		sum.AvgCompletionMinutes = completionTotal / completionN
	}
	if workN > 0 {
		sum.AvgWorkMinutes = workTotal / workN
	}
	return sum
}
