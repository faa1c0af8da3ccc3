package board

import (
	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/domain"
)

// millisPerMinute converts epoch-ms deltas to whole minutes.
const millisPerMinute = 60_000

// Transition moves a work item to newStatus, stamping and clearing
// lifecycle fields as side effects of the move. It is a total pure
// function: value in, new value out, any direct transition between the
// three states is permitted (operators may revert a completed item or
// jump straight from pending to completed), and it never errors.
//
// Timestamps always stamp with now, never backdate, which keeps
// createdAt <= inProgressAt <= completedAt whenever all three exist.
//
// actor attributes a completion; "" falls back to the item's assignee,
// then to constants.SystemActor.
func Transition(item domain.WorkItem, newStatus constants.Status, actor string, now int64) domain.WorkItem {
	// Same status is an idempotent no-op.
	if newStatus == item.Status {
		return item
	}

	next := item
	next.Status = newStatus

	switch newStatus {
	case constants.StatusInProgress:
		if next.InProgressAt == nil {
			stamp := now
			next.InProgressAt = &stamp
		}
	case constants.StatusPending:
		// Reverting an approval withdraws the start stamp.
		if item.Status == constants.StatusInProgress {
			next.InProgressAt = nil
		}
	case constants.StatusCompleted:
		completeItem(&next, actor, now)
	}

	// Leaving completed clears every completion-derived field.
	if item.Status == constants.StatusCompleted {
		next.CompletedAt = nil
		next.CompletedBy = ""
		next.CompletionTime = nil
		next.WorkTime = nil
	}
	return next
}

// completeItem stamps the completion fields. The effective start point
// falls back from InProgressAt to CreatedAt to now, so an item that
// skipped in-progress still gets consistent duration math, and the
// start stamp is retroactively recorded so the row is self-consistent
// afterward.
func completeItem(next *domain.WorkItem, actor string, now int64) {
	effectiveStart := now
	switch {
	case next.InProgressAt != nil:
		effectiveStart = *next.InProgressAt
	case next.CreatedAt != 0:
		effectiveStart = next.CreatedAt
	}
	if next.InProgressAt == nil {
		stamp := effectiveStart
		next.InProgressAt = &stamp
	}

	completedAt := now
	next.CompletedAt = &completedAt
	next.CompletedBy = completedBy(actor, next.AssignedTo)

	completionTime := (completedAt - next.CreatedAt) / millisPerMinute
	workTime := (completedAt - effectiveStart) / millisPerMinute
	next.CompletionTime = &completionTime
	next.WorkTime = &workTime
}

// completedBy resolves completion attribution: explicit actor, then the
// item's assignee, then the system fallback.
func completedBy(actor, assignedTo string) string {
	if actor != "" {
		return actor
	}
	if assignedTo != "" {
		return assignedTo
	}
	return constants.SystemActor
}
