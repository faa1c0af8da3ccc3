package board

import (
	"sort"

	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/domain"
	"github.com/otelassist/opsboard/internal/store"
)

// Merge combines the two source collections of a snapshot into one
// WorkItem slice. It is a pure function: no I/O, no clock, no
// mutation of its inputs.
//
// The merge is a de-duplicating union, not a concatenation: guest
// requests whose normalized status is completed are suppressed, because
// a completed guest request is expected to already exist as a task and
// showing both would duplicate the card.
//
// Join resolution failures (missing guest or department rows) degrade
// the corresponding fields to "" and are never errors.
//
// The result is ordered newest first by CreatedAt, stable across equal
// stamps, so column rendering is deterministic.
func Merge(snap *store.Snapshot) []domain.WorkItem {
	guests := make(map[int64]domain.Guest, len(snap.Guests))
	for _, g := range snap.Guests {
		guests[g.ID] = g
	}
	departments := make(map[int64]domain.Department, len(snap.Departments))
	for _, d := range snap.Departments {
		departments[d.ID] = d
	}

	items := make([]domain.WorkItem, 0, len(snap.Tasks)+len(snap.Requests))
	for _, t := range snap.Tasks {
		items = append(items, taskToItem(t, guests, departments))
	}
	for _, r := range snap.Requests {
		item, ok := requestToItem(r, guests)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt > items[j].CreatedAt
	})
	return items
}

// taskToItem maps a primary-collection row 1:1 onto a WorkItem.
func taskToItem(t domain.RawTask, guests map[int64]domain.Guest, departments map[int64]domain.Department) domain.WorkItem {
	item := domain.WorkItem{
		Provenance:   domain.ProvenanceTask,
		SourceID:     t.ID,
		RequestText:  t.Description,
		Status:       NormalizeStatus(t.Status),
		Priority:     NormalizePriority(t.Priority),
		Source:       NormalizeSource(t.Source),
		AssignedTo:   t.AssignedTo,
		CompletedBy:  t.CompletedBy,
		CreatedAt:    t.CreatedAt,
		InProgressAt: copyMillis(t.InProgressAt),
	}
	if t.GuestID != nil {
		if g, ok := guests[*t.GuestID]; ok {
			item.GuestName = g.Name
			item.Room = g.Room
		}
	}
	if t.DepartmentID != nil {
		if d, ok := departments[*t.DepartmentID]; ok {
			item.Department = d.Name
		}
	}
	// Completion fields are meaningful only on completed items; rows
	// from before the clearing fix may carry stale values.
	if item.Status == constants.StatusCompleted {
		item.CompletedAt = copyMillis(t.CompletedAt)
		item.CompletionTime = copyMillis(t.CompletionTime)
		item.WorkTime = copyMillis(t.WorkTime)
	} else {
		item.CompletedBy = ""
	}
	return item
}

// requestToItem maps a secondary-collection row onto a WorkItem.
// Completed requests are suppressed (ok == false). Requests carry no
// priority, department or assignee columns, so those fields take
// defaults.
func requestToItem(r domain.RawGuestRequest, guests map[int64]domain.Guest) (domain.WorkItem, bool) {
	status := NormalizeStatus(r.Status)
	if status == constants.StatusCompleted {
		return domain.WorkItem{}, false
	}

	item := domain.WorkItem{
		Provenance:   domain.ProvenanceRequest,
		SourceID:     r.ID,
		RequestText:  r.Request,
		Status:       status,
		Priority:     constants.PriorityMedium,
		Source:       NormalizeSource(r.Source),
		CreatedAt:    r.CreatedAt,
		InProgressAt: copyMillis(r.InProgressAt),
	}
	if r.GuestID != nil {
		if g, ok := guests[*r.GuestID]; ok {
			item.GuestName = g.Name
			item.Room = g.Room
		}
	}
	return item, true
}

// copyMillis copies a nullable epoch-ms value so merged items never
// alias raw record memory.
func copyMillis(v *int64) *int64 {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
