// Package store provides the record store adapter for opsboard.
//
// The remote backend is a generic table store reachable over a
// PostgREST-style REST API: one URL per collection, equality filters in
// the query string, JSON bodies. The board core depends only on the
// RecordStore interface; the REST client and the in-memory fake are the
// two implementations.
package store

import (
	"context"

	"github.com/otelassist/opsboard/internal/domain"
)

// Collection names served by the record store.
const (
	// CollectionTasks is the primary collection. Interactive task
	// creation always lands here.
	CollectionTasks = "tasks"

	// CollectionGuestRequests is the secondary collection, fed by the
	// WhatsApp bridge and the guest app.
	CollectionGuestRequests = "guest_requests"

	// CollectionGuests holds guest records joined at merge time.
	CollectionGuests = "guests"

	// CollectionDepartments holds department records joined at merge time.
	CollectionDepartments = "departments"
)

// Snapshot is the result of a full board load. A snapshot may be
// partial: when exactly one of the two source collections fails, its
// slice is empty and the corresponding error field is set, so the board
// can degrade instead of going dark. Join collection failures degrade
// silently to empty slices.
type Snapshot struct {
	// Tasks are the primary-collection rows, newest first.
	Tasks []domain.RawTask

	// Requests are the secondary-collection rows, newest first.
	Requests []domain.RawGuestRequest

	// Guests and Departments are the join collections, empty when
	// their fetch failed.
	Guests      []domain.Guest
	Departments []domain.Department

	// TasksErr / RequestsErr record a partial fetch failure. At most
	// one is non-nil on a returned snapshot; both failing is a load
	// error, not a snapshot.
	TasksErr    error
	RequestsErr error
}

// Partial reports whether one of the two source collections failed to load.
func (s *Snapshot) Partial() bool {
	return s.TasksErr != nil || s.RequestsErr != nil
}

// RecordStore is the adapter interface the board core persists through.
//
// All implementations must treat UpdateStatus as last-write-wins: there
// is no version column in the schema and callers issue writes
// fire-and-forget, so two in-flight writes against one row resolve to
// whichever lands last.
type RecordStore interface {
	// FetchAll loads both source collections plus the join collections.
	// Exactly one source collection failing yields a partial snapshot;
	// both failing yields errors.ErrAllSourcesFailed.
	FetchAll(ctx context.Context) (*Snapshot, error)

	// UpdateStatus applies a status patch to the row identified by its
	// native collection id. Provenance selects the collection.
	UpdateStatus(ctx context.Context, prov domain.Provenance, id int64, patch StatusPatch) error

	// CreateTask inserts a new row into the primary collection. The
	// store assigns the id.
	CreateTask(ctx context.Context, rec *domain.RawTask) error
}
