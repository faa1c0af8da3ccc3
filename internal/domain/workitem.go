// Package domain provides shared domain types for the opsboard system.
// These types are used across all internal packages to ensure consistent
// data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, standard library
//   - MUST NOT import: any other internal packages
//
// All JSON field names use snake_case to match the remote table store.
package domain

import (
	"time"

	"github.com/otelassist/opsboard/internal/constants"
)

// Provenance identifies which of the two source collections a work item
// originated from. Updates must route back to the originating collection.
type Provenance string

// Provenance constants.
const (
	// ProvenanceTask marks items backed by the primary Tasks collection.
	ProvenanceTask Provenance = "task"

	// ProvenanceRequest marks items backed by the secondary
	// GuestRequests collection.
	ProvenanceRequest Provenance = "request"
)

// WorkItem is the unified guest-request/task record consumed by the board.
// It merges rows from the Tasks and GuestRequests collections into one
// shape, with denormalized guest and department fields resolved at merge
// time.
//
// Optional timestamps are pointers: nil means "never happened". All
// timestamps are epoch milliseconds, the unit the store persists.
type WorkItem struct {
	// Provenance records the originating collection. Together with
	// SourceID it fully identifies the backing row.
	Provenance Provenance `json:"provenance"`

	// SourceID is the item's native id within its own collection.
	SourceID int64 `json:"source_id"`

	// Room is the guest's room number, resolved from the joined guest
	// record ("" when unresolved).
	Room string `json:"room"`

	// GuestName is the display name of the requesting guest ("" when
	// unresolved).
	GuestName string `json:"guest_name"`

	// RequestText is the free-text description of what the guest wants.
	RequestText string `json:"request_text"`

	// Status is the item's position in the three-state lifecycle.
	Status constants.Status `json:"status"`

	// Priority defaults to medium for items whose source collection
	// carries no priority column.
	Priority constants.Priority `json:"priority"`

	// Source is the channel the request arrived through.
	Source constants.RequestSource `json:"source"`

	// Department is the resolved department label ("" when unresolved).
	Department string `json:"department"`

	// AssignedTo is the staff member working the item, if any.
	AssignedTo string `json:"assigned_to,omitempty"`

	// CreatedAt is the ingestion instant, epoch milliseconds. It is the
	// authoritative origin of time for all duration math.
	CreatedAt int64 `json:"created_at"`

	// InProgressAt is stamped the first time the item enters
	// in-progress.
	InProgressAt *int64 `json:"in_progress_at,omitempty"`

	// CompletedAt is stamped when the item enters completed and cleared
	// when it leaves.
	CompletedAt *int64 `json:"completed_at,omitempty"`

	// CompletedBy attributes the completion to a staff member, or to
	// constants.SystemActor when nobody is identifiable.
	CompletedBy string `json:"completed_by,omitempty"`

	// CompletionTime is derived whole minutes from CreatedAt to
	// CompletedAt. Defined iff Status == completed.
	CompletionTime *int64 `json:"completion_time,omitempty"`

	// WorkTime is derived whole minutes from InProgressAt (falling back
	// to CreatedAt) to CompletedAt. Defined iff Status == completed.
	WorkTime *int64 `json:"work_time,omitempty"`
}

// ID returns the item's flat board id: the native id for tasks, the
// native id shifted by constants.RequestIDOffset for guest requests.
// The offset keeps the two id spaces disjoint, so the flat id alone
// determines provenance (see ProvenanceForID).
func (w WorkItem) ID() int64 {
	if w.Provenance == ProvenanceRequest {
		return w.SourceID + constants.RequestIDOffset
	}
	return w.SourceID
}

// Age returns how long the item has existed at the given instant.
// Durations are computed from raw epoch math, never from formatted
// display strings.
func (w WorkItem) Age(now time.Time) time.Duration {
	return time.Duration(now.UnixMilli()-w.CreatedAt) * time.Millisecond
}

// ProvenanceForID derives provenance from a flat board id using the
// RequestIDOffset boundary. This is the only place the boundary rule
// lives; callers must not re-implement the comparison.
func ProvenanceForID(id int64) Provenance {
	if id >= constants.RequestIDOffset {
		return ProvenanceRequest
	}
	return ProvenanceTask
}

// SplitID decomposes a flat board id into provenance and native
// collection id.
func SplitID(id int64) (Provenance, int64) {
	if id >= constants.RequestIDOffset {
		return ProvenanceRequest, id - constants.RequestIDOffset
	}
	return ProvenanceTask, id
}
