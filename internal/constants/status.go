// Package constants provides shared constant values for the opsboard system.
//
// This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package constants

// Status represents the state of a work item on the operations board.
// Status values use kebab-case to stay wire-compatible with the legacy
// store, which mixes English and Turkish literals (see board.NormalizeStatus).
type Status string

// Work item status constants. Every item starts as pending; the board
// permits any direct transition between the three states, including
// reverting a completed item.
const (
	// StatusPending indicates a request has been received but nobody
	// has picked it up yet.
	StatusPending Status = "pending"

	// StatusInProgress indicates a staff member has accepted the request
	// and is working on it.
	StatusInProgress Status = "in-progress"

	// StatusCompleted indicates the request has been fulfilled.
	StatusCompleted Status = "completed"
)

// Statuses returns the board's three statuses in column display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// IsValidStatus reports whether s is one of the three board statuses.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Priority represents the urgency of a work item.
type Priority string

// Priority constants. Guest requests from the secondary collection carry
// no native priority and default to PriorityMedium at merge time.
const (
	// PriorityLow marks requests that can wait.
	PriorityLow Priority = "low"

	// PriorityMedium is the default priority for all items.
	PriorityMedium Priority = "medium"

	// PriorityHigh marks requests that should jump the queue.
	PriorityHigh Priority = "high"
)

// Priorities returns all priorities in ascending urgency order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValidPriority reports whether p is a recognized priority value.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// RequestSource identifies the channel a guest request arrived through.
// It is independent of which collection stores the record: a WhatsApp
// request may live in either collection depending on who ingested it.
type RequestSource string

// Request source constants.
const (
	// SourceWhatsApp marks requests ingested from the WhatsApp bridge.
	SourceWhatsApp RequestSource = "whatsapp"

	// SourcePhone marks requests taken over the phone by reception.
	SourcePhone RequestSource = "phone"

	// SourceDirect marks requests made in person at the desk.
	SourceDirect RequestSource = "direct"

	// SourceCRM marks tasks created by back-office staff in the CRM.
	SourceCRM RequestSource = "crm"
)

// Sources returns all request channels.
func Sources() []RequestSource {
	return []RequestSource{SourceWhatsApp, SourcePhone, SourceDirect, SourceCRM}
}
