package store

import (
	opserrors "github.com/otelassist/opsboard/internal/errors"
)

// Patchable column names. These are the only columns a lifecycle
// transition may touch; everything else is immutable from the board.
const (
	ColStatus         = "status"
	ColInProgressAt   = "in_progress_at"
	ColCompletedAt    = "completed_at"
	ColCompletedBy    = "completed_by"
	ColCompletionTime = "completion_time"
	ColWorkTime       = "work_time"
	ColAssignedTo     = "assigned_to"
)

// patchableColumns is the allow-list for StatusPatch keys.
var patchableColumns = map[string]bool{
	ColStatus:         true,
	ColInProgressAt:   true,
	ColCompletedAt:    true,
	ColCompletedBy:    true,
	ColCompletionTime: true,
	ColWorkTime:       true,
	ColAssignedTo:     true,
}

// StatusPatch carries the subset of columns changed by a transition,
// keyed by column name. A nil value clears the column (JSON null). The
// patch is a single object so the composing writes of one transition
// commit together in practice, though the store does not guarantee
// atomicity.
type StatusPatch map[string]any

// Validate checks that the patch is non-empty and touches only
// patchable columns.
func (p StatusPatch) Validate() error {
	if len(p) == 0 {
		return opserrors.ErrEmptyPatch
	}
	for col := range p {
		if !patchableColumns[col] {
			return opserrors.Wrapf(opserrors.ErrInvalidPatchColumn, "column %q", col)
		}
	}
	return nil
}
