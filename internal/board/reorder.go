package board

import (
	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/domain"
)

// TargetKind classifies a drop destination.
type TargetKind int

// Drop target kinds.
const (
	// TargetNone marks a cancelled drag (drop outside any valid target).
	TargetNone TargetKind = iota

	// TargetColumn marks a drop over a status column container.
	TargetColumn

	// TargetItem marks a drop over another work item card.
	TargetItem
)

// DropTarget is a classified drop destination. For TargetColumn,
// Status names the column; for TargetItem, ItemID is the hovered card's
// flat board id.
type DropTarget struct {
	Kind   TargetKind
	Status constants.Status
	ItemID int64
}

// Hit is one geometrically plausible destination reported by the
// presentation layer's collision detection. Distance ranks item hits
// (nearest corner wins); it is ignored for column hits.
type Hit struct {
	Column   constants.Status
	IsColumn bool
	ItemID   int64
	Distance float64
}

// ClassifyDrop picks the drop target from the plausible hits. Column
// containers always win over item cards: dropping near the edge of a
// card at the top of a different column must read as "move to that
// column", not "reorder against that card". Among item hits the
// nearest one wins. No hits means a cancelled drag.
func ClassifyDrop(hits []Hit) DropTarget {
	for _, h := range hits {
		if h.IsColumn {
			return DropTarget{Kind: TargetColumn, Status: h.Column}
		}
	}

	best := -1
	for i, h := range hits {
		if best == -1 || h.Distance < hits[best].Distance {
			best = i
		}
	}
	if best == -1 {
		return DropTarget{Kind: TargetNone}
	}
	return DropTarget{Kind: TargetItem, ItemID: hits[best].ItemID}
}

// OutcomeKind classifies what a finished drag resolved to.
type OutcomeKind int

// Drag outcome kinds.
const (
	// OutcomeNone means nothing changes: cancelled drag, same-column
	// drop, cross-column item drop, or unknown active item.
	OutcomeNone OutcomeKind = iota

	// OutcomeReorder means a pure local array move within one column.
	// No lifecycle transition, nothing to persist.
	OutcomeReorder

	// OutcomeTransition means the item moves to another status column
	// and the lifecycle engine must run.
	OutcomeTransition
)

// Outcome is the resolution of a drag session.
type Outcome struct {
	Kind OutcomeKind

	// Items is the reordered slice for OutcomeReorder.
	Items []domain.WorkItem

	// NewStatus is the destination column for OutcomeTransition.
	NewStatus constants.Status
}

// ResolveDrop decides what a drop does, given the current items, the
// active card's flat id and the classified target. Pure function; the
// caller applies the outcome.
//
// Rules:
//   - no target, or active item not found: nothing happens;
//   - column target matching the item's current status: no-op;
//   - column target with a different status: lifecycle transition;
//   - item target sharing the active item's status: local reorder;
//   - item target in a different column: ignored (reorder is only
//     meaningful within one column).
func ResolveDrop(items []domain.WorkItem, activeID int64, target DropTarget) Outcome {
	activeIdx := indexOf(items, activeID)
	if activeIdx == -1 || target.Kind == TargetNone {
		return Outcome{Kind: OutcomeNone}
	}
	active := items[activeIdx]

	switch target.Kind {
	case TargetColumn:
		if target.Status == active.Status {
			return Outcome{Kind: OutcomeNone}
		}
		return Outcome{Kind: OutcomeTransition, NewStatus: target.Status}

	case TargetItem:
		if target.ItemID == activeID {
			return Outcome{Kind: OutcomeNone}
		}
		overIdx := indexOf(items, target.ItemID)
		if overIdx == -1 || items[overIdx].Status != active.Status {
			return Outcome{Kind: OutcomeNone}
		}
		return Outcome{Kind: OutcomeReorder, Items: moveItem(items, activeIdx, overIdx)}

	default:
		return Outcome{Kind: OutcomeNone}
	}
}

// indexOf finds an item by flat board id.
func indexOf(items []domain.WorkItem, id int64) int {
	for i := range items {
		if items[i].ID() == id {
			return i
		}
	}
	return -1
}

// moveItem returns a copy of items with the element at from relocated
// to position to, shifting the elements in between.
func moveItem(items []domain.WorkItem, from, to int) []domain.WorkItem {
	out := append([]domain.WorkItem(nil), items...)
	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}
