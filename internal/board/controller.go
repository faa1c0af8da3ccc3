package board

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/otelassist/opsboard/internal/clock"
	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/domain"
	"github.com/otelassist/opsboard/internal/store"
)

// Controller owns the in-memory work item slice and wires the three
// pure engines (merge, lifecycle, reorder) to the record store.
//
// Concurrency contract: Load, Items, DragStart, DragCancel and DragEnd
// must all be called from the single UI goroutine. The only goroutines
// the controller spawns are the fire-and-forget persistence writes,
// which never touch the item slice. A local mutation is always applied
// before its persistence call is issued, so the UI reflects the user's
// action with zero latency; in-flight writes against the same row
// resolve last-write-wins at the store, with no queue and no
// cancellation.
type Controller struct {
	store   store.RecordStore
	clock   clock.Clock
	log     zerolog.Logger
	metrics Metrics

	items    []domain.WorkItem
	activeID int64
	dragging bool

	// persistWG tracks in-flight writes so tests can wait for them.
	persistWG sync.WaitGroup
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithClock overrides the clock, for tests.
func WithClock(c clock.Clock) ControllerOption {
	return func(ctrl *Controller) { ctrl.clock = c }
}

// WithControllerLogger sets the controller's logger.
func WithControllerLogger(log zerolog.Logger) ControllerOption {
	return func(ctrl *Controller) { ctrl.log = log }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) ControllerOption {
	return func(ctrl *Controller) { ctrl.metrics = m }
}

// NewController creates a board controller over the given store.
func NewController(st store.RecordStore, opts ...ControllerOption) *Controller {
	ctrl := &Controller{
		store:   st,
		clock:   clock.RealClock{},
		log:     zerolog.Nop(),
		metrics: NoopMetrics{},
	}
	for _, opt := range opts {
		opt(ctrl)
	}
	return ctrl
}

// Load fetches a snapshot and replaces the board's items with the
// merged result. A partial snapshot (one source collection down) loads
// with a warning; both collections failing surfaces the store error so
// the presentation can show its error state and offer a retry.
func (c *Controller) Load(ctx context.Context) error {
	snap, err := c.Fetch(ctx)
	if err != nil {
		return err
	}
	c.Apply(snap)
	return nil
}

// Fetch loads a snapshot without touching board state. The TUI runs
// Fetch from an async command goroutine and feeds the result back to
// Apply on the UI goroutine, preserving the single-owner discipline on
// the item slice.
func (c *Controller) Fetch(ctx context.Context) (*store.Snapshot, error) {
	return c.store.FetchAll(ctx)
}

// Apply replaces the board's items with the merge of snap. Must be
// called from the UI goroutine.
func (c *Controller) Apply(snap *store.Snapshot) {
	if snap.TasksErr != nil {
		c.log.Warn().Err(snap.TasksErr).Msg("board loaded without the tasks collection")
	}
	if snap.RequestsErr != nil {
		c.log.Warn().Err(snap.RequestsErr).Msg("board loaded without the guest requests collection")
	}
	c.items = Merge(snap)
	c.metrics.SnapshotLoaded(len(c.items), snap.Partial())
}

// Items returns the board's current items. Callers must not mutate the
// returned slice's elements; order is render order.
func (c *Controller) Items() []domain.WorkItem {
	return c.items
}

// Summary returns aggregated statistics over the current items.
func (c *Controller) Summary() Summary {
	return Summarize(c.items)
}

// DragStart records the active card. Data state does not change.
func (c *Controller) DragStart(id int64) {
	c.activeID = id
	c.dragging = true
}

// DragCancel ends the session without a drop. State is untouched.
func (c *Controller) DragCancel() {
	c.dragging = false
	c.activeID = 0
}

// DragEnd resolves a drop against the active card. Reorders apply
// locally with nothing to persist; column moves run the lifecycle
// engine, apply optimistically, then persist fire-and-forget. actor
// attributes completions.
func (c *Controller) DragEnd(target DropTarget, actor string) {
	if !c.dragging {
		return
	}
	activeID := c.activeID
	c.DragCancel()

	outcome := ResolveDrop(c.items, activeID, target)
	switch outcome.Kind {
	case OutcomeReorder:
		c.items = outcome.Items
	case OutcomeTransition:
		c.applyTransition(activeID, outcome.NewStatus, actor)
	case OutcomeNone:
		// Same column, cross-column item drop, or cancelled drag.
	}
}

// Transition moves an item to newStatus outside a drag session (list
// view actions, CRM buttons). Semantics match a column-target drop.
func (c *Controller) Transition(id int64, newStatus constants.Status, actor string) {
	c.applyTransition(id, newStatus, actor)
}

// CreateTask inserts a new pending task into the primary collection
// and reloads on the next Load. Creation is synchronous: the staff
// member is on the create form and expects confirmation.
func (c *Controller) CreateTask(ctx context.Context, rec *domain.RawTask) error {
	if rec.Status == "" {
		rec.Status = string(constants.StatusPending)
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = c.clock.NowMillis()
	}
	return c.store.CreateTask(ctx, rec)
}

// Flush blocks until all in-flight persistence writes have finished.
// Tests use it; the UI never does.
func (c *Controller) Flush() {
	c.persistWG.Wait()
}

func (c *Controller) applyTransition(id int64, newStatus constants.Status, actor string) {
	idx := indexOf(c.items, id)
	if idx == -1 {
		return
	}
	old := c.items[idx]
	next := Transition(old, newStatus, actor, c.clock.NowMillis())
	if next.Status == old.Status {
		return
	}

	// Optimistic: local state first, persistence after, never awaited.
	c.items[idx] = next
	c.metrics.TransitionApplied(id, old.Status, next.Status)

	patch := diffPatch(old, next)
	c.persistWG.Add(1)
	go func() {
		defer c.persistWG.Done()
		// Detached from the UI context: an in-flight write cannot be
		// cancelled by the user reverting the change.
		ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultPersistTimeout)
		defer cancel()
		if err := c.store.UpdateStatus(ctx, next.Provenance, next.SourceID, patch); err != nil {
			// Known gap, preserved deliberately: the optimistic local
			// state is not rolled back when the write is rejected.
			c.metrics.PersistFailed(id)
			c.log.Error().
				Err(err).
				Int64("item_id", id).
				Str("provenance", string(next.Provenance)).
				Interface("patch", patch).
				Msg("failed to persist status change; local state kept")
		}
	}()
}

// diffPatch builds the minimal column patch between two versions of an
// item. Only lifecycle columns are compared; a nil value clears the
// column.
func diffPatch(old, next domain.WorkItem) store.StatusPatch {
	patch := store.StatusPatch{}
	if old.Status != next.Status {
		patch[store.ColStatus] = next.Status
	}
	diffMillis(patch, store.ColInProgressAt, old.InProgressAt, next.InProgressAt)
	diffMillis(patch, store.ColCompletedAt, old.CompletedAt, next.CompletedAt)
	diffMillis(patch, store.ColCompletionTime, old.CompletionTime, next.CompletionTime)
	diffMillis(patch, store.ColWorkTime, old.WorkTime, next.WorkTime)
	if old.CompletedBy != next.CompletedBy {
		if next.CompletedBy == "" {
			patch[store.ColCompletedBy] = nil
		} else {
			patch[store.ColCompletedBy] = next.CompletedBy
		}
	}
	return patch
}

// diffMillis records a changed nullable epoch-ms column in the patch.
func diffMillis(patch store.StatusPatch, col string, old, next *int64) {
	switch {
	case old == nil && next == nil:
	case old != nil && next != nil && *old == *next:
	case next == nil:
		patch[col] = nil
	default:
		patch[col] = *next
	}
}
