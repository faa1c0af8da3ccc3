package board

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otelassist/opsboard/internal/clock"
	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/domain"
	opserrors "github.com/otelassist/opsboard/internal/errors"
	"github.com/otelassist/opsboard/internal/store"
)

// fixedClock is a test clock pinned to a settable instant.
type fixedClock struct {
	at time.Time
}

func (c *fixedClock) Now() time.Time    { return c.at }
func (c *fixedClock) NowMillis() int64  { return c.at.UnixMilli() }
func (c *fixedClock) advance(d time.Duration) { c.at = c.at.Add(d) }

var _ clock.Clock = (*fixedClock)(nil)

// persistCall records one UpdateStatus invocation.
type persistCall struct {
	prov  domain.Provenance
	id    int64
	patch store.StatusPatch
}

// recordingStore wraps MemoryStore and records persistence traffic.
type recordingStore struct {
	*store.MemoryStore

	mu         sync.Mutex
	calls      []persistCall
	persistErr error
}

func (r *recordingStore) UpdateStatus(ctx context.Context, prov domain.Provenance, id int64, patch store.StatusPatch) error {
	r.mu.Lock()
	r.calls = append(r.calls, persistCall{prov: prov, id: id, patch: patch})
	err := r.persistErr
	r.mu.Unlock()
	if err != nil {
		return err
	}
	return r.MemoryStore.UpdateStatus(ctx, prov, id, patch)
}

func (r *recordingStore) recorded() []persistCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]persistCall(nil), r.calls...)
}

func newTestController(t *testing.T) (*Controller, *recordingStore, *fixedClock) {
	t.Helper()

	origin := time.Date(2025, 4, 10, 18, 0, 0, 0, time.UTC)
	rec := &recordingStore{MemoryStore: store.NewDemoStore(origin)}
	clk := &fixedClock{at: origin}
	ctrl := NewController(rec, WithClock(clk))

	require.NoError(t, ctrl.Load(context.Background()))
	require.NotEmpty(t, ctrl.Items())
	return ctrl, rec, clk
}

func findByStatus(items []domain.WorkItem, status constants.Status) domain.WorkItem {
	for _, it := range items {
		if it.Status == status {
			return it
		}
	}
	return domain.WorkItem{}
}

func TestController_Load_BothSourcesFailing(t *testing.T) {
	mem := store.NewMemoryStore()
	mem.FailTasks = errors.New("boom")
	mem.FailRequests = errors.New("boom")
	ctrl := NewController(mem)

	err := ctrl.Load(context.Background())
	assert.ErrorIs(t, err, opserrors.ErrAllSourcesFailed)
	assert.Empty(t, ctrl.Items())
}

func TestController_Load_DegradesToSecondary(t *testing.T) {
	origin := time.Now()
	mem := store.NewDemoStore(origin)
	mem.FailTasks = errors.New("denied")
	ctrl := NewController(mem)

	require.NoError(t, ctrl.Load(context.Background()))
	for _, item := range ctrl.Items() {
		assert.Equal(t, domain.ProvenanceRequest, item.Provenance)
	}
	assert.NotEmpty(t, ctrl.Items())
}

func TestController_ColumnDrop_OptimisticThenPersisted(t *testing.T) {
	ctrl, rec, clk := newTestController(t)

	pending := findByStatus(ctrl.Items(), constants.StatusPending)
	require.NotZero(t, pending.ID())
	clk.advance(10 * time.Minute)

	ctrl.DragStart(pending.ID())
	ctrl.DragEnd(DropTarget{Kind: TargetColumn, Status: constants.StatusInProgress}, "")

	// Local state reflects the move immediately, before any store
	// round-trip completes.
	got := ctrl.Items()[indexOf(ctrl.Items(), pending.ID())]
	assert.Equal(t, constants.StatusInProgress, got.Status)
	require.NotNil(t, got.InProgressAt)
	assert.Equal(t, clk.NowMillis(), *got.InProgressAt)

	ctrl.Flush()
	calls := rec.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, pending.Provenance, calls[0].prov)
	assert.Equal(t, pending.SourceID, calls[0].id)
	assert.Equal(t, constants.StatusInProgress, calls[0].patch[store.ColStatus])
	assert.Equal(t, clk.NowMillis(), calls[0].patch[store.ColInProgressAt])
}

func TestController_CompleteDrop_PatchCarriesDerivedFields(t *testing.T) {
	ctrl, rec, clk := newTestController(t)

	item := findByStatus(ctrl.Items(), constants.StatusInProgress)
	require.NotZero(t, item.ID())
	clk.advance(30 * time.Minute)

	ctrl.DragStart(item.ID())
	ctrl.DragEnd(DropTarget{Kind: TargetColumn, Status: constants.StatusCompleted}, "Ayşe")
	ctrl.Flush()

	calls := rec.recorded()
	require.Len(t, calls, 1)
	patch := calls[0].patch
	assert.Equal(t, constants.StatusCompleted, patch[store.ColStatus])
	assert.Equal(t, clk.NowMillis(), patch[store.ColCompletedAt])
	assert.Equal(t, "Ayşe", patch[store.ColCompletedBy])
	assert.Contains(t, patch, store.ColCompletionTime)
	assert.Contains(t, patch, store.ColWorkTime)
}

func TestController_RevertCompleted_PatchClearsColumns(t *testing.T) {
	ctrl, rec, _ := newTestController(t)

	completed := findByStatus(ctrl.Items(), constants.StatusCompleted)
	require.NotZero(t, completed.ID())

	ctrl.DragStart(completed.ID())
	ctrl.DragEnd(DropTarget{Kind: TargetColumn, Status: constants.StatusPending}, "")
	ctrl.Flush()

	calls := rec.recorded()
	require.Len(t, calls, 1)
	patch := calls[0].patch
	assert.Equal(t, constants.StatusPending, patch[store.ColStatus])
	// Clearing writes explicit nulls, not omissions.
	require.Contains(t, patch, store.ColCompletedAt)
	assert.Nil(t, patch[store.ColCompletedAt])
	require.Contains(t, patch, store.ColCompletedBy)
	assert.Nil(t, patch[store.ColCompletedBy])
	require.Contains(t, patch, store.ColCompletionTime)
	assert.Nil(t, patch[store.ColCompletionTime])
	require.Contains(t, patch, store.ColWorkTime)
	assert.Nil(t, patch[store.ColWorkTime])
}

func TestController_SameColumnDrop_NoPersistence(t *testing.T) {
	ctrl, rec, _ := newTestController(t)

	pending := findByStatus(ctrl.Items(), constants.StatusPending)
	ctrl.DragStart(pending.ID())
	ctrl.DragEnd(DropTarget{Kind: TargetColumn, Status: constants.StatusPending}, "")
	ctrl.Flush()

	assert.Empty(t, rec.recorded())
}

func TestController_ItemReorder_NoPersistence(t *testing.T) {
	ctrl, rec, _ := newTestController(t)

	// Two pending cards exist in the demo seed (task 1 and request 1).
	var pendings []domain.WorkItem
	for _, it := range ctrl.Items() {
		if it.Status == constants.StatusPending {
			pendings = append(pendings, it)
		}
	}
	require.GreaterOrEqual(t, len(pendings), 2)

	before := ids(ctrl.Items())
	ctrl.DragStart(pendings[1].ID())
	ctrl.DragEnd(DropTarget{Kind: TargetItem, ItemID: pendings[0].ID()}, "")
	ctrl.Flush()

	assert.NotEqual(t, before, ids(ctrl.Items()), "reorder must change local order")
	assert.Empty(t, rec.recorded(), "pure reorder never persists")
	// Statuses unchanged.
	for _, it := range ctrl.Items() {
		if it.ID() == pendings[1].ID() {
			assert.Equal(t, constants.StatusPending, it.Status)
		}
	}
}

func TestController_CancelledDrag_LeavesStateUntouched(t *testing.T) {
	ctrl, rec, _ := newTestController(t)

	before := ids(ctrl.Items())
	pending := findByStatus(ctrl.Items(), constants.StatusPending)
	ctrl.DragStart(pending.ID())
	ctrl.DragCancel()
	// A drop after cancel must be inert.
	ctrl.DragEnd(DropTarget{Kind: TargetColumn, Status: constants.StatusCompleted}, "")
	ctrl.Flush()

	assert.Equal(t, before, ids(ctrl.Items()))
	assert.Empty(t, rec.recorded())
}

func TestController_PersistFailure_LocalStateKept(t *testing.T) {
	ctrl, rec, _ := newTestController(t)
	rec.persistErr = errors.New("row level security violation")

	pending := findByStatus(ctrl.Items(), constants.StatusPending)
	ctrl.DragStart(pending.ID())
	ctrl.DragEnd(DropTarget{Kind: TargetColumn, Status: constants.StatusInProgress}, "")
	ctrl.Flush()

	// Documented gap: the optimistic update survives the rejected write.
	got := ctrl.Items()[indexOf(ctrl.Items(), pending.ID())]
	assert.Equal(t, constants.StatusInProgress, got.Status)
	require.Len(t, rec.recorded(), 1)
}

func TestController_RequestTransition_RoutesToSecondaryCollection(t *testing.T) {
	ctrl, rec, _ := newTestController(t)

	var req domain.WorkItem
	for _, it := range ctrl.Items() {
		if it.Provenance == domain.ProvenanceRequest && it.Status == constants.StatusPending {
			req = it
			break
		}
	}
	require.NotZero(t, req.ID())

	ctrl.Transition(req.ID(), constants.StatusInProgress, "")
	ctrl.Flush()

	calls := rec.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.ProvenanceRequest, calls[0].prov)
	assert.Equal(t, req.SourceID, calls[0].id, "persistence uses the native id, not the flat id")
}

func TestController_CreateTask_DefaultsAndPersists(t *testing.T) {
	ctrl, _, clk := newTestController(t)

	rec2 := &domain.RawTask{Description: "Yeni talep"}
	require.NoError(t, ctrl.CreateTask(context.Background(), rec2))

	assert.Equal(t, string(constants.StatusPending), rec2.Status)
	assert.Equal(t, clk.NowMillis(), rec2.CreatedAt)
	assert.NotZero(t, rec2.ID, "store assigns the id")

	// The new row appears on the next load.
	require.NoError(t, ctrl.Load(context.Background()))
	assert.NotEqual(t, -1, indexOf(ctrl.Items(), rec2.ID))
}

func TestController_Summary(t *testing.T) {
	ctrl, _, _ := newTestController(t)

	sum := ctrl.Summary()
	assert.Equal(t, len(ctrl.Items()), sum.Total())
	assert.Equal(t, 2, sum.Pending)
	assert.Equal(t, 2, sum.InProgress)
	assert.Equal(t, 1, sum.Completed)
	assert.Equal(t, int64(120), sum.AvgCompletionMinutes)
	assert.Equal(t, int64(75), sum.AvgWorkMinutes)
}
