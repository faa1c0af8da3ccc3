package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/domain"
	opserrors "github.com/otelassist/opsboard/internal/errors"
)

// MemoryStore implements RecordStore in memory. It backs the offline
// demo mode and most tests; behavior mirrors the REST adapter
// (last-write-wins updates, newest-first ordering, store-assigned ids).
type MemoryStore struct {
	mu          sync.Mutex
	tasks       []domain.RawTask
	requests    []domain.RawGuestRequest
	guests      []domain.Guest
	departments []domain.Department
	nextTaskID  int64

	// FailTasks / FailRequests simulate per-collection fetch failures.
	FailTasks    error
	FailRequests error
}

// Ensure MemoryStore implements RecordStore.
var _ RecordStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextTaskID: 1}
}

// SeedTasks replaces the primary collection.
func (m *MemoryStore) SeedTasks(tasks ...domain.RawTask) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append([]domain.RawTask(nil), tasks...)
	for _, t := range tasks {
		if t.ID >= m.nextTaskID {
			m.nextTaskID = t.ID + 1
		}
	}
}

// SeedRequests replaces the secondary collection.
func (m *MemoryStore) SeedRequests(reqs ...domain.RawGuestRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append([]domain.RawGuestRequest(nil), reqs...)
}

// SeedJoins replaces the guest and department join collections.
func (m *MemoryStore) SeedJoins(guests []domain.Guest, departments []domain.Department) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.guests = append([]domain.Guest(nil), guests...)
	m.departments = append([]domain.Department(nil), departments...)
}

// FetchAll returns a copy of the store contents, honoring the simulated
// per-collection failures the same way the REST adapter does.
func (m *MemoryStore) FetchAll(_ context.Context) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailTasks != nil && m.FailRequests != nil {
		return nil, opserrors.ErrAllSourcesFailed
	}

	snap := &Snapshot{
		Guests:      append([]domain.Guest(nil), m.guests...),
		Departments: append([]domain.Department(nil), m.departments...),
	}
	if m.FailTasks != nil {
		snap.TasksErr = fmt.Errorf("%w: %w", opserrors.ErrPrimaryFetchFailed, m.FailTasks)
	} else {
		snap.Tasks = append([]domain.RawTask(nil), m.tasks...)
		sort.SliceStable(snap.Tasks, func(i, j int) bool { return snap.Tasks[i].CreatedAt > snap.Tasks[j].CreatedAt })
	}
	if m.FailRequests != nil {
		snap.RequestsErr = fmt.Errorf("%w: %w", opserrors.ErrSecondaryFetchFailed, m.FailRequests)
	} else {
		snap.Requests = append([]domain.RawGuestRequest(nil), m.requests...)
		sort.SliceStable(snap.Requests, func(i, j int) bool { return snap.Requests[i].CreatedAt > snap.Requests[j].CreatedAt })
	}
	return snap, nil
}

// UpdateStatus applies a patch to the addressed row.
func (m *MemoryStore) UpdateStatus(_ context.Context, prov domain.Provenance, id int64, patch StatusPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch prov {
	case domain.ProvenanceTask:
		for i := range m.tasks {
			if m.tasks[i].ID == id {
				applyTaskPatch(&m.tasks[i], patch)
				return nil
			}
		}
	case domain.ProvenanceRequest:
		for i := range m.requests {
			if m.requests[i].ID == id {
				applyRequestPatch(&m.requests[i], patch)
				return nil
			}
		}
	default:
		return opserrors.Wrapf(opserrors.ErrUnknownCollection, "provenance %q", prov)
	}
	return opserrors.Wrapf(opserrors.ErrRecordNotFound, "%s/%d", prov, id)
}

// CreateTask inserts into the primary collection, assigning the id.
func (m *MemoryStore) CreateTask(_ context.Context, rec *domain.RawTask) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.ID = m.nextTaskID
	m.nextTaskID++
	m.tasks = append(m.tasks, *rec)
	return nil
}

// Tasks returns a copy of the primary collection, for test assertions.
func (m *MemoryStore) Tasks() []domain.RawTask {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.RawTask(nil), m.tasks...)
}

// Requests returns a copy of the secondary collection, for test assertions.
func (m *MemoryStore) Requests() []domain.RawGuestRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.RawGuestRequest(nil), m.requests...)
}

func applyTaskPatch(t *domain.RawTask, patch StatusPatch) {
	for col, v := range patch {
		switch col {
		case ColStatus:
			t.Status = asStatus(v)
		case ColInProgressAt:
			t.InProgressAt = asMillis(v)
		case ColCompletedAt:
			t.CompletedAt = asMillis(v)
		case ColCompletedBy:
			t.CompletedBy = asString(v)
		case ColCompletionTime:
			t.CompletionTime = asMillis(v)
		case ColWorkTime:
			t.WorkTime = asMillis(v)
		case ColAssignedTo:
			t.AssignedTo = asString(v)
		}
	}
}

func applyRequestPatch(r *domain.RawGuestRequest, patch StatusPatch) {
	for col, v := range patch {
		switch col {
		case ColStatus:
			r.Status = asStatus(v)
		case ColInProgressAt:
			r.InProgressAt = asMillis(v)
		}
		// Requests carry no completion or assignment columns; the
		// legacy schema drops those patch keys on the floor, as does
		// this fake.
	}
}

// asStatus converts a patch value to the raw status column literal.
// The controller sends typed statuses; hand-built patches may carry
// plain strings.
func asStatus(v any) string {
	switch s := v.(type) {
	case constants.Status:
		return string(s)
	case string:
		return s
	default:
		return ""
	}
}

// asMillis converts a patch value to a nullable epoch-ms column value.
// A JSON round-trip delivers numbers as float64; both forms are
// accepted, anything else clears the column like an explicit null.
func asMillis(v any) *int64 {
	switch n := v.(type) {
	case int64:
		return &n
	case int:
		m := int64(n)
		return &m
	case float64:
		m := int64(n)
		return &m
	default:
		return nil
	}
}

// asString converts a patch value to a string column value, with nil
// and non-string values clearing to empty.
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
