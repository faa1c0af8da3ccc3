package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/otelassist/opsboard/internal/domain"
	opserrors "github.com/otelassist/opsboard/internal/errors"
)

// restPathPrefix is the table API mount point on the backend host.
const restPathPrefix = "/rest/v1"

// defaultHTTPTimeout bounds a single request when the caller supplies
// no client of its own.
const defaultHTTPTimeout = 15 * time.Second

// RESTStore implements RecordStore over a PostgREST-style table API:
// one URL per collection, equality filters as `col=eq.value` query
// parameters, `order=created_at.desc`, JSON bodies, api-key header auth.
type RESTStore struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	log     zerolog.Logger
}

// Ensure RESTStore implements RecordStore.
var _ RecordStore = (*RESTStore)(nil)

// RESTOption configures a RESTStore.
type RESTOption func(*RESTStore)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(c *http.Client) RESTOption {
	return func(s *RESTStore) { s.httpc = c }
}

// WithLogger sets the adapter's logger.
func WithLogger(log zerolog.Logger) RESTOption {
	return func(s *RESTStore) { s.log = log }
}

// NewRESTStore creates a RESTStore for the given backend base URL and
// API key.
func NewRESTStore(baseURL, apiKey string, opts ...RESTOption) *RESTStore {
	s := &RESTStore{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: defaultHTTPTimeout},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchAll loads all four collections concurrently. Source collection
// errors are captured per-collection rather than short-circuiting the
// group: the board prefers a partial snapshot over no snapshot. Join
// collection errors degrade to empty slices with a warning log, per the
// resolution-failure contract.
func (s *RESTStore) FetchAll(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.TasksErr = s.fetchCollection(gctx, CollectionTasks, &snap.Tasks)
		return nil
	})
	g.Go(func() error {
		snap.RequestsErr = s.fetchCollection(gctx, CollectionGuestRequests, &snap.Requests)
		return nil
	})
	g.Go(func() error {
		if err := s.fetchCollection(gctx, CollectionGuests, &snap.Guests); err != nil {
			s.log.Warn().Err(err).Msg("guest join collection unavailable, names will degrade")
			snap.Guests = nil
		}
		return nil
	})
	g.Go(func() error {
		if err := s.fetchCollection(gctx, CollectionDepartments, &snap.Departments); err != nil {
			s.log.Warn().Err(err).Msg("department join collection unavailable, labels will degrade")
			snap.Departments = nil
		}
		return nil
	})
	// Workers capture their errors into the snapshot and return nil, so
	// Wait only reports context cancellation.
	if err := g.Wait(); err != nil {
		return nil, opserrors.Wrap(err, "snapshot load interrupted")
	}

	if snap.TasksErr != nil && snap.RequestsErr != nil {
		s.log.Error().
			AnErr("tasks_err", snap.TasksErr).
			AnErr("requests_err", snap.RequestsErr).
			Msg("both source collections failed")
		return nil, opserrors.ErrAllSourcesFailed
	}
	if snap.TasksErr != nil {
		snap.TasksErr = fmt.Errorf("%w: %w", opserrors.ErrPrimaryFetchFailed, snap.TasksErr)
		s.log.Warn().Err(snap.TasksErr).Msg("degrading board to guest requests only")
	}
	if snap.RequestsErr != nil {
		snap.RequestsErr = fmt.Errorf("%w: %w", opserrors.ErrSecondaryFetchFailed, snap.RequestsErr)
		s.log.Warn().Err(snap.RequestsErr).Msg("degrading board to tasks only")
	}
	return snap, nil
}

// UpdateStatus patches a single row in the collection selected by
// provenance. The patch is one JSON object, so its columns commit
// together in practice.
func (s *RESTStore) UpdateStatus(ctx context.Context, prov domain.Provenance, id int64, patch StatusPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	collection, err := collectionFor(prov)
	if err != nil {
		return err
	}

	body, err := json.Marshal(patch)
	if err != nil {
		return opserrors.Wrap(err, "failed to encode status patch")
	}

	q := url.Values{}
	q.Set("id", fmt.Sprintf("eq.%d", id))
	resp, err := s.do(ctx, http.MethodPatch, collection, q, bytes.NewReader(body))
	if err != nil {
		return opserrors.Wrapf(err, "failed to patch %s/%d", collection, id)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return opserrors.Wrapf(opserrors.ErrRecordNotFound, "%s/%d", collection, id)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}
	return nil
}

// CreateTask inserts a row into the primary collection.
func (s *RESTStore) CreateTask(ctx context.Context, rec *domain.RawTask) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return opserrors.Wrap(err, "failed to encode task")
	}
	resp, err := s.do(ctx, http.MethodPost, CollectionTasks, nil, bytes.NewReader(body))
	if err != nil {
		return opserrors.Wrap(err, "failed to insert task")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}
	return nil
}

// fetchCollection GETs a whole collection ordered newest first and
// decodes it into out (a pointer to a slice).
func (s *RESTStore) fetchCollection(ctx context.Context, collection string, out any) error {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")
	resp, err := s.do(ctx, http.MethodGet, collection, q, nil)
	if err != nil {
		return opserrors.Wrapf(err, "failed to fetch %s", collection)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return opserrors.Wrapf(err, "failed to decode %s", collection)
	}
	return nil
}

// do builds and executes one table API request. Every request carries
// the api key, a bearer token, and a fresh request id for store-side
// correlation.
func (s *RESTStore) do(ctx context.Context, method, collection string, query url.Values, body io.Reader) (*http.Response, error) {
	u := fmt.Sprintf("%s%s/%s", s.baseURL, restPathPrefix, collection)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, opserrors.Wrap(err, "failed to build request")
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		// Writes don't need the mutated rows echoed back.
		req.Header.Set("Prefer", "return=minimal")
	}
	return s.httpc.Do(req)
}

// collectionFor maps provenance to its backing collection.
func collectionFor(prov domain.Provenance) (string, error) {
	switch prov {
	case domain.ProvenanceTask:
		return CollectionTasks, nil
	case domain.ProvenanceRequest:
		return CollectionGuestRequests, nil
	default:
		return "", opserrors.Wrapf(opserrors.ErrUnknownCollection, "provenance %q", prov)
	}
}

// statusError converts a non-2xx response into an ErrStoreStatus chain,
// keeping the first line of the body for diagnosis.
func statusError(resp *http.Response) error {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return opserrors.Wrapf(opserrors.ErrStoreStatus, "%s: %d %s", resp.Request.URL.Path, resp.StatusCode, bytes.TrimSpace(detail))
}
