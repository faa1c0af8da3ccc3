package constants

import "time"

// Application identity constants.
const (
	// AppName is the canonical application name.
	AppName = "opsboard"

	// EnvPrefix is the prefix for environment variable configuration
	// (e.g. OPSBOARD_STORE_URL).
	EnvPrefix = "OPSBOARD"

	// ConfigDirName is the name of the per-project and per-user
	// configuration directory (.opsboard).
	ConfigDirName = ".opsboard"
)

// RequestIDOffset is the fixed offset added to secondary-collection
// (guest request) ids to map them into a flat id space disjoint from
// primary-collection (task) ids.
//
// This is a contract boundary with persisted state and the legacy CRM:
// a flat id below the offset always denotes a task, a flat id at or
// above it always denotes a guest request. The offset must exceed the
// maximum plausible task id.
const RequestIDOffset int64 = 1_000_000

// SystemActor is the attribution recorded when an item is completed
// without an explicit actor or assignee. The Turkish literal is what
// the back office expects to see in reports.
const SystemActor = "Sistem"

// Default durations for board operation.
const (
	// DefaultFetchTimeout bounds a single snapshot load from the store.
	DefaultFetchTimeout = 15 * time.Second

	// DefaultPersistTimeout bounds a single fire-and-forget status write.
	DefaultPersistTimeout = 10 * time.Second

	// DefaultRefreshInterval is how often the board re-fetches the
	// snapshot while the TUI is open.
	DefaultRefreshInterval = 30 * time.Second
)
