package domain

// RawTask is a row of the primary Tasks collection as the store returns
// it. Status, priority and source are raw strings: the legacy CRM wrote
// a mix of English and Turkish literals, normalized at merge time.
type RawTask struct {
	// ID is the task's id within the Tasks collection. Always below
	// constants.RequestIDOffset.
	ID int64 `json:"id"`

	// GuestID references the joined guest record, when known.
	GuestID *int64 `json:"guest_id,omitempty"`

	// DepartmentID references the joined department record, when known.
	DepartmentID *int64 `json:"department_id,omitempty"`

	// Description is the free-text request description.
	Description string `json:"description"`

	// Status is the raw stored status literal (e.g. "bekliyor",
	// "onaylandı", "completed").
	Status string `json:"status"`

	// Priority is the raw stored priority literal ("" for legacy rows).
	Priority string `json:"priority,omitempty"`

	// Source is the raw request channel literal.
	Source string `json:"source,omitempty"`

	// AssignedTo is the staff member working the task, if any.
	AssignedTo string `json:"assigned_to,omitempty"`

	// CompletedBy attributes a completed task.
	CompletedBy string `json:"completed_by,omitempty"`

	// CreatedAt is the ingestion instant, epoch milliseconds.
	CreatedAt int64 `json:"created_at"`

	// InProgressAt / CompletedAt are lifecycle stamps, epoch
	// milliseconds, nil when the transition never happened.
	InProgressAt *int64 `json:"in_progress_at,omitempty"`
	CompletedAt  *int64 `json:"completed_at,omitempty"`

	// CompletionTime and WorkTime are derived whole minutes, persisted
	// alongside the stamps so CRM reports need no recomputation.
	CompletionTime *int64 `json:"completion_time,omitempty"`
	WorkTime       *int64 `json:"work_time,omitempty"`
}

// RawGuestRequest is a row of the secondary GuestRequests collection.
// Requests carry no priority, department or assignee columns; those
// fields take defaults at merge time.
type RawGuestRequest struct {
	// ID is the request's id within the GuestRequests collection. The
	// flat board id is ID + constants.RequestIDOffset.
	ID int64 `json:"id"`

	// GuestID references the joined guest record, when known.
	GuestID *int64 `json:"guest_id,omitempty"`

	// Request is the guest's free-text message.
	Request string `json:"request"`

	// Status is the raw stored status literal.
	Status string `json:"status"`

	// Source is the raw request channel literal. Requests ingested by
	// the WhatsApp bridge carry "whatsapp" here.
	Source string `json:"source,omitempty"`

	// CreatedAt is the ingestion instant, epoch milliseconds.
	CreatedAt int64 `json:"created_at"`

	// InProgressAt is the lifecycle stamp, epoch milliseconds. The
	// legacy writer does not clear it when a request reverts to
	// pending, so a pending row may still carry a stamp.
	InProgressAt *int64 `json:"in_progress_at,omitempty"`
}

// Guest is a row of the Guests collection, joined at merge time to
// resolve room and name for both collections.
type Guest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Room string `json:"room"`
}

// Department is a row of the Departments collection, joined at merge
// time to resolve the department label for tasks.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
