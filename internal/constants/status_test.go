package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatuses_Order(t *testing.T) {
	// Column display order is part of the board contract.
	assert.Equal(t, []Status{StatusPending, StatusInProgress, StatusCompleted}, Statuses())
}

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{name: "pending", status: StatusPending, want: true},
		{name: "in-progress", status: StatusInProgress, want: true},
		{name: "completed", status: StatusCompleted, want: true},
		{name: "empty", status: Status(""), want: false},
		{name: "legacy turkish literal is not a canonical status", status: Status("bekliyor"), want: false},
		{name: "underscore variant is not canonical", status: Status("in_progress"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidStatus(tt.status))
		})
	}
}

func TestPriorities_Order(t *testing.T) {
	assert.Equal(t, []Priority{PriorityLow, PriorityMedium, PriorityHigh}, Priorities())
}

func TestSources(t *testing.T) {
	assert.Equal(t, []RequestSource{SourceWhatsApp, SourcePhone, SourceDirect, SourceCRM}, Sources())
}

func TestIsValidPriority(t *testing.T) {
	assert.True(t, IsValidPriority(PriorityLow))
	assert.True(t, IsValidPriority(PriorityMedium))
	assert.True(t, IsValidPriority(PriorityHigh))
	assert.False(t, IsValidPriority(Priority("urgent")))
	assert.False(t, IsValidPriority(Priority("")))
}

func TestRequestIDOffset_Boundary(t *testing.T) {
	// The offset is persisted-state contract; changing it would re-map
	// every guest request id in the CRM.
	assert.Equal(t, int64(1_000_000), RequestIDOffset)
}
