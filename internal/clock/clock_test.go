package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	c := RealClock{}

	before := time.Now()
	got := c.Now()
	after := time.Now()

	assert.False(t, got.Before(before), "clock.Now() should not return time before actual time.Now()")
	assert.False(t, got.After(after), "clock.Now() should not return time after actual time.Now()")
}

func TestRealClock_NowMillis(t *testing.T) {
	c := RealClock{}

	before := time.Now().UnixMilli()
	got := c.NowMillis()
	after := time.Now().UnixMilli()

	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, after)
}

// MockClock is a Clock implementation for testing that returns a fixed time.
type MockClock struct {
	FixedTime time.Time
}

// Now returns the fixed time.
func (m MockClock) Now() time.Time {
	return m.FixedTime
}

// NowMillis returns the fixed time as epoch milliseconds.
func (m MockClock) NowMillis() int64 {
	return m.FixedTime.UnixMilli()
}

func TestMockClock_Now(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	c := MockClock{FixedTime: fixedTime}

	assert.Equal(t, fixedTime, c.Now())
	assert.Equal(t, fixedTime.UnixMilli(), c.NowMillis())

	// Multiple calls return the same time
	assert.Equal(t, fixedTime, c.Now())
}
