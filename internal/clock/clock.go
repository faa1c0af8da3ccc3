// Package clock provides an abstraction for time operations to improve
// testability. Instead of calling time.Now() directly, code can use the
// Clock interface which can be mocked in tests to control time-dependent
// behavior. All lifecycle math in the board runs on epoch milliseconds,
// so the interface also exposes a NowMillis convenience.
package clock

import "time"

// Clock is an interface for time operations.
// This allows code to be tested with mock clocks.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// NowMillis returns the current time as epoch milliseconds, the
	// unit the store persists and the lifecycle engine computes with.
	NowMillis() int64
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

// Now returns the current time from the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// NowMillis returns the current epoch milliseconds from the system clock.
func (RealClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}

// Ensure RealClock implements Clock.
var _ Clock = RealClock{}
