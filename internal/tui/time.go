package tui

import (
	"fmt"
	"time"

	"github.com/otelassist/opsboard/internal/clock"
)

// DefaultClock is the default clock used for time rendering.
// It can be replaced in tests with a mock clock.
//
//nolint:gochecknoglobals // Package-level default for dependency injection
var DefaultClock clock.Clock = clock.RealClock{}

// RelativeAge formats an epoch-ms creation stamp as a Turkish relative
// age string, the form the staff app has always shown.
// Examples: "az önce", "5 dakika önce", "2 saat önce", "3 gün önce".
//
// This is display only: lifecycle math never consumes these strings,
// it runs on the raw epoch values.
func RelativeAge(createdAt int64) string {
	return RelativeAgeWith(createdAt, DefaultClock)
}

// RelativeAgeWith formats a relative age using the provided clock,
// allowing testable rendering.
func RelativeAgeWith(createdAt int64, c clock.Clock) string {
	diff := time.Duration(c.NowMillis()-createdAt) * time.Millisecond

	switch {
	case diff < time.Minute:
		return "az önce"
	case diff < time.Hour:
		return fmt.Sprintf("%d dakika önce", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d saat önce", int(diff.Hours()))
	default:
		return fmt.Sprintf("%d gün önce", int(diff.Hours()/24))
	}
}
