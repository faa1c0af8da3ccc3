// Package tui provides the terminal user interface for the opsboard
// task board.
//
// This file centralizes the style system using Lip Gloss. All colors
// use AdaptiveColor for light/dark terminal support, and CheckNoColor
// honors the NO_COLOR environment variable and TERM=dumb.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/otelassist/opsboard/internal/constants"
)

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for the active column and selections.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for completed items.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for in-progress items.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for error states and high priority.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for secondary text and empty columns.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// StyleBold applies bold formatting to text.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim applies dim formatting to text.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// StatusColors returns the semantic color per board column.
func StatusColors() map[constants.Status]lipgloss.AdaptiveColor {
	return map[constants.Status]lipgloss.AdaptiveColor{
		constants.StatusPending:    ColorMuted,
		constants.StatusInProgress: ColorWarning,
		constants.StatusCompleted:  ColorSuccess,
	}
}

// StatusIcon returns the icon for a status. Triple redundancy (icon +
// color + text) keeps columns readable without color support.
func StatusIcon(s constants.Status) string {
	switch s {
	case constants.StatusPending:
		return "○"
	case constants.StatusInProgress:
		return "◐"
	case constants.StatusCompleted:
		return "●"
	default:
		return "?"
	}
}

// StatusTitle returns the column heading for a status.
func StatusTitle(s constants.Status) string {
	switch s {
	case constants.StatusPending:
		return "Bekleyen"
	case constants.StatusInProgress:
		return "İşlemde"
	case constants.StatusCompleted:
		return "Tamamlanan"
	default:
		return string(s)
	}
}

// PriorityLabel returns a short colored marker for a priority.
func PriorityLabel(p constants.Priority) string {
	switch p {
	case constants.PriorityHigh:
		return lipgloss.NewStyle().Foreground(ColorError).Render("!!")
	case constants.PriorityLow:
		return StyleDim.Render("··")
	default:
		return ""
	}
}

// CheckNoColor disables color output when the NO_COLOR environment
// variable is set or the terminal is dumb. Call at command start.
func CheckNoColor() {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
