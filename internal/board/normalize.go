// Package board implements the operational task board core: the
// dual-source merger, the status lifecycle engine, and the drag
// reorder engine. All three are pure over their inputs; the Controller
// is the only stateful piece and owns the in-memory work item slice.
package board

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/otelassist/opsboard/internal/constants"
)

// NormalizeStatus maps a raw stored status literal onto the canonical
// three-state enum. The legacy CRM wrote a mix of Turkish and English
// spellings, in varying case; matching uses Turkish case folding so
// dotted/dotless i variants ("BEKLİYOR") fold correctly. Anything
// unrecognized normalizes to pending: a request we cannot classify is
// a request nobody has picked up.
func NormalizeStatus(raw string) constants.Status {
	folded := cases.Lower(language.Turkish).String(strings.TrimSpace(raw))
	switch folded {
	case "bekliyor", "pending":
		return constants.StatusPending
	case "onaylandı", "in-progress", "in_progress":
		return constants.StatusInProgress
	case "tamamlandı", "completed":
		return constants.StatusCompleted
	default:
		return constants.StatusPending
	}
}

// NormalizePriority maps a raw priority literal onto the enum,
// defaulting to medium. The secondary collection never carries a
// priority column, so its items always take the default.
func NormalizePriority(raw string) constants.Priority {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low", "düşük":
		return constants.PriorityLow
	case "high", "yüksek":
		return constants.PriorityHigh
	case "medium", "orta":
		return constants.PriorityMedium
	default:
		return constants.PriorityMedium
	}
}

// NormalizeSource maps a raw channel literal onto the enum. Unknown
// channels default to direct, the desk walk-up.
func NormalizeSource(raw string) constants.RequestSource {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "whatsapp":
		return constants.SourceWhatsApp
	case "phone", "telefon":
		return constants.SourcePhone
	case "crm":
		return constants.SourceCRM
	default:
		return constants.SourceDirect
	}
}
