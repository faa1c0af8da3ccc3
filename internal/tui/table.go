package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/otelassist/opsboard/internal/board"
	"github.com/otelassist/opsboard/internal/constants"
	"github.com/otelassist/opsboard/internal/domain"
)

// RenderList renders the merged board as a static grouped table for
// the non-interactive list command.
func RenderList(items []domain.WorkItem) string {
	var b strings.Builder
	for _, status := range constants.Statuses() {
		color := StatusColors()[status]
		head := lipgloss.NewStyle().Foreground(color).Bold(true).
			Render(fmt.Sprintf("%s %s", StatusIcon(status), StatusTitle(status)))
		b.WriteString(head + "\n")

		n := 0
		for _, item := range items {
			if item.Status != status {
				continue
			}
			n++
			b.WriteString(renderListRow(item))
		}
		if n == 0 {
			b.WriteString(StyleDim.Render("  boş") + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderListRow(item domain.WorkItem) string {
	room := orDash(item.Room)
	who := orDash(item.GuestName)
	dept := item.Department
	if dept != "" {
		dept = " [" + dept + "]"
	}
	assignee := ""
	if item.AssignedTo != "" {
		assignee = " → " + item.AssignedTo
	}
	return fmt.Sprintf("  #%-8d Oda %-5s %-20s %s%s%s  %s\n",
		item.ID(), room, who, item.RequestText, dept, assignee,
		StyleDim.Render(RelativeAge(item.CreatedAt)))
}

// RenderSummary renders board statistics for the list command's
// --stats flag.
func RenderSummary(sum board.Summary) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render("Pano Özeti") + "\n")
	b.WriteString(fmt.Sprintf("  bekleyen: %d  işlemde: %d  tamamlanan: %d  toplam: %d\n",
		sum.Pending, sum.InProgress, sum.Completed, sum.Total()))
	b.WriteString(fmt.Sprintf("  ort. tamamlama: %d dk  ort. çalışma: %d dk\n",
		sum.AvgCompletionMinutes, sum.AvgWorkMinutes))
	if len(sum.ByDepartment) > 0 {
		b.WriteString("  departmanlar:\n")
		for _, dept := range sortedDepartments(sum.ByDepartment) {
			label := dept
			if label == "" {
				label = "(atanmamış)"
			}
			b.WriteString(fmt.Sprintf("    %-20s %d\n", label, sum.ByDepartment[dept]))
		}
	}
	return b.String()
}

// sortedDepartments returns department keys in stable display order.
func sortedDepartments(byDept map[string]int) []string {
	keys := make([]string, 0, len(byDept))
	for k := range byDept {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
