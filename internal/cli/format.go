package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/xaenox/meet-bot/internal/models"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true)
	styleDim    = lipgloss.NewStyle().Faint(true)
	kindStyles  = map[models.Kind]lipgloss.Style{
		models.Regular:  lipgloss.NewStyle(),
		models.Lab:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		models.Elective: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
)

func formatPlan(day time.Time, plan []models.Meeting) string {
	title := day.Format("Mon 02 Jan 2006")
	if len(plan) == 0 {
		return fmt.Sprintf("No meetings scheduled for %s.\n", title)
	}

	rows := make([][]string, 0, len(plan))
	for _, m := range plan {
		rows = append(rows, []string{
			m.JoinAt.Format("15:04"),
			kindStyles[m.Kind].Render(string(m.Kind)),
			fmt.Sprintf("%dh", m.Duration),
			m.Link,
		})
	}

	return fmt.Sprintf("Meetings for %s\n\n%s", title,
		renderTable([]string{"TIME", "KIND", "LENGTH", "LINK"}, rows))
}

func formatDecision(now time.Time, d models.Decision) string {
	when := now.Format("Mon 15:04")
	if !d.Join {
		return fmt.Sprintf("%s: no meeting", when)
	}
	return fmt.Sprintf("%s: join %s meeting %s", when, kindStyles[d.Kind].Render(string(d.Kind)), d.Link)
}

// renderTable pads every column to its widest visible cell.
func renderTable(headers []string, rows [][]string) string {
	const colGap = 2

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style(cell))
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return styleHeader.Render(s) })

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	writeRow(seps, func(s string) string { return styleDim.Render(s) })

	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}
