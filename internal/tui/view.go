package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gridkit/internal/grid"
	"github.com/alexisbeaulieu97/gridkit/internal/render"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	layout, ok := m.engine.Layout()
	if !ok || m.termWidth <= 0 {
		return statusStyle.Render("Measuring viewport…")
	}

	body, ok := render.Grid(layout, render.Options{
		Container: m.Columns(),
		Scale:     m.scale,
		Provider:  m.provider,
		Labels:    m.doc.Labels(),
		Ordered:   m.ordered,
	})
	if !ok {
		return statusStyle.Render("Measuring viewport…")
	}

	sections := []string{headerStyle.Render(m.header(layout)), body}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, footerStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) header(layout grid.Layout) string {
	th := m.provider.Theme()

	bucket := string(layout.Bucket)
	if layout.Bucket == grid.BelowMinimum {
		bucket = "below " + string(firstName(m.engine.Table()))
	}

	gaps := "gaps off"
	if m.engine.UseGap() {
		gaps = "gaps on"
	}

	parts := []string{
		th.Title.Render(m.doc.Name),
		th.Detail.Render(fmt.Sprintf("%dpx", layout.Viewport.Width)),
		th.Label.Render(bucket),
		th.Detail.Render(fmt.Sprintf("%d rows", len(layout.Rows))),
		th.Detail.Render(gaps),
	}
	line := strings.Join(parts, "  ")
	if m.shrink > 0 {
		line += "  " + warningStyle.Render(fmt.Sprintf("simulated -%d cols", m.shrink))
	}
	return line
}

func firstName(table grid.Table) grid.Name {
	names := table.Names()
	if len(names) == 0 {
		return "minimum"
	}
	return names[0]
}
