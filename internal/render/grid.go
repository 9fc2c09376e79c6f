// Package render draws computed grid layouts as terminal boxes.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/gridkit/internal/grid"
	"github.com/alexisbeaulieu97/gridkit/internal/theme"
	"github.com/alexisbeaulieu97/gridkit/internal/viewport"
)

// minBoxWidth is the narrowest box that still fits a border and one rune.
const minBoxWidth = 3

// Options controls how a layout is drawn.
type Options struct {
	// Container is the available width in terminal columns.
	Container int
	Scale     viewport.Scale
	Provider  *theme.Provider
	// Labels maps child IDs to display names.
	Labels map[string]string
	// Ordered applies per-row order hints.
	Ordered bool
}

// Grid renders every row of the layout. It reports false while the container
// width is unknown so callers can show a placeholder instead.
func Grid(layout grid.Layout, opts Options) (string, bool) {
	if opts.Container <= 0 {
		return "", false
	}
	if len(layout.Cells) == 0 {
		return "", true
	}

	rows := layout.Ordered()
	if !opts.Ordered {
		rows = make([][]grid.Cell, len(layout.Rows))
		for r := range layout.Rows {
			rows[r] = layout.Row(r)
		}
	}

	containerPx := opts.Scale.ToPixels(opts.Container, 0).Width
	views := make([]string, 0, len(rows)*2)
	for _, cells := range rows {
		if len(cells) == 0 {
			continue
		}
		if lines := opts.Scale.Lines(cells[0].VerticalGap); lines > 0 && len(views) > 0 {
			views = append(views, strings.Repeat("\n", lines-1))
		}
		views = append(views, renderRow(cells, containerPx, opts))
	}

	return lipgloss.JoinVertical(lipgloss.Left, views...), true
}

func renderRow(cells []grid.Cell, containerPx int, opts Options) string {
	spacer := ""
	if k := len(cells); k > 1 {
		perGap := cells[0].HorizontalGap / (k - 1)
		spacer = strings.Repeat(" ", opts.Scale.Columns(perGap))
	}

	boxes := lo.Map(cells, func(cell grid.Cell, _ int) string {
		px, _ := cell.Width.Resolve(containerPx)
		return renderCell(cell, opts.Scale.Columns(px), opts)
	})

	if spacer == "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	}
	joined := make([]string, 0, len(boxes)*2-1)
	for i, box := range boxes {
		if i > 0 {
			joined = append(joined, spacer)
		}
		joined = append(joined, box)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joined...)
}

func renderCell(cell grid.Cell, width int, opts Options) string {
	if width < minBoxWidth {
		return strings.Repeat("·", max(width, 0))
	}

	label := cell.ID
	if name, ok := opts.Labels[cell.ID]; ok && name != "" {
		label = name
	}

	inner := width - 2
	th := opts.Provider.Theme()
	title := opts.Provider.LabelStyle(theme.Overrides{}).Render(truncate(label, inner))
	detail := th.Detail.Render(truncate(fmt.Sprintf("%d/%d", cell.Columns, grid.Columns), inner))

	return opts.Provider.CellStyle(theme.Overrides{}).
		Width(inner).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, detail))
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width == 1 {
		return string(runes[:1])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
