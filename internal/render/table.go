package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/gridkit/internal/grid"
	"github.com/alexisbeaulieu97/gridkit/internal/theme"
)

var cellHeaders = []string{"#", "ID", "ROW", "COLS", "ORDER", "H-GAP", "V-GAP", "WIDTH"}

// CellTable summarises a layout as a table, one line per child in input order.
func CellTable(layout grid.Layout, provider *theme.Provider) string {
	th := provider.Theme()
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	body := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(th.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(th.BorderColor)).
		Headers(cellHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return body
		})

	for _, cell := range layout.Cells {
		t.Row(
			strconv.Itoa(cell.Index),
			cell.ID,
			strconv.Itoa(cell.Row),
			strconv.Itoa(cell.Columns),
			strconv.Itoa(cell.Order),
			strconv.Itoa(cell.HorizontalGap),
			strconv.Itoa(cell.VerticalGap),
			cell.Width.String(),
		)
	}

	return t.Render()
}

// BreakpointTable lists a breakpoint table and marks the active bucket.
func BreakpointTable(tbl grid.Table, active grid.Name, provider *theme.Provider) string {
	th := provider.Theme()
	highlight := lipgloss.NewStyle().Bold(true).Foreground(th.Accent).Padding(0, 1)
	body := lipgloss.NewStyle().Padding(0, 1)
	entries := tbl.Breakpoints()

	t := table.New().
		Border(th.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(th.BorderColor)).
		Headers("NAME", "MIN WIDTH", "ACTIVE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row >= 0 && row < len(entries) && entries[row].Name == active {
				return highlight
			}
			return body
		})

	for _, bp := range entries {
		mark := ""
		if bp.Name == active {
			mark = "*"
		}
		t.Row(string(bp.Name), strconv.Itoa(bp.MinWidth), mark)
	}

	return t.Render()
}
