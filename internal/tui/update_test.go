package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridkit/internal/grid"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestUpdateWindowSizeComputesLayout(t *testing.T) {
	m := NewModel(mustDecode(t, dashboardYAML), nil, nil)
	defer m.Close()

	m = sized(t, m, 100, 40)
	layout, ok := m.Layout()
	require.True(t, ok)
	require.Equal(t, 800, layout.Viewport.Width)
	require.Equal(t, 640, layout.Viewport.Height)
	require.Equal(t, grid.Medium, layout.Bucket)
	require.Len(t, layout.Rows, 2)
	require.Equal(t, []int{0, 1}, layout.Rows[0].Indices)
}

func TestUpdateNarrowerAndWiderSimulateWidth(t *testing.T) {
	m := NewModel(mustDecode(t, dashboardYAML), nil, nil)
	defer m.Close()
	m = sized(t, m, 100, 40)

	m = press(t, m, runes("["))
	require.Equal(t, 96, m.Columns())
	layout, _ := m.Layout()
	require.Equal(t, grid.Medium, layout.Bucket)

	m = press(t, m, runes("["))
	require.Equal(t, 92, m.Columns())
	layout, _ = m.Layout()
	require.Equal(t, grid.Small, layout.Bucket)
	require.Len(t, layout.Rows, 3)

	m = press(t, m, runes("]"))
	require.Equal(t, 96, m.Columns())

	m = press(t, m, runes("["))
	m = press(t, m, runes("0"))
	require.Equal(t, 100, m.Columns())
	layout, _ = m.Layout()
	require.Equal(t, 800, layout.Viewport.Width)
}

func TestUpdateWiderNeverExceedsTerminal(t *testing.T) {
	m := NewModel(mustDecode(t, dashboardYAML), nil, nil)
	defer m.Close()
	m = sized(t, m, 100, 40)

	m = press(t, m, runes("]"))
	require.Equal(t, 100, m.Columns())
}

func TestUpdateNarrowerStopsAtOneColumn(t *testing.T) {
	m := NewModel(mustDecode(t, dashboardYAML), nil, nil)
	defer m.Close()
	m = sized(t, m, 6, 10)

	m = press(t, m, runes("["))
	require.Equal(t, 2, m.Columns())
	m = press(t, m, runes("["))
	require.Equal(t, 2, m.Columns())
}

func TestUpdateToggleGap(t *testing.T) {
	m := NewModel(mustDecode(t, dashboardYAML), nil, nil)
	defer m.Close()
	m = sized(t, m, 100, 40)

	layout, _ := m.Layout()
	require.Equal(t, 16, layout.Cells[0].HorizontalGap)

	m = press(t, m, runes("g"))
	layout, ok := m.Layout()
	require.True(t, ok)
	require.Zero(t, layout.Cells[0].HorizontalGap)
	require.Zero(t, layout.Cells[2].VerticalGap)
}

func TestUpdateToggleOrderAndHelp(t *testing.T) {
	m := NewModel(mustDecode(t, dashboardYAML), nil, nil)
	defer m.Close()

	require.True(t, m.ordered)
	m = press(t, m, runes("o"))
	require.False(t, m.ordered)

	m = press(t, m, runes("?"))
	require.True(t, m.help.ShowAll)
}

func TestUpdateLayoutReloaded(t *testing.T) {
	m := NewModel(mustDecode(t, dashboardYAML), nil, nil)
	defer m.Close()
	m = sized(t, m, 100, 40)

	updated, cmd := m.Update(LayoutReloadedMsg{Document: mustDecode(t, compactYAML)})
	require.Nil(t, cmd)
	m = updated.(Model)

	layout, ok := m.Layout()
	require.True(t, ok)
	require.Len(t, layout.Cells, 1)
	require.Equal(t, "only", layout.Cells[0].ID)
	require.Equal(t, "reloaded compact (+1 -3)", m.status)
}

func TestUpdateLayoutReloadedBeforeSize(t *testing.T) {
	m := NewModel(mustDecode(t, dashboardYAML), nil, nil)
	defer m.Close()

	updated, _ := m.Update(LayoutReloadedMsg{Document: mustDecode(t, compactYAML)})
	m = updated.(Model)
	require.Equal(t, "reloaded compact", m.status)
}

func TestUpdateLayoutReloadedIgnoresNil(t *testing.T) {
	m := NewModel(mustDecode(t, dashboardYAML), nil, nil)
	defer m.Close()

	updated, _ := m.Update(LayoutReloadedMsg{})
	m = updated.(Model)
	require.Equal(t, "dashboard", m.doc.Name)
}

func TestUpdateReloadFailedKeepsLayout(t *testing.T) {
	m := NewModel(mustDecode(t, dashboardYAML), nil, nil)
	defer m.Close()
	m = sized(t, m, 100, 40)

	updated, _ := m.Update(ReloadFailedMsg{Err: errors.New("bad yaml")})
	m = updated.(Model)

	require.Equal(t, "reload failed: bad yaml", m.status)
	layout, ok := m.Layout()
	require.True(t, ok)
	require.Len(t, layout.Cells, 3)
}

func TestUpdateQuit(t *testing.T) {
	m := NewModel(mustDecode(t, dashboardYAML), nil, nil)
	defer m.Close()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.True(t, updated.(Model).Quitting())
}
