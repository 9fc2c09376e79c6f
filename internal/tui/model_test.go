package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridkit/internal/config"
	"github.com/alexisbeaulieu97/gridkit/internal/grid"
	"github.com/alexisbeaulieu97/gridkit/internal/theme"
	"github.com/alexisbeaulieu97/gridkit/internal/viewport"
)

const dashboardYAML = `
version: "1.0"
name: dashboard
scale: 8
gap:
  horizontal: {sm: 16}
  vertical: {sm: 16}
children:
  - id: nav
    widths: {sm: 12, md: 3}
  - id: main
    label: Main content
    widths: {md: 9}
  - id: footer
`

const compactYAML = `
version: "1.0"
name: compact
children:
  - id: only
`

func mustDecode(t *testing.T, data string) *config.Document {
	t.Helper()
	doc, err := config.Decode([]byte(data), "test.yaml")
	require.NoError(t, err)
	return doc
}

func sized(t *testing.T, m Model, width, height int) Model {
	t.Helper()
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	require.Nil(t, cmd)
	return updated.(Model)
}

func TestNewModelDefersLayoutUntilSized(t *testing.T) {
	m := NewModel(mustDecode(t, dashboardYAML), nil, nil)
	defer m.Close()

	_, ok := m.Layout()
	require.False(t, ok)
	require.Nil(t, m.Init())
}

func TestNewModelUsesAlreadyMeasuredObserver(t *testing.T) {
	observer := viewport.NewObserver(nil)
	observer.Update(800, 480)
	provider := theme.NewProvider(theme.None[theme.Theme](), observer)

	m := NewModel(mustDecode(t, dashboardYAML), provider, nil)
	defer m.Close()

	layout, ok := m.Layout()
	require.True(t, ok)
	require.Equal(t, grid.Medium, layout.Bucket)
}

func TestCloseDetachesFromObserver(t *testing.T) {
	provider := theme.NewProvider(theme.None[theme.Theme](), nil)
	m := NewModel(mustDecode(t, dashboardYAML), provider, nil)
	require.Equal(t, 1, provider.Observer().Subscribers())

	m.Close()
	require.Equal(t, 0, provider.Observer().Subscribers())
}
