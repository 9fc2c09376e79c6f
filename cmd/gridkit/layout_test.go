package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridkit/internal/viewport"
)

func TestLayoutCommandPrintsTable(t *testing.T) {
	path := writeLayout(t, dashboardLayout)

	stdout, _, err := executeCommand("layout", "-f", path, "--width", "800", "--height", "600")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Layout: dashboard")
	assert.Contains(t, stdout, "Viewport: 800x600px  bucket: md  rows: 2")
	assert.Contains(t, stdout, "calc((100% - 16px) * 3 / 12)")
	assert.Contains(t, stdout, "calc((100% - 0px) * 6 / 12)")
}

func TestLayoutCommandJSON(t *testing.T) {
	path := writeLayout(t, dashboardLayout)

	stdout, _, err := executeCommand("layout", "-f", path, "--width", "800", "--json")
	require.NoError(t, err)

	var report layoutReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, "dashboard", report.Name)
	assert.Equal(t, "md", report.Bucket)
	assert.True(t, report.UseGap)
	require.Len(t, report.Rows, 2)

	first := report.Rows[0]
	assert.Equal(t, 12, first.Columns)
	require.Len(t, first.Cells, 2)
	assert.Equal(t, "nav", first.Cells[0].ID)
	assert.Equal(t, 1, first.Cells[0].Order)
	assert.Equal(t, 16, first.Cells[0].HorizontalGap)
	assert.Equal(t, (800-16)*3/12, first.Cells[0].ResolvedWidth)

	second := report.Rows[1]
	require.Len(t, second.Cells, 1)
	assert.Equal(t, "footer", second.Cells[0].ID)
	assert.Equal(t, 8, second.Cells[0].VerticalGap)
	assert.Equal(t, 400, second.Cells[0].ResolvedWidth)
}

func TestLayoutCommandBelowMinimum(t *testing.T) {
	path := writeLayout(t, dashboardLayout)

	stdout, _, err := executeCommand("layout", "-f", path, "--width", "320")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bucket: below minimum  rows: 3")
}

func TestLayoutCommandMeasuresTerminalWithoutWidth(t *testing.T) {
	original := measureTerminal
	t.Cleanup(func() { measureTerminal = original })
	measureTerminal = func() (viewport.Size, error) {
		return viewport.Size{Width: 150, Height: 40}, nil
	}

	path := writeLayout(t, dashboardLayout)
	stdout, _, err := executeCommand("layout", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Viewport: 1200x640px  bucket: xl")
}

func TestLayoutCommandRequiresMeasurableViewport(t *testing.T) {
	original := measureTerminal
	t.Cleanup(func() { measureTerminal = original })
	measureTerminal = func() (viewport.Size, error) {
		return viewport.Size{}, errors.New("not a terminal")
	}

	path := writeLayout(t, dashboardLayout)
	_, _, err := executeCommand("layout", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Pass --width")

	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
}

func TestLayoutCommandRejectsInvalidDocument(t *testing.T) {
	path := writeLayout(t, "version: \"1.0\"\nname: broken\nchildren:\n  - id: a\n    widths: {md: 13}\n")

	_, _, err := executeCommand("layout", "-f", path, "--width", "800")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "children[0].widths[md]")
	assert.Contains(t, err.Error(), "Suggestion:")
}

func TestLayoutCommandMissingFile(t *testing.T) {
	_, _, err := executeCommand("layout", "-f", "does-not-exist.yaml", "--width", "800")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout file does not exist")
}

func TestLayoutCommandRequiresFileFlag(t *testing.T) {
	_, _, err := executeCommand("layout", "--width", "800")
	require.Error(t, err)
}

func TestLayoutCommandWarnsAboutUndeclaredBreakpoints(t *testing.T) {
	path := writeLayout(t, "version: \"1.0\"\nname: odd\nchildren:\n  - id: a\n    widths: {tv: 4}\n")

	_, stderr, err := executeCommand("layout", "-f", path, "--width", "800", "--log-format", "json")
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(stderr), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, []any{"tv"}, entry["breakpoints"])
	assert.Equal(t, "layout", entry["component"])
}
