package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridkit/internal/grid"
	"github.com/alexisbeaulieu97/gridkit/internal/theme"
	"github.com/alexisbeaulieu97/gridkit/internal/viewport"
)

func sampleLayout(useGap bool) grid.Layout {
	children := []grid.ChildSpec{
		{ID: "left", Widths: grid.Values[int]{grid.Small: 6}},
		{ID: "right", Widths: grid.Values[int]{grid.Small: 6}, Orders: grid.Values[int]{grid.Small: -1}},
		{ID: "below", Widths: grid.Values[int]{grid.Small: 4}},
	}
	opts := grid.Options{
		Table:  grid.DefaultTable(),
		Gaps:   grid.GapSpec{Horizontal: grid.Values[int]{grid.Small: 16}, Vertical: grid.Values[int]{grid.Small: 16}},
		UseGap: useGap,
	}
	return grid.Compute(children, grid.Viewport{Width: 800}, opts)
}

func monoOptions(container int) Options {
	return Options{
		Container: container,
		Scale:     viewport.NewScale(8),
		Provider:  theme.NewProvider(theme.Some(theme.Mono()), nil),
		Labels:    map[string]string{"left": "Left pane"},
	}
}

func TestGridDefersWithoutContainer(t *testing.T) {
	t.Parallel()

	out, ok := Grid(sampleLayout(true), monoOptions(0))
	require.False(t, ok)
	assert.Empty(t, out)
}

func TestGridRendersRowsAndGaps(t *testing.T) {
	t.Parallel()

	out, ok := Grid(sampleLayout(true), monoOptions(100))
	require.True(t, ok)

	lines := strings.Split(out, "\n")
	// Two 4-line boxes, one spacer line between rows.
	require.Len(t, lines, 9)
	assert.Contains(t, lines[1], "Left pane")
	assert.Contains(t, lines[1], "right")
	assert.Contains(t, lines[2], "6/12")
	assert.Equal(t, "", strings.TrimSpace(lines[4]))
	assert.Contains(t, lines[6], "below")

	// (800px - 16px) * 6 / 12 = 392px = 49 columns per box plus 2 gap columns.
	assert.Equal(t, 100, lipgloss.Width(lines[0]))
	assert.Contains(t, lines[0], "┐  ┌")
}

func TestGridWithoutGaps(t *testing.T) {
	t.Parallel()

	out, ok := Grid(sampleLayout(false), monoOptions(100))
	require.True(t, ok)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "┐┌")
}

func TestGridAppliesOrderHints(t *testing.T) {
	t.Parallel()

	opts := monoOptions(100)
	opts.Ordered = true
	out, ok := Grid(sampleLayout(true), opts)
	require.True(t, ok)

	first := strings.Split(out, "\n")[1]
	assert.Less(t, strings.Index(first, "right"), strings.Index(first, "Left pane"))
}

func TestGridNarrowCellsDegrade(t *testing.T) {
	t.Parallel()

	layout := grid.Compute([]grid.ChildSpec{{Default: 1}}, grid.Viewport{Width: 800}, grid.Options{Table: grid.DefaultTable()})
	out, ok := Grid(layout, monoOptions(24))
	require.True(t, ok)
	assert.Equal(t, "··", out)
}

func TestGridEmptyLayout(t *testing.T) {
	t.Parallel()

	out, ok := Grid(grid.Layout{}, monoOptions(80))
	require.True(t, ok)
	assert.Empty(t, out)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "a", truncate("abc", 1))
	assert.Equal(t, "", truncate("abc", 0))
}

func TestCellTable(t *testing.T) {
	t.Parallel()

	out := CellTable(sampleLayout(true), theme.NewProvider(theme.Some(theme.Mono()), nil))
	assert.Contains(t, out, "WIDTH")
	assert.Contains(t, out, "calc((100% - 16px) * 6 / 12)")
	assert.Contains(t, out, "below")
}

func TestBreakpointTable(t *testing.T) {
	t.Parallel()

	out := BreakpointTable(grid.DefaultTable(), grid.Medium, nil)
	assert.Contains(t, out, "xxl")
	assert.Contains(t, out, "1400")

	var marked []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "*") {
			marked = append(marked, line)
		}
	}
	require.Len(t, marked, 1)
	assert.Contains(t, marked[0], "md")
}

func TestSummaryListsCellsByRow(t *testing.T) {
	t.Parallel()

	layout := grid.Compute([]grid.ChildSpec{
		{ID: "a", Widths: grid.Values[int]{grid.Small: 6}},
		{ID: "b", Widths: grid.Values[int]{grid.Small: 6}},
		{ID: "c"},
	}, grid.Viewport{Width: 800}, grid.Options{Table: grid.DefaultTable()})

	assert.Equal(t, "bucket md\n"+
		"row 0 a 6/12 order=0 hgap=0 vgap=0\n"+
		"row 0 b 6/12 order=0 hgap=0 vgap=0\n"+
		"row 1 c 12/12 order=0 hgap=0 vgap=0\n", Summary(layout))

	below := grid.Compute(nil, grid.Viewport{Width: 100}, grid.Options{Table: grid.DefaultTable()})
	assert.Equal(t, "bucket -\n", Summary(below))
}
