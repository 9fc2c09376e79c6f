package grid

// Columns is the number of column units in a full row.
const Columns = 12

// ChildSpec describes how wide a child wants to be at each breakpoint.
type ChildSpec struct {
	ID     string
	Widths Values[int]
	// Orders is a rendering hint; it never affects partitioning.
	Orders Values[int]
	// Default applies when no active-or-lower breakpoint declares a width.
	// Zero means full width.
	Default int
}

// GapSpec holds horizontal and vertical gap sizes per breakpoint.
type GapSpec struct {
	Horizontal Values[int]
	Vertical   Values[int]
	// Default is used for either axis when no breakpoint declares a value.
	Default int
}

// Viewport is the measured size the calculator works against.
type Viewport struct {
	Width  int
	Height int
}

// RowGroup lists the children that share one visual row.
type RowGroup struct {
	Indices []int
	Columns int
}

// ComputeColumnWidth returns the child's width in column units, always in [1,12].
func ComputeColumnWidth(spec ChildSpec, vp Viewport, table Table) int {
	def := spec.Default
	if def == 0 {
		def = Columns
	}
	return clampColumns(ResolveCascade(spec.Widths, vp.Width, table, def))
}

func clampColumns(c int) int {
	switch {
	case c < 1:
		return 1
	case c > Columns:
		return Columns
	default:
		return c
	}
}

// PartitionIntoRows assigns children to rows greedily in input order. A child
// that would push the running total past 12 starts a new row.
func PartitionIntoRows(children []ChildSpec, vp Viewport, table Table) []RowGroup {
	rows := make([]RowGroup, 0)
	if len(children) == 0 {
		return rows
	}

	current := RowGroup{}
	for i, child := range children {
		width := ComputeColumnWidth(child, vp, table)
		if len(current.Indices) > 0 && current.Columns+width > Columns {
			rows = append(rows, current)
			current = RowGroup{}
		}
		current.Indices = append(current.Indices, i)
		current.Columns += width
	}
	rows = append(rows, current)
	return rows
}

// ComputeGaps returns, per child in input order, the total horizontal gap of
// its row and the vertical gap above it. The first row never has a vertical
// gap. A disabled useGap zeroes both outputs.
func ComputeGaps(rows []RowGroup, spec GapSpec, useGap bool, vp Viewport, table Table) ([]int, []int) {
	n := 0
	for _, row := range rows {
		for _, idx := range row.Indices {
			if idx+1 > n {
				n = idx + 1
			}
		}
	}

	horizontal := make([]int, n)
	vertical := make([]int, n)
	if !useGap {
		return horizontal, vertical
	}

	hGap := ResolveCascade(spec.Horizontal, vp.Width, table, spec.Default)
	vGap := ResolveCascade(spec.Vertical, vp.Width, table, spec.Default)

	for r, row := range rows {
		k := len(row.Indices)
		for _, idx := range row.Indices {
			if k > 1 {
				horizontal[idx] = hGap * (k - 1)
			}
			if r > 0 {
				vertical[idx] = vGap
			}
		}
	}
	return horizontal, vertical
}
