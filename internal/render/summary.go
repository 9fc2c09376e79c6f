package render

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/gridkit/internal/grid"
)

// Summary describes a layout as plain text, one line per cell in row order.
// The output is stable so two layouts can be diffed line by line.
func Summary(layout grid.Layout) string {
	var b strings.Builder
	bucket := string(layout.Bucket)
	if layout.Bucket == grid.BelowMinimum {
		bucket = "-"
	}
	fmt.Fprintf(&b, "bucket %s\n", bucket)
	for r := range layout.Rows {
		for _, cell := range layout.Row(r) {
			fmt.Fprintf(&b, "row %d %s %d/%d order=%d hgap=%d vgap=%d\n",
				r, cell.ID, cell.Columns, grid.Columns, cell.Order, cell.HorizontalGap, cell.VerticalGap)
		}
	}
	return b.String()
}
