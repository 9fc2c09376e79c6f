package grid

import "fmt"

// WidthExpression sizes a child as (100% - gap) * columns / 12. The percentage
// base is the live container width, so the expression is evaluated late.
type WidthExpression struct {
	Columns int
	Gap     int
}

// ComputeChildWidthExpression builds the sizing expression for one child.
func ComputeChildWidthExpression(columns, horizontalGap int) WidthExpression {
	return WidthExpression{Columns: clampColumns(columns), Gap: max(horizontalGap, 0)}
}

// String renders the expression in CSS calc() syntax.
func (w WidthExpression) String() string {
	return fmt.Sprintf("calc((100%% - %dpx) * %d / %d)", w.Gap, w.Columns, Columns)
}

// Fraction returns columns/12.
func (w WidthExpression) Fraction() float64 {
	return float64(w.Columns) / Columns
}

// Resolve evaluates the expression against a measured container width and
// floors the result. It reports false for an unmeasured (non-positive)
// container; the result is clamped at zero when the gap exceeds the container.
func (w WidthExpression) Resolve(container int) (int, bool) {
	if container <= 0 {
		return 0, false
	}
	available := container - w.Gap
	if available <= 0 {
		return 0, true
	}
	return available * w.Columns / Columns, true
}
