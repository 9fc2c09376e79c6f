package viewport

import (
	"fmt"

	"golang.org/x/term"
)

// DefaultCellWidth is the number of pixels one terminal column stands for.
const DefaultCellWidth = 8

// Scale converts between terminal cells and the pixel units the breakpoint
// table is expressed in. Terminal rows are treated as twice as tall as columns
// are wide.
type Scale struct {
	CellWidth int
}

// NewScale returns a Scale, using DefaultCellWidth for non-positive values.
func NewScale(cellWidth int) Scale {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return Scale{CellWidth: cellWidth}
}

func (s Scale) cell() int {
	if s.CellWidth <= 0 {
		return DefaultCellWidth
	}
	return s.CellWidth
}

// ToPixels converts a terminal size to pixels.
func (s Scale) ToPixels(cols, rows int) Size {
	return Size{Width: cols * s.cell(), Height: rows * s.cell() * 2}
}

// Columns converts a horizontal pixel length to whole terminal columns.
func (s Scale) Columns(px int) int {
	if px <= 0 {
		return 0
	}
	return px / s.cell()
}

// Lines converts a vertical pixel length to terminal lines. Any positive
// length occupies at least one line.
func (s Scale) Lines(px int) int {
	if px <= 0 {
		return 0
	}
	return max(px/(s.cell()*2), 1)
}

// Measure reads the terminal size for fd in cells.
func Measure(fd int) (Size, error) {
	if !term.IsTerminal(fd) {
		return Size{}, fmt.Errorf("file descriptor %d is not a terminal", fd)
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return Size{}, fmt.Errorf("measure terminal: %w", err)
	}
	return Size{Width: width, Height: height}, nil
}
