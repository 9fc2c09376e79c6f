package grid

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/gridkit/internal/logger"
)

// Cell is the computed sizing output for one child.
type Cell struct {
	Index         int
	ID            string
	Row           int
	Columns       int
	Order         int
	HorizontalGap int
	VerticalGap   int
	Width         WidthExpression
}

// Layout is a full recompute result for one viewport.
type Layout struct {
	Viewport Viewport
	Bucket   Name
	Rows     []RowGroup
	// Cells are in input order.
	Cells []Cell
}

// Row returns the cells of row r in input order.
func (l Layout) Row(r int) []Cell {
	return lo.Filter(l.Cells, func(c Cell, _ int) bool { return c.Row == r })
}

// Ordered returns cells grouped by row, each row sorted by its order hint.
// Children without an order keep their input position relative to each other.
func (l Layout) Ordered() [][]Cell {
	out := make([][]Cell, len(l.Rows))
	for r := range l.Rows {
		row := l.Row(r)
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].Order < row[j].Order
		})
		out[r] = row
	}
	return out
}

// Options configures a layout computation.
type Options struct {
	Table  Table
	Gaps   GapSpec
	UseGap bool
}

// Compute runs the full pipeline: partition, gaps, width expressions.
// It is a pure function of its inputs.
func Compute(children []ChildSpec, vp Viewport, opts Options) Layout {
	rows := PartitionIntoRows(children, vp, opts.Table)
	horizontal, vertical := ComputeGaps(rows, opts.Gaps, opts.UseGap, vp, opts.Table)

	cells := make([]Cell, len(children))
	for r, row := range rows {
		for _, idx := range row.Indices {
			child := children[idx]
			columns := ComputeColumnWidth(child, vp, opts.Table)
			cells[idx] = Cell{
				Index:         idx,
				ID:            child.ID,
				Row:           r,
				Columns:       columns,
				Order:         ResolveCascade(child.Orders, vp.Width, opts.Table, 0),
				HorizontalGap: horizontal[idx],
				VerticalGap:   vertical[idx],
				Width:         ComputeChildWidthExpression(columns, horizontal[idx]),
			}
		}
	}

	return Layout{
		Viewport: vp,
		Bucket:   ResolveBucket(opts.Table, vp.Width),
		Rows:     rows,
		Cells:    cells,
	}
}

// Source publishes viewport measurements.
type Source interface {
	Current() (width, height int, measured bool)
	Subscribe(fn func(width, height int)) (unsubscribe func())
}

// Engine caches the layout for one row and recomputes it whenever the
// viewport, the children or the gap configuration change.
type Engine struct {
	mu       sync.Mutex
	children []ChildSpec
	opts     Options
	log      *logger.Logger

	viewport Viewport
	measured bool
	stale    bool
	closed   bool
	layout   Layout

	detach func()
	sinks  []func(Layout)
}

// NewEngine creates an engine in the stale state. No layout is available
// until the first viewport measurement.
func NewEngine(children []ChildSpec, opts Options, log *logger.Logger) *Engine {
	if opts.Table.Len() == 0 {
		opts.Table = DefaultTable()
	}
	return &Engine{
		children: cloneChildren(children),
		opts:     opts,
		log:      log,
		stale:    true,
	}
}

func cloneChildren(children []ChildSpec) []ChildSpec {
	out := make([]ChildSpec, len(children))
	copy(out, children)
	return out
}

// Attach subscribes the engine to src and recomputes immediately when src
// already holds a measurement. Attaching again replaces the previous source.
func (e *Engine) Attach(src Source) {
	unsubscribe := src.Subscribe(func(width, height int) {
		e.Recompute(Viewport{Width: width, Height: height})
	})

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		unsubscribe()
		return
	}
	previous := e.detach
	e.detach = unsubscribe
	e.mu.Unlock()

	if previous != nil {
		previous()
	}
	if w, h, ok := src.Current(); ok {
		e.Recompute(Viewport{Width: w, Height: h})
	}
}

// Close detaches the engine from its source. Later recompute requests are ignored.
func (e *Engine) Close() {
	e.mu.Lock()
	e.closed = true
	detach := e.detach
	e.detach = nil
	e.sinks = nil
	e.mu.Unlock()

	if detach != nil {
		detach()
	}
}

// OnChange registers fn to receive every newly computed layout.
func (e *Engine) OnChange(fn func(Layout)) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	e.sinks = append(e.sinks, fn)
	e.mu.Unlock()
}

// Recompute records a viewport measurement and rebuilds the layout from scratch.
func (e *Engine) Recompute(vp Viewport) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.viewport = vp
	e.measured = vp.Width > 0
	e.mu.Unlock()

	e.refresh()
}

// SetChildren replaces the child specs.
func (e *Engine) SetChildren(children []ChildSpec) {
	e.mu.Lock()
	e.children = cloneChildren(children)
	e.stale = true
	e.mu.Unlock()

	e.refresh()
}

// SetOptions replaces the table, gap spec and gap toggle together.
func (e *Engine) SetOptions(opts Options) {
	if opts.Table.Len() == 0 {
		opts.Table = DefaultTable()
	}
	e.mu.Lock()
	e.opts = opts
	e.stale = true
	e.mu.Unlock()

	e.refresh()
}

// SetGaps replaces the gap spec.
func (e *Engine) SetGaps(spec GapSpec) {
	e.mu.Lock()
	e.opts.Gaps = spec
	e.stale = true
	e.mu.Unlock()

	e.refresh()
}

// SetUseGap toggles gap computation.
func (e *Engine) SetUseGap(useGap bool) {
	e.mu.Lock()
	e.opts.UseGap = useGap
	e.stale = true
	e.mu.Unlock()

	e.refresh()
}

// UseGap reports whether gaps are enabled.
func (e *Engine) UseGap() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts.UseGap
}

// Table returns the breakpoint table in use.
func (e *Engine) Table() Table {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts.Table
}

// Layout returns the cached layout. It reports false until a viewport has
// been measured.
func (e *Engine) Layout() (Layout, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.measured || e.stale {
		return Layout{}, false
	}
	return e.layout, true
}

// Stale reports whether the cached layout is out of date.
func (e *Engine) Stale() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stale
}

func (e *Engine) refresh() {
	e.mu.Lock()
	if e.closed || !e.measured {
		e.stale = true
		e.mu.Unlock()
		return
	}

	layout := Compute(e.children, e.viewport, e.opts)
	e.layout = layout
	e.stale = false
	sinks := append([]func(Layout){}, e.sinks...)
	e.mu.Unlock()

	e.log.WithFields(map[string]any{
		"bucket": string(layout.Bucket),
		"rows":   len(layout.Rows),
		"width":  layout.Viewport.Width,
	}).Debug("layout recomputed")

	for _, sink := range sinks {
		sink(layout)
	}
}
