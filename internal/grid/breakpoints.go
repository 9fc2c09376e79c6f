package grid

import (
	"fmt"
	"sort"
)

// Name identifies a breakpoint such as "sm" or "xl".
type Name string

// BelowMinimum is returned by ResolveBucket when the width is smaller than
// every breakpoint in the table.
const BelowMinimum Name = ""

// Canonical breakpoint names.
const (
	Small           Name = "sm"
	Medium          Name = "md"
	Large           Name = "lg"
	ExtraLarge      Name = "xl"
	ExtraExtraLarge Name = "xxl"
)

// Breakpoint is a named minimum viewport width.
type Breakpoint struct {
	Name     Name
	MinWidth int
}

// Table is an immutable, ordered set of breakpoints sorted by MinWidth.
type Table struct {
	entries []Breakpoint
}

// NewTable copies the supplied breakpoints and orders them by minimum width.
// Entries keep their relative order when widths tie.
func NewTable(breakpoints ...Breakpoint) Table {
	entries := make([]Breakpoint, len(breakpoints))
	copy(entries, breakpoints)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MinWidth < entries[j].MinWidth
	})
	return Table{entries: entries}
}

// DefaultTable returns the sm/md/lg/xl/xxl table used by common responsive grids.
func DefaultTable() Table {
	return NewTable(
		Breakpoint{Name: Small, MinWidth: 576},
		Breakpoint{Name: Medium, MinWidth: 768},
		Breakpoint{Name: Large, MinWidth: 992},
		Breakpoint{Name: ExtraLarge, MinWidth: 1200},
		Breakpoint{Name: ExtraExtraLarge, MinWidth: 1400},
	)
}

// Breakpoints returns a copy of the table entries in ascending width order.
func (t Table) Breakpoints() []Breakpoint {
	out := make([]Breakpoint, len(t.entries))
	copy(out, t.entries)
	return out
}

// Names returns the breakpoint names in ascending width order.
func (t Table) Names() []Name {
	names := make([]Name, 0, len(t.entries))
	for _, bp := range t.entries {
		names = append(names, bp.Name)
	}
	return names
}

// Lookup returns the minimum width registered for name.
func (t Table) Lookup(name Name) (int, bool) {
	for _, bp := range t.entries {
		if bp.Name == name {
			return bp.MinWidth, true
		}
	}
	return 0, false
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.entries)
}

// Validate reports entries the resolver would skip or treat ambiguously.
// Resolution never depends on this check; it exists for loaders that want to
// reject a malformed table up front.
func (t Table) Validate() error {
	seen := make(map[Name]struct{}, len(t.entries))
	for i, bp := range t.entries {
		if bp.Name == BelowMinimum {
			return fmt.Errorf("breakpoint %d has no name", i)
		}
		if bp.MinWidth < 0 {
			return fmt.Errorf("breakpoint %s has negative minimum width %d", bp.Name, bp.MinWidth)
		}
		if _, dup := seen[bp.Name]; dup {
			return fmt.Errorf("breakpoint %s is declared more than once", bp.Name)
		}
		seen[bp.Name] = struct{}{}
		if i > 0 && t.entries[i-1].MinWidth == bp.MinWidth {
			return fmt.Errorf("breakpoints %s and %s share minimum width %d", t.entries[i-1].Name, bp.Name, bp.MinWidth)
		}
	}
	return nil
}

// Values maps breakpoint names to a per-bucket value.
type Values[T any] map[Name]T

// ResolveBucket returns the largest breakpoint whose minimum width is <= width.
// The lower bound is inclusive. Unnamed or negative entries are ignored and
// BelowMinimum is returned when nothing matches.
func ResolveBucket(table Table, width int) Name {
	bucket := BelowMinimum
	best := -1
	for _, bp := range table.entries {
		if bp.Name == BelowMinimum || bp.MinWidth < 0 {
			continue
		}
		if bp.MinWidth <= width && bp.MinWidth > best {
			bucket = bp.Name
			best = bp.MinWidth
		}
	}
	return bucket
}

// ResolveValue returns the value declared for the active bucket, or def when
// the bucket has no entry or the width is below every breakpoint.
func ResolveValue[T any](values Values[T], width int, table Table, def T) T {
	bucket := ResolveBucket(table, width)
	if bucket == BelowMinimum {
		return def
	}
	if v, ok := values[bucket]; ok {
		return v
	}
	return def
}

// ResolveCascade behaves like ResolveValue but falls back to the nearest
// smaller breakpoint that declares a value before using def.
func ResolveCascade[T any](values Values[T], width int, table Table, def T) T {
	v, ok := lookupCascade(values, width, table)
	if !ok {
		return def
	}
	return v
}

func lookupCascade[T any](values Values[T], width int, table Table) (T, bool) {
	var zero T
	if len(values) == 0 {
		return zero, false
	}
	for i := len(table.entries) - 1; i >= 0; i-- {
		bp := table.entries[i]
		if bp.Name == BelowMinimum || bp.MinWidth < 0 || bp.MinWidth > width {
			continue
		}
		if v, ok := values[bp.Name]; ok {
			return v, true
		}
	}
	return zero, false
}
