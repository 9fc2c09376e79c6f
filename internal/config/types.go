package config

import (
	"sort"

	"github.com/alexisbeaulieu97/gridkit/internal/grid"
	"github.com/alexisbeaulieu97/gridkit/internal/viewport"
)

// Document is a gridkit layout file.
type Document struct {
	Version     string       `yaml:"version" validate:"required,semver"`
	Name        string       `yaml:"name" validate:"required,min=1,max=100"`
	Description string       `yaml:"description,omitempty"`
	Scale       int          `yaml:"scale,omitempty" validate:"omitempty,min=1,max=64"`
	Theme       string       `yaml:"theme,omitempty" validate:"omitempty,oneof=default mono"`
	Breakpoints []Breakpoint `yaml:"breakpoints,omitempty" validate:"omitempty,dive"`
	Gap         Gap          `yaml:"gap,omitempty"`
	Children    []Child      `yaml:"children" validate:"required,min=1,unique=ID,dive"`
}

// Breakpoint declares a named minimum width in pixels.
type Breakpoint struct {
	Name     string `yaml:"name" validate:"required,breakpoint"`
	MinWidth int    `yaml:"min_width" validate:"min=0"`
}

// Gap configures spacing between children.
type Gap struct {
	// Enabled defaults to true when omitted.
	Enabled    *bool          `yaml:"enabled,omitempty"`
	Horizontal map[string]int `yaml:"horizontal,omitempty" validate:"omitempty,dive,keys,breakpoint,endkeys,min=0"`
	Vertical   map[string]int `yaml:"vertical,omitempty" validate:"omitempty,dive,keys,breakpoint,endkeys,min=0"`
	Default    int            `yaml:"default,omitempty" validate:"min=0"`
}

// Child is one cell of the row.
type Child struct {
	ID      string         `yaml:"id" validate:"required,child_id"`
	Label   string         `yaml:"label,omitempty" validate:"max=60"`
	Widths  map[string]int `yaml:"widths,omitempty" validate:"omitempty,dive,keys,breakpoint,endkeys,columns"`
	Order   map[string]int `yaml:"order,omitempty" validate:"omitempty,dive,keys,breakpoint,endkeys,min=0,max=12"`
	Default int            `yaml:"default,omitempty" validate:"omitempty,columns"`
}

// DisplayName returns the label, or the ID when no label is set.
func (c Child) DisplayName() string {
	if c.Label != "" {
		return c.Label
	}
	return c.ID
}

// Table returns the declared breakpoint table, or the default one.
func (d *Document) Table() grid.Table {
	if d == nil || len(d.Breakpoints) == 0 {
		return grid.DefaultTable()
	}
	entries := make([]grid.Breakpoint, 0, len(d.Breakpoints))
	for _, bp := range d.Breakpoints {
		entries = append(entries, grid.Breakpoint{Name: grid.Name(bp.Name), MinWidth: bp.MinWidth})
	}
	return grid.NewTable(entries...)
}

// UseGap reports whether gap computation is enabled.
func (d *Document) UseGap() bool {
	if d == nil || d.Gap.Enabled == nil {
		return true
	}
	return *d.Gap.Enabled
}

// Gaps converts the gap section.
func (d *Document) Gaps() grid.GapSpec {
	if d == nil {
		return grid.GapSpec{}
	}
	return grid.GapSpec{
		Horizontal: toValues(d.Gap.Horizontal),
		Vertical:   toValues(d.Gap.Vertical),
		Default:    d.Gap.Default,
	}
}

// ChildSpecs converts the children section in declaration order.
func (d *Document) ChildSpecs() []grid.ChildSpec {
	if d == nil {
		return nil
	}
	specs := make([]grid.ChildSpec, 0, len(d.Children))
	for _, child := range d.Children {
		specs = append(specs, grid.ChildSpec{
			ID:      child.ID,
			Widths:  toValues(child.Widths),
			Orders:  toValues(child.Order),
			Default: child.Default,
		})
	}
	return specs
}

// Labels maps child IDs to display names.
func (d *Document) Labels() map[string]string {
	labels := make(map[string]string, len(d.Children))
	for _, child := range d.Children {
		labels[child.ID] = child.DisplayName()
	}
	return labels
}

// Options returns the grid options the document describes.
func (d *Document) Options() grid.Options {
	return grid.Options{Table: d.Table(), Gaps: d.Gaps(), UseGap: d.UseGap()}
}

// Scaling returns the pixel scale for terminal previews.
func (d *Document) Scaling() viewport.Scale {
	if d == nil {
		return viewport.NewScale(0)
	}
	return viewport.NewScale(d.Scale)
}

// UnknownBreakpoints lists references to breakpoint names missing from the
// table. The resolver ignores them; callers may want to warn.
func (d *Document) UnknownBreakpoints() []string {
	table := d.Table()
	missing := map[string]struct{}{}
	check := func(values map[string]int) {
		for name := range values {
			if _, ok := table.Lookup(grid.Name(name)); !ok {
				missing[name] = struct{}{}
			}
		}
	}

	check(d.Gap.Horizontal)
	check(d.Gap.Vertical)
	for _, child := range d.Children {
		check(child.Widths)
		check(child.Order)
	}

	out := make([]string, 0, len(missing))
	for name := range missing {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func toValues(in map[string]int) grid.Values[int] {
	if len(in) == 0 {
		return nil
	}
	out := make(grid.Values[int], len(in))
	for k, v := range in {
		out[grid.Name(k)] = v
	}
	return out
}
