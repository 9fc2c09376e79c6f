package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gridkit/internal/viewport"
)

// Theme holds the styling the terminal preview draws cells with.
type Theme struct {
	Name        string
	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor
	Accent      lipgloss.TerminalColor
	Muted       lipgloss.TerminalColor
	Title       lipgloss.Style
	Label       lipgloss.Style
	Detail      lipgloss.Style
}

// Names of the bundled themes.
const (
	NameDefault = "default"
	NameMono    = "mono"
)

// Default returns the bundled colour theme.
func Default() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	accent := ac("#2563eb", "#60a5fa")
	muted := ac("#64748b", "#94a3b8")
	return Theme{
		Name:        NameDefault,
		Border:      lipgloss.RoundedBorder(),
		BorderColor: ac("#cbd5e1", "#475569"),
		Accent:      accent,
		Muted:       muted,
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		Label:       lipgloss.NewStyle().Bold(true),
		Detail:      lipgloss.NewStyle().Foreground(muted),
	}
}

// Mono returns a theme without colours for plain terminals.
func Mono() Theme {
	return Theme{
		Name:        NameMono,
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.NoColor{},
		Accent:      lipgloss.NoColor{},
		Muted:       lipgloss.NoColor{},
		Title:       lipgloss.NewStyle().Bold(true),
		Label:       lipgloss.NewStyle(),
		Detail:      lipgloss.NewStyle().Faint(true),
	}
}

// ByName returns a bundled theme, falling back to Default for unknown names.
func ByName(name string) Theme {
	switch name {
	case NameMono:
		return Mono()
	default:
		return Default()
	}
}

// Provider hands the ambient theme and the viewport observer to consumers.
type Provider struct {
	mu       sync.RWMutex
	theme    Setting[Theme]
	observer *viewport.Observer
}

// NewProvider creates a provider. A nil observer gets a fresh one.
func NewProvider(t Setting[Theme], observer *viewport.Observer) *Provider {
	if observer == nil {
		observer = viewport.NewObserver(nil)
	}
	return &Provider{theme: t, observer: observer}
}

// Theme returns the ambient theme or the built-in default.
func (p *Provider) Theme() Theme {
	if p == nil {
		return Default()
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme.Or(Default())
}

// SetTheme replaces the ambient theme.
func (p *Provider) SetTheme(t Theme) {
	p.mu.Lock()
	p.theme = Some(t)
	p.mu.Unlock()
}

// Observer returns the viewport observer.
func (p *Provider) Observer() *viewport.Observer {
	return p.observer
}

// Viewport returns the current viewport measurement.
func (p *Provider) Viewport() (viewport.Size, bool) {
	return p.observer.Size()
}

// Overrides are per-cell explicit settings that beat the ambient theme.
type Overrides struct {
	Border      Setting[lipgloss.Border]
	BorderColor Setting[lipgloss.TerminalColor]
	Label       Setting[lipgloss.Style]
}

func (p *Provider) ambient() Setting[Theme] {
	if p == nil {
		return None[Theme]()
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

// CellStyle returns the box style for one cell.
func (p *Provider) CellStyle(o Overrides) lipgloss.Style {
	ambient := p.ambient()
	builtin := Default()

	border := Resolve(o.Border, Map(ambient, func(t Theme) lipgloss.Border { return t.Border }), builtin.Border)
	color := Resolve(o.BorderColor, Map(ambient, func(t Theme) lipgloss.TerminalColor { return t.BorderColor }), builtin.BorderColor)
	return lipgloss.NewStyle().Border(border).BorderForeground(color)
}

// LabelStyle returns the style used for a cell's label.
func (p *Provider) LabelStyle(o Overrides) lipgloss.Style {
	return Resolve(o.Label, Map(p.ambient(), func(t Theme) lipgloss.Style { return t.Label }), Default().Label)
}
