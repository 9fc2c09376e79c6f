package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gridkit/internal/config"
	"github.com/alexisbeaulieu97/gridkit/internal/grid"
	"github.com/alexisbeaulieu97/gridkit/internal/logger"
	"github.com/alexisbeaulieu97/gridkit/internal/theme"
	"github.com/alexisbeaulieu97/gridkit/internal/viewport"
)

// widthStep is how many terminal columns one narrower/wider key press moves.
const widthStep = 4

// LayoutReloadedMsg replaces the document being previewed.
type LayoutReloadedMsg struct {
	Document *config.Document
}

// ReloadFailedMsg reports a document that could not be reloaded. The
// previous layout stays on screen.
type ReloadFailedMsg struct {
	Err error
}

// Model is the Bubbletea state for the layout preview.
type Model struct {
	doc      *config.Document
	engine   *grid.Engine
	observer *viewport.Observer
	provider *theme.Provider
	scale    viewport.Scale
	log      *logger.Logger

	keys keyMap
	help help.Model

	termWidth  int
	termHeight int
	shrink     int
	ordered    bool
	status     string
	quitting   bool
}

// NewModel wires an engine for doc to the provider's viewport observer.
func NewModel(doc *config.Document, provider *theme.Provider, log *logger.Logger) Model {
	if provider == nil {
		provider = theme.NewProvider(theme.Some(theme.ByName(doc.Theme)), nil)
	}
	engine := grid.NewEngine(doc.ChildSpecs(), doc.Options(), log)
	engine.Attach(provider.Observer())

	return Model{
		doc:      doc,
		engine:   engine,
		observer: provider.Observer(),
		provider: provider,
		scale:    doc.Scaling(),
		log:      log,
		keys:     newKeyMap(),
		help:     help.New(),
		ordered:  true,
	}
}

// Init starts the Bubbletea program. The first WindowSizeMsg drives the
// initial layout.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close detaches the engine from the viewport observer.
func (m Model) Close() {
	m.engine.Close()
}

// Layout returns the current layout and whether one has been computed.
func (m Model) Layout() (grid.Layout, bool) {
	return m.engine.Layout()
}

// Columns returns the simulated viewport width in terminal columns.
func (m Model) Columns() int {
	return max(m.termWidth-m.shrink, 1)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) pushViewport() {
	if m.termWidth <= 0 {
		return
	}
	size := m.scale.ToPixels(m.Columns(), m.termHeight)
	m.observer.Update(size.Width, size.Height)
}

func (m *Model) applyDocument(doc *config.Document) {
	m.doc = doc
	m.scale = doc.Scaling()
	m.provider.SetTheme(theme.ByName(doc.Theme))
	m.engine.SetChildren(doc.ChildSpecs())
	m.engine.SetOptions(doc.Options())
	m.pushViewport()
}
