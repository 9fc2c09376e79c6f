package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gridkit/internal/render"
	"github.com/alexisbeaulieu97/gridkit/pkg/diff"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.Width = msg.Width
		if m.Columns() < widthStep {
			m.shrink = 0
		}
		m.pushViewport()
		return m, nil

	case LayoutReloadedMsg:
		if msg.Document == nil {
			return m, nil
		}
		before, measured := m.engine.Layout()
		m.applyDocument(msg.Document)
		m.status = fmt.Sprintf("reloaded %s", msg.Document.Name)
		if after, ok := m.engine.Layout(); ok && measured {
			_, stats := diff.Lines(render.Summary(before), render.Summary(after))
			m.status += fmt.Sprintf(" (+%d -%d)", stats.Added, stats.Removed)
		}
		m.log.With("layout", msg.Document.Name).Info("layout reloaded")
		return m, nil

	case ReloadFailedMsg:
		m.status = fmt.Sprintf("reload failed: %v", msg.Err)
		m.log.Error(msg.Err, "layout reload failed")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.toggleGap):
		m.engine.SetUseGap(!m.engine.UseGap())

	case key.Matches(msg, m.keys.order):
		m.ordered = !m.ordered

	case key.Matches(msg, m.keys.narrower):
		if m.termWidth-m.shrink-widthStep >= 1 {
			m.shrink += widthStep
			m.pushViewport()
		}

	case key.Matches(msg, m.keys.wider):
		m.shrink = max(m.shrink-widthStep, 0)
		m.pushViewport()

	case key.Matches(msg, m.keys.reset):
		m.shrink = 0
		m.pushViewport()

	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}
