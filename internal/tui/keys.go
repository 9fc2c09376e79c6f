package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	toggleGap key.Binding
	order     key.Binding
	narrower  key.Binding
	wider     key.Binding
	reset     key.Binding
	help      key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		toggleGap: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "toggle gaps"),
		),
		order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "toggle order hints"),
		),
		narrower: key.NewBinding(
			key.WithKeys("[", "left", "h"),
			key.WithHelp("[", "narrower"),
		),
		wider: key.NewBinding(
			key.WithKeys("]", "right", "l"),
			key.WithHelp("]", "wider"),
		),
		reset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "terminal width"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.narrower, k.wider, k.toggleGap, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.narrower, k.wider, k.reset},
		{k.toggleGap, k.order},
		{k.help, k.quit},
	}
}
