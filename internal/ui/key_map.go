package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	submit      key.Binding
	next        key.Binding
	prev        key.Binding
	toggle      key.Binding
	clearSel    key.Binding
	generate    key.Binding
	reload      key.Binding
	logout      key.Binding
	reveal      key.Binding
	another     key.Binding
	updateToken key.Binding
	retry       key.Binding
	quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "connect")),
		next:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		prev:        key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		toggle:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "toggle genre")),
		clearSel:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear genres")),
		generate:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),
		reload:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload genres")),
		logout:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "log out")),
		reveal:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "show/hide token")),
		another:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "create another")),
		updateToken: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "update token")),
		retry:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "try again")),
		quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.next, k.prev, k.toggle},
		{k.generate, k.reload, k.clearSel},
		{k.logout, k.quit},
	}
}
