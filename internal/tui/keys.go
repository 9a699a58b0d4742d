package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle key.Binding
	Open   key.Binding
	Close  key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys("tab", "m"), key.WithHelp("tab", "menu")),
		Open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		Close:  key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("esc", "close")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "select")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Toggle, k.Up, k.Select, k.Close, k.Quit}
}
