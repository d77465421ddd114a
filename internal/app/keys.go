package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start    key.Binding
	Stop     key.Binding
	Restart  key.Binding
	Shape    key.Binding
	Next     key.Binding
	Prev     key.Binding
	Select   key.Binding
	Favorite key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Start:    key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "start")),
	Stop:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
	Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Shape:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "shape")),
	Next:     key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next")),
	Prev:     key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "prev")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "use preset")),
	Favorite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Restart, k.Shape, k.Select, k.Favorite, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Stop, k.Restart, k.Shape},
		{k.Next, k.Prev, k.Select, k.Favorite, k.Quit},
	}
}
