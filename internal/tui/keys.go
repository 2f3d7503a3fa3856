package tui

import "github.com/charmbracelet/bubbles/key"

type todoKeyMap struct {
	Add, Toggle, Filter, NextFilter, Up, Down, Quit key.Binding
}

func newTodoKeyMap() todoKeyMap {
	return todoKeyMap{
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Filter:     key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "filter")),
		NextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k todoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Filter, k.NextFilter, k.Quit}
}

func (k todoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Toggle}, {k.Add, k.Filter, k.NextFilter, k.Quit}}
}

type counterKeyMap struct {
	Increment, Decrement, Quit key.Binding
}

func newCounterKeyMap() counterKeyMap {
	return counterKeyMap{
		Increment: key.NewBinding(key.WithKeys("+", "=", "k", "up"), key.WithHelp("+", "increment")),
		Decrement: key.NewBinding(key.WithKeys("-", "j", "down"), key.WithHelp("-", "decrement")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k counterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.Quit}
}

func (k counterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
