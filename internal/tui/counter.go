package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/barbgs/redux-todo/internal/counter"
	"github.com/barbgs/redux-todo/internal/redux"
	"github.com/barbgs/redux-todo/internal/ui"
)

type counterView struct {
	state func() int
	value string
}

func (v *counterView) StateChanged() { v.value = strconv.Itoa(v.state()) }

// CounterModel shows a number with increment and decrement keys.
type CounterModel struct {
	store       *redux.Store[int]
	view        *counterView
	unsubscribe func()

	keys   counterKeyMap
	help   help.Model
	styles ui.Styles
}

func NewCounterModel(store *redux.Store[int]) CounterModel {
	v := &counterView{state: store.GetState}
	m := CounterModel{
		store:  store,
		view:   v,
		keys:   newCounterKeyMap(),
		help:   help.New(),
		styles: ui.CurrentStyles(),
	}
	m.unsubscribe = store.Subscribe(v)
	v.StateChanged()
	return m
}

func (m CounterModel) Close() { m.unsubscribe() }

func (m CounterModel) Init() tea.Cmd { return nil }

func (m CounterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Increment):
		m.store.Dispatch(counter.Increment{})
	case key.Matches(km, m.keys.Decrement):
		m.store.Dispatch(counter.Decrement{})
	}
	return m, nil
}

func (m CounterModel) View() string {
	value := m.styles.Title.Render(m.view.value)
	return m.styles.Border.Render(value+"\n\n"+m.help.View(m.keys))
}
