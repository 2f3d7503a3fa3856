package tui

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/barbgs/redux-todo/internal/counter"
	"github.com/barbgs/redux-todo/internal/redux"
	"github.com/barbgs/redux-todo/internal/todo"
)

// Options configure the interactive programs.
type Options struct {
	Filter todo.Filter // initial visibility filter
	Logger *log.Logger // store action log; nil discards
}

func (o Options) middleware() redux.Option {
	l := o.Logger
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	return redux.WithMiddleware(redux.Logger(l))
}

// NewTodoStore creates the todo application store with the initial filter
// applied.
func NewTodoStore(opt Options) *redux.Store[todo.State] {
	s := redux.NewStore(todo.Reduce, opt.middleware())
	if opt.Filter != todo.ShowAll {
		s.Dispatch(todo.Show(opt.Filter))
	}
	return s
}

// RunTodos runs the interactive todo list until the user quits.
func RunTodos(opt Options) error {
	var ids todo.IDAllocator
	m := NewTodoModel(NewTodoStore(opt), &ids)
	defer m.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// RunCounter runs the interactive counter until the user quits.
func RunCounter(opt Options) error {
	m := NewCounterModel(redux.NewStore(counter.Reduce, opt.middleware()))
	defer m.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
