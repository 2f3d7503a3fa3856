// Package todo holds the todo list domain: items, actions and the reducers
// that combine into the application's root reducer.
package todo

import "github.com/barbgs/redux-todo/internal/redux"

// State is the whole todo application state.
type State struct {
	Todos            List
	VisibilityFilter Filter
}

// Reduce is the root reducer for State.
var Reduce = redux.Combine(
	redux.Key("todos",
		func(s State) List { return s.Todos },
		func(s *State, l List) { s.Todos = l },
		Todos),
	redux.Key("visibilityFilter",
		func(s State) Filter { return s.VisibilityFilter },
		func(s *State, f Filter) { s.VisibilityFilter = f },
		VisibilityFilter),
)

// Todos reduces the todo list.
func Todos(state List, action redux.Action) List {
	switch a := action.(type) {
	case AddTodo:
		next := make(List, len(state), len(state)+1)
		copy(next, state)
		return append(next, &Item{ID: a.ID, Text: a.Text})
	case ToggleTodo:
		next := make(List, len(state))
		for i, it := range state {
			next[i] = item(it, a)
		}
		return next
	default:
		return state
	}
}

// item reduces a single existing item.
func item(state *Item, action redux.Action) *Item {
	switch a := action.(type) {
	case ToggleTodo:
		if state.ID != a.ID {
			return state
		}
		toggled := *state
		toggled.Completed = !toggled.Completed
		return &toggled
	default:
		return state
	}
}

// VisibilityFilter reduces the filter. The zero state is ShowAll.
func VisibilityFilter(state Filter, action redux.Action) Filter {
	switch a := action.(type) {
	case SetVisibilityFilter:
		return a.Filter
	default:
		return state
	}
}
