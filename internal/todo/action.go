package todo

import "github.com/barbgs/redux-todo/internal/redux"

// AddTodo appends a new, not yet completed item.
type AddTodo struct {
	ID   int
	Text string
}

func (AddTodo) Type() string { return "ADD_TODO" }

// ToggleTodo flips Completed on the item with ID.
type ToggleTodo struct {
	ID int
}

func (ToggleTodo) Type() string { return "TOGGLE_TODO" }

// SetVisibilityFilter replaces the current filter.
type SetVisibilityFilter struct {
	Filter Filter
}

func (SetVisibilityFilter) Type() string { return "SET_VISIBILITY_FILTER" }

// IDAllocator hands out todo ids, starting at 0. Whoever creates AddTodo
// actions owns one; there is no package-level counter.
type IDAllocator struct {
	next int
}

// Next returns a fresh id.
func (a *IDAllocator) Next() int {
	id := a.next
	a.next++
	return id
}

// Add builds an AddTodo with the next id from ids.
func Add(ids *IDAllocator, text string) redux.Action {
	return AddTodo{ID: ids.Next(), Text: text}
}

// Toggle flips the completed flag of the todo with the given id.
func Toggle(id int) redux.Action { return ToggleTodo{ID: id} }

// Show selects which todos are visible.
func Show(f Filter) redux.Action { return SetVisibilityFilter{Filter: f} }
