// Package counter is the smallest reducer: an integer that goes up and down.
package counter

import "github.com/barbgs/redux-todo/internal/redux"

// Increment adds one to the counter.
type Increment struct{}

func (Increment) Type() string { return "INCREMENT" }

// Decrement subtracts one from the counter.
type Decrement struct{}

func (Decrement) Type() string { return "DECREMENT" }

// Reduce is the counter reducer. The zero state is 0.
func Reduce(state int, action redux.Action) int {
	switch action.(type) {
	case Increment:
		return state + 1
	case Decrement:
		return state - 1
	default:
		return state
	}
}
