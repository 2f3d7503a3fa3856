package counter

import (
	"testing"

	"github.com/barbgs/redux-todo/internal/redux"
)

type somethingElse struct{}

func (somethingElse) Type() string { return "SOMETHING_ELSE" }

func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		state  int
		action redux.Action
		want   int
	}{
		{"increment from 0", 0, Increment{}, 1},
		{"increment from 1", 1, Increment{}, 2},
		{"decrement from 2", 2, Decrement{}, 1},
		{"decrement from 1", 1, Decrement{}, 0},
		{"decrement below 0", 0, Decrement{}, -1},
		{"unknown action", 5, somethingElse{}, 5},
		{"nil action", 3, nil, 3},
		{"zero state unknown action", 0, somethingElse{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reduce(tt.state, tt.action); got != tt.want {
				t.Errorf("Reduce(%d, %T) = %d, want %d", tt.state, tt.action, got, tt.want)
			}
		})
	}
}

func TestStoreInitialState(t *testing.T) {
	s := redux.NewStore(Reduce)
	if got := s.GetState(); got != 0 {
		t.Errorf("expected initial state 0, got %d", got)
	}
	s.Dispatch(Increment{})
	s.Dispatch(Increment{})
	s.Dispatch(Decrement{})
	if got := s.GetState(); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}
