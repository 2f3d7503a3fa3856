package redux

import "fmt"

// Part is one named slice of a combined state, built by Key.
type Part[S any] interface {
	Name() string
	reduce(dst *S, src S, action Action)
}

type keyed[S, T any] struct {
	name    string
	get     func(S) T
	set     func(*S, T)
	reducer Reducer[T]
}

func (k keyed[S, T]) Name() string { return k.name }

func (k keyed[S, T]) reduce(dst *S, src S, action Action) {
	k.set(dst, k.reducer(k.get(src), action))
}

// Key binds reducer to the slice of S that get reads and set writes.
func Key[S, T any](name string, get func(S) T, set func(*S, T), reducer Reducer[T]) Part[S] {
	return keyed[S, T]{name: name, get: get, set: set, reducer: reducer}
}

// Combine builds a root reducer that hands each part its own slice of the
// state and reassembles the results into a copy of the state. Every part
// sees the state as it was before the action. Duplicate names panic.
func Combine[S any](parts ...Part[S]) Reducer[S] {
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		if seen[p.Name()] {
			panic(fmt.Sprintf("redux: duplicate reducer key %q", p.Name()))
		}
		seen[p.Name()] = true
	}
	return func(state S, action Action) S {
		next := state
		for _, p := range parts {
			p.reduce(&next, state, action)
		}
		return next
	}
}
