// Package redux is a minimal reducer-based state container.
//
// A Store holds a single state value. Every Dispatch replaces that value with
// reducer(state, action) and then notifies the subscribed listeners. State is
// treated as immutable: reducers return new values and share the parts they
// did not change, so GetState can hand out the current value without copying.
//
// The store is synchronous and single-threaded. Dispatch runs the reducer and
// every listener before it returns; callers dispatch from one goroutine (for
// a Bubble Tea program, the Update loop).
package redux

// Action describes a state change request. Concrete actions are small value
// types; Type is their discriminator and is what middleware logs.
type Action interface {
	Type() string
}

// Init is dispatched once by NewStore so reducers can return their defaults.
type Init struct{}

func (Init) Type() string { return "@@redux/INIT" }

// Reducer computes the next state. It must not fail and must return state
// unchanged for actions it does not recognise.
type Reducer[S any] func(state S, action Action) S

// Listener is notified after every dispatch.
type Listener interface {
	StateChanged()
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func()

func (f ListenerFunc) StateChanged() { f() }

// subscription gives each Subscribe call its own identity, so the same
// listener subscribed twice is removed one subscription at a time.
type subscription struct {
	l Listener
}

// Store pairs the current state with dispatch and subscribe.
type Store[S any] struct {
	reducer  Reducer[S]
	state    S
	dispatch DispatchFunc

	// Replaced wholesale on subscribe/unsubscribe, never written in place.
	// A dispatch that already read the slice keeps notifying that snapshot.
	listeners []*subscription
}

// NewStore creates a store for reducer and dispatches Init to establish the
// initial state.
func NewStore[S any](reducer Reducer[S], opts ...Option) *Store[S] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	s := &Store[S]{reducer: reducer}
	s.dispatch = s.base
	for i := len(o.middleware) - 1; i >= 0; i-- {
		s.dispatch = o.middleware[i](s.dispatch)
	}
	s.Dispatch(Init{})
	return s
}

// Dispatch applies the reducer to the current state and notifies listeners.
func (s *Store[S]) Dispatch(action Action) {
	s.dispatch(action)
}

func (s *Store[S]) base(action Action) {
	s.state = s.reducer(s.state, action)
	for _, sub := range s.listeners {
		sub.l.StateChanged()
	}
}

// GetState returns the current state. Callers must not mutate it.
func (s *Store[S]) GetState() S {
	return s.state
}

// Subscribe registers l and returns a function that removes exactly this
// subscription. Calling the returned function more than once is a no-op.
func (s *Store[S]) Subscribe(l Listener) (unsubscribe func()) {
	sub := &subscription{l: l}
	next := make([]*subscription, len(s.listeners), len(s.listeners)+1)
	copy(next, s.listeners)
	s.listeners = append(next, sub)

	return func() {
		for i, x := range s.listeners {
			if x != sub {
				continue
			}
			next := make([]*subscription, 0, len(s.listeners)-1)
			next = append(next, s.listeners[:i]...)
			s.listeners = append(next, s.listeners[i+1:]...)
			return
		}
	}
}
