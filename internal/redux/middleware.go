package redux

import "log"

// DispatchFunc is the dispatch step a Middleware wraps.
type DispatchFunc func(Action)

// Middleware wraps dispatch. It may inspect the action, call next zero or
// more times, or act after next returns (when listeners have already run).
type Middleware func(next DispatchFunc) DispatchFunc

// Option configures a Store.
type Option func(*options)

type options struct {
	middleware []Middleware
}

// WithMiddleware installs middleware. The first one given is outermost and
// sees the action first. Init is dispatched through the chain too.
func WithMiddleware(mw ...Middleware) Option {
	return func(o *options) {
		o.middleware = append(o.middleware, mw...)
	}
}

// Logger logs every action before it reaches the reducer, and again once its
// listeners have run.
func Logger(l *log.Logger) Middleware {
	return func(next DispatchFunc) DispatchFunc {
		return func(a Action) {
			l.Printf("dispatch %s", typeOf(a))
			next(a)
			l.Printf("state %s changed", typeOf(a))
		}
	}
}

// typeOf is a.Type(), tolerating a nil action.
func typeOf(a Action) string {
	if a == nil {
		return "<nil>"
	}
	return a.Type()
}
