package nav

import (
	"reflect"
	"sync"
)

// Scope is the ambient navigation context an enclosing view tree provides to
// everything rendered inside it. The host refreshes it between renders with
// Provide; consumers read it with Facade.
//
// Facade returns the same *Facade for as long as the provided host and route
// state are unchanged, so callers may key memoized work on its identity.
type Scope struct {
	mu     sync.Mutex
	host   Host
	state  RouteState
	opts   []Option
	facade *Facade
}

// NewScope returns a scope over host and state. opts are applied to every
// facade the scope binds.
func NewScope(host Host, state RouteState, opts ...Option) *Scope {
	return &Scope{host: host, state: state, opts: opts}
}

// Provide updates the ambient host and route state. Passing the same handles
// again keeps the current facade.
func (s *Scope) Provide(host Host, state RouteState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sameHandle(s.host, host) && sameHandle(s.state, state) {
		return
	}
	s.host = host
	s.state = state
	s.facade = nil
}

// Facade returns the facade bound to the current ambient context, binding a
// new one only when the context changed since the last call.
func (s *Scope) Facade() *Facade {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.facade == nil {
		s.facade = Bind(s.host, s.state, s.opts...)
	}
	return s.facade
}

// sameHandle compares two handles by identity. Maps compare by their
// underlying table; other values whose dynamic type is not comparable are
// never considered the same.
func sameHandle(a, b any) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if reflect.TypeOf(a).Kind() == reflect.Map {
		return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
	}
	if !reflect.TypeOf(a).Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
