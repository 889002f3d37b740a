package router

import (
	"errors"
	"fmt"
)

var (
	// ErrExit is returned by a ScreenFunc to stop Run without error.
	ErrExit = errors.New("router: exit")

	// ErrNothingToPop is returned by GoBack when every navigator is at its root.
	ErrNothingToPop = errors.New("router: nothing to go back to")

	// ErrEmpty is returned by operations that need a focused route when none is open.
	ErrEmpty = errors.New("router: no route open")
)

// UnknownRouteError is returned when a request names a route no navigator registered.
type UnknownRouteError struct {
	Name string
}

func (e *UnknownRouteError) Error() string {
	return fmt.Sprintf("router: route %q not registered", e.Name)
}

// NotNavigatorError is returned when a nested request targets a plain screen.
type NotNavigatorError struct {
	Name string
}

func (e *NotNavigatorError) Error() string {
	return fmt.Sprintf("router: route %q is not a navigator", e.Name)
}

// UnknownActionError is returned by Dispatch for action types the router does not handle.
type UnknownActionError struct {
	Type string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("router: unhandled action %q", e.Type)
}
