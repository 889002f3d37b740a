package router

import "github.com/waypoint-nav/waypoint/pkg/waypoint/route"

// Entry represents a single route instance in a navigator's stack.
// Child is set when the route is itself a nested navigator.
type Entry struct {
	Name   string
	Key    string
	Params route.Params
	Child  *Router
}

// Stack holds the route instances of one navigator, oldest first.
type Stack struct {
	entries []Entry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Entry, 0),
	}
}

// Push adds a new entry on top of the stack.
func (s *Stack) Push(e Entry) {
	s.entries = append(s.entries, e)
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// ReplaceTop swaps the top entry for e, or pushes e onto an empty stack.
func (s *Stack) ReplaceTop(e Entry) {
	if len(s.entries) == 0 {
		s.entries = append(s.entries, e)
		return
	}
	s.entries[len(s.entries)-1] = e
}

// IndexOf returns the position of the newest entry named name, or -1.
// A non-empty key must match as well.
func (s *Stack) IndexOf(name, key string) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.Name == name && (key == "" || e.Key == key) {
			return i
		}
	}
	return -1
}

// Truncate drops every entry above the first n.
func (s *Stack) Truncate(n int) {
	if n < len(s.entries) {
		s.entries = s.entries[:n]
	}
}

// At returns the entry at position i, oldest first.
func (s *Stack) At(i int) *Entry {
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	return &s.entries[i]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
