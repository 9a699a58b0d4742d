// Package visibility holds the settled open/closed state of a drawer and fans
// changes out to observers.
package visibility

import (
	"slices"

	"github.com/google/uuid"
)

// Value is the settled visibility. It is replaced wholesale on every change.
type Value struct {
	Visible bool
}

// Subscription identifies one observer registration.
type Subscription string

type observer struct {
	id Subscription
	fn func(Value)
}

// State is an observable Value. Notification is synchronous and runs in
// subscription order before the mutating call returns.
type State struct {
	value     Value
	observers []observer
}

// New returns a State starting at the given visibility.
func New(visible bool) *State {
	return &State{value: Value{Visible: visible}}
}

// Value returns the latest value.
func (s *State) Value() Value {
	return s.value
}

// IsOpen reports whether the latest value is visible.
func (s *State) IsOpen() bool {
	return s.value.Visible
}

// Open sets the value to visible, notifying only on change.
func (s *State) Open() { s.set(Value{Visible: true}) }

// Close sets the value to hidden, notifying only on change.
func (s *State) Close() { s.set(Value{Visible: false}) }

// Toggle flips the value and always notifies.
func (s *State) Toggle() { s.set(Value{Visible: !s.value.Visible}) }

// Subscribe registers fn and returns an ID for Unsubscribe.
func (s *State) Subscribe(fn func(Value)) Subscription {
	id := Subscription(uuid.NewString())
	s.observers = append(s.observers, observer{id: id, fn: fn})
	return id
}

// Unsubscribe removes the observer. Unknown IDs are ignored.
func (s *State) Unsubscribe(id Subscription) {
	s.observers = slices.DeleteFunc(s.observers, func(o observer) bool { return o.id == id })
}

// Clear drops every observer.
func (s *State) Clear() {
	s.observers = nil
}

// Len reports the number of registered observers.
func (s *State) Len() int {
	return len(s.observers)
}

func (s *State) set(v Value) {
	if v == s.value {
		return
	}
	s.value = v
	// observers may unsubscribe while we iterate
	for _, o := range slices.Clone(s.observers) {
		o.fn(v)
	}
}
