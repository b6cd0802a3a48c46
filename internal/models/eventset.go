package models

import (
	"sort"
	"sync"
)

// EventSet is the owned mutable container for the in-memory event
// collection the UI projects from. Callers never alias the internal
// slice; Replace swaps the whole contents and Current returns a copy,
// so update timing is always explicit.
type EventSet struct {
	mu     sync.Mutex
	events []Event
}

// NewEventSet creates an EventSet seeded with the given events.
func NewEventSet(events []Event) *EventSet {
	s := &EventSet{}
	s.Replace(events)
	return s
}

// Replace swaps the full contents of the set, sorted ascending by start.
// The input slice is copied, not retained.
func (s *EventSet) Replace(events []Event) {
	cp := make([]Event, len(events))
	copy(cp, events)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].Start.Before(cp[j].Start) })

	s.mu.Lock()
	s.events = cp
	s.mu.Unlock()
}

// Current returns a copy of the set's contents in start order.
func (s *EventSet) Current() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]Event, len(s.events))
	copy(cp, s.events)
	return cp
}

// Filter returns the events matching pred, in start order.
func (s *EventSet) Filter(pred func(Event) bool) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Event
	for _, e := range s.events {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of events in the set.
func (s *EventSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
