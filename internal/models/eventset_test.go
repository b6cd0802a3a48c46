package models

import (
	"testing"
)

func TestEventSetReplaceSortsByStart(t *testing.T) {
	set := NewEventSet([]Event{
		{ID: "late", Start: ts("2024-06-15T12:00:00Z"), End: ts("2024-06-15T13:00:00Z")},
		{ID: "early", Start: ts("2024-06-15T08:00:00Z"), End: ts("2024-06-15T09:00:00Z")},
	})

	got := set.Current()
	if len(got) != 2 {
		t.Fatalf("len: got %d, want 2", len(got))
	}
	if got[0].ID != "early" || got[1].ID != "late" {
		t.Errorf("order: got [%s %s], want [early late]", got[0].ID, got[1].ID)
	}
}

func TestEventSetCurrentIsACopy(t *testing.T) {
	set := NewEventSet([]Event{
		{ID: "a", Start: ts("2024-06-15T09:00:00Z"), End: ts("2024-06-15T10:00:00Z")},
	})

	got := set.Current()
	got[0].ID = "mutated"

	if again := set.Current(); again[0].ID != "a" {
		t.Error("mutating the returned slice leaked into the set")
	}
}

func TestEventSetReplaceDoesNotRetainInput(t *testing.T) {
	input := []Event{
		{ID: "a", Start: ts("2024-06-15T09:00:00Z"), End: ts("2024-06-15T10:00:00Z")},
	}
	set := NewEventSet(input)
	input[0].ID = "mutated"

	if got := set.Current(); got[0].ID != "a" {
		t.Error("set retained the caller's slice")
	}
}

func TestEventSetFilter(t *testing.T) {
	set := NewEventSet([]Event{
		{ID: "a", Summary: "Standup", Start: ts("2024-06-15T09:00:00Z"), End: ts("2024-06-15T10:00:00Z")},
		{ID: "b", Summary: "Planning", Start: ts("2024-06-15T11:00:00Z"), End: ts("2024-06-15T12:00:00Z")},
	})

	got := set.Filter(func(e Event) bool { return e.Matches("stand") })
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("filter: got %v, want only a", got)
	}

	if all := set.Filter(func(Event) bool { return true }); len(all) != set.Len() {
		t.Errorf("identity filter: got %d, want %d", len(all), set.Len())
	}
}
