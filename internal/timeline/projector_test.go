package timeline

import (
	"testing"
	"time"

	"github.com/marcus/gcal/internal/models"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func event(id, start, end string) models.Event {
	return models.Event{ID: id, Start: ts(start), End: ts(end), Summary: "Event " + id}
}

// itemsOn returns the items whose date matches d.
func itemsOn(tl Timeline, d Date) []Item {
	var out []Item
	for _, item := range tl.Items {
		if item.Date == d {
			out = append(out, item)
		}
	}
	return out
}

func TestProject_DenseWindow(t *testing.T) {
	ref := Date{Year: 2024, Month: time.June, Day: 15}
	tl := Project(nil, ref)

	wantStart := Date{Year: 2023, Month: time.January, Day: 1}
	wantEnd := Date{Year: 2025, Month: time.December, Day: 31}
	if tl.Start != wantStart || tl.End != wantEnd {
		t.Fatalf("window: [%s, %s], want [%s, %s]", tl.Start, tl.End, wantStart, wantEnd)
	}

	// 2023 + 2025 have 365 days, 2024 has 366.
	wantDays := 365 + 366 + 365
	if len(tl.Items) != wantDays {
		t.Fatalf("items: got %d, want %d", len(tl.Items), wantDays)
	}

	// No gaps, dates non-decreasing, empty days carry nil events.
	prev := tl.Start.AddDays(-1)
	for i, item := range tl.Items {
		if item.Date != prev.AddDays(1) {
			t.Fatalf("item %d: date %s does not follow %s", i, item.Date, prev)
		}
		prev = item.Date
		if item.Event != nil {
			t.Errorf("item %d: expected empty day, got event %s", i, item.Event.ID)
		}
	}
}

func TestProject_DenseWithEvents(t *testing.T) {
	ref := Date{Year: 2024, Month: time.January, Day: 1}
	events := []models.Event{
		event("a", "2024-01-01T09:00:00Z", "2024-01-01T10:00:00Z"),
		event("b", "2024-01-01T11:00:00Z", "2024-01-01T12:00:00Z"),
	}
	tl := Project(events, ref)

	wantDays := 365 + 366 + 365
	// Two events on one day add one extra item over the dense minimum.
	if len(tl.Items) != wantDays+1 {
		t.Fatalf("items: got %d, want %d", len(tl.Items), wantDays+1)
	}

	day := itemsOn(tl, Date{Year: 2024, Month: time.January, Day: 1})
	if len(day) != 2 {
		t.Fatalf("jan 1 items: got %d, want 2", len(day))
	}
	if day[0].Event.ID != "a" || day[1].Event.ID != "b" {
		t.Errorf("order: got [%s %s], want [a b]", day[0].Event.ID, day[1].Event.ID)
	}
}

func TestProject_MultiDayExpansion(t *testing.T) {
	ref := Date{Year: 2024, Month: time.March, Day: 1}
	events := []models.Event{event("trip", "2024-03-10T00:00:00Z", "2024-03-13T00:00:00Z")}
	tl := Project(events, ref)

	for day := 10; day <= 12; day++ {
		d := Date{Year: 2024, Month: time.March, Day: day}
		items := itemsOn(tl, d)
		if len(items) != 1 || items[0].Event == nil {
			t.Fatalf("%s: expected one event item", d)
		}
		wantFirst := day == 10
		if items[0].FirstDay != wantFirst {
			t.Errorf("%s: FirstDay=%v, want %v", d, items[0].FirstDay, wantFirst)
		}
	}

	// floor(end) itself gets no item for this event.
	last := itemsOn(tl, Date{Year: 2024, Month: time.March, Day: 13})
	if len(last) != 1 || last[0].Event != nil {
		t.Errorf("2024-03-13 should be an empty day, got %+v", last)
	}
}

func TestProject_MidnightEndDoesNotSpill(t *testing.T) {
	ref := Date{Year: 2024, Month: time.March, Day: 1}
	events := []models.Event{event("late", "2024-03-10T20:00:00Z", "2024-03-11T00:00:00Z")}
	tl := Project(events, ref)

	if items := itemsOn(tl, Date{Year: 2024, Month: time.March, Day: 10}); len(items) != 1 || items[0].Event == nil {
		t.Fatal("2024-03-10 should carry the event")
	}
	if items := itemsOn(tl, Date{Year: 2024, Month: time.March, Day: 11}); len(items) != 1 || items[0].Event != nil {
		t.Error("2024-03-11 should stay empty for a midnight-ending event")
	}
}

func TestProject_ZeroDurationMarker(t *testing.T) {
	ref := Date{Year: 2024, Month: time.March, Day: 1}
	events := []models.Event{event("marker", "2024-03-10T09:00:00Z", "2024-03-10T09:00:00Z")}
	tl := Project(events, ref)

	items := itemsOn(tl, Date{Year: 2024, Month: time.March, Day: 10})
	if len(items) != 1 || items[0].Event == nil || !items[0].FirstDay {
		t.Errorf("zero-duration event should occupy exactly its day: %+v", items)
	}
}

func TestProject_SameClockOneDaySpanStaysSingle(t *testing.T) {
	ref := Date{Year: 2024, Month: time.March, Day: 1}
	events := []models.Event{event("marker", "2024-03-10T09:00:00Z", "2024-03-11T09:00:00Z")}
	tl := Project(events, ref)

	if items := itemsOn(tl, Date{Year: 2024, Month: time.March, Day: 10}); len(items) != 1 || items[0].Event == nil {
		t.Fatal("2024-03-10 should carry the marker")
	}
	if items := itemsOn(tl, Date{Year: 2024, Month: time.March, Day: 11}); len(items) != 1 || items[0].Event != nil {
		t.Error("same-clock one-day marker must not expand to the second day")
	}
}

func TestProject_StableOrderForSameStart(t *testing.T) {
	ref := Date{Year: 2024, Month: time.March, Day: 1}
	events := []models.Event{
		event("first", "2024-03-10T09:00:00Z", "2024-03-10T10:00:00Z"),
		event("second", "2024-03-10T09:00:00Z", "2024-03-10T11:00:00Z"),
	}
	tl := Project(events, ref)

	items := itemsOn(tl, Date{Year: 2024, Month: time.March, Day: 10})
	if len(items) != 2 {
		t.Fatalf("items: got %d, want 2", len(items))
	}
	if items[0].Event.ID != "first" || items[1].Event.ID != "second" {
		t.Errorf("tie order: got [%s %s], want input order", items[0].Event.ID, items[1].Event.ID)
	}
}

func TestProject_EventsOutsideWindowIgnored(t *testing.T) {
	ref := Date{Year: 2024, Month: time.June, Day: 1}
	events := []models.Event{
		event("past", "2020-01-01T09:00:00Z", "2020-01-01T10:00:00Z"),
		event("future", "2030-01-01T09:00:00Z", "2030-01-01T10:00:00Z"),
	}
	tl := Project(events, ref)

	for _, item := range tl.Items {
		if item.Event != nil {
			t.Fatalf("out-of-window event leaked into projection: %s", item.Event.ID)
		}
	}
}

func TestProject_MultiDaySpanClipsToWindow(t *testing.T) {
	ref := Date{Year: 2024, Month: time.January, Day: 1}
	// Starts before the window, runs into it.
	events := []models.Event{event("span", "2022-12-30T00:00:00Z", "2023-01-03T00:00:00Z")}
	tl := Project(events, ref)

	first := tl.Items[0]
	if first.Date != tl.Start || first.Event == nil {
		t.Fatalf("window start should carry the clipped span: %+v", first)
	}
	if first.FirstDay {
		t.Error("clipped continuation day must not claim FirstDay")
	}
}

// The end-to-end scenario: one event, projected, located.
func TestProject_StandupScenario(t *testing.T) {
	events := []models.Event{{
		ID:      "a",
		Start:   ts("2024-01-01T09:00:00Z"),
		End:     ts("2024-01-01T10:00:00Z"),
		Summary: "Standup",
	}}
	ref := Date{Year: 2024, Month: time.January, Day: 1}
	tl := Project(events, ref)

	if tl.Start.Year != 2023 || tl.End.Year != 2025 {
		t.Fatalf("window years: [%d, %d], want [2023, 2025]", tl.Start.Year, tl.End.Year)
	}

	target := Date{Year: 2024, Month: time.January, Day: 1}
	pos := NewIndex(tl).Locate(target)
	item := tl.Items[pos]
	if item.Date != target {
		t.Fatalf("located date %s, want %s", item.Date, target)
	}
	if item.Event == nil || item.Event.Summary != "Standup" {
		t.Errorf("located item: %+v, want Standup", item)
	}
}
