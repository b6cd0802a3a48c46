package timeline

import (
	"sort"
	"time"

	"github.com/marcus/gcal/internal/models"
)

// Item is one row of the dense display sequence: a calendar day, the
// event shown on it (nil on empty days), and whether this day is the
// first day the event occurs on.
type Item struct {
	Date     Date
	Event    *models.Event
	FirstDay bool
}

// Timeline is an ordered sequence of Items with non-decreasing dates
// and no gaps: every day in [Start, End] appears at least once.
type Timeline struct {
	Items []Item
	Start Date
	End   Date
}

// Window returns the projection window for a reference date: three
// whole calendar years centered on the reference year. Fixed whole-year
// bounds keep week/month/year jumps inside the projected range.
func Window(ref Date) (Date, Date) {
	start := Date{Year: ref.Year - 1, Month: time.January, Day: 1}
	end := Date{Year: ref.Year + 1, Month: time.December, Day: 31}
	return start, end
}

type dayEntry struct {
	event    models.Event
	firstDay bool
}

// Project expands events into a dense Timeline around the reference
// date. Multi-day events produce one Item per day they span; days with
// no events produce a single Item with a nil Event.
func Project(events []models.Event, ref Date) Timeline {
	start, end := Window(ref)
	byDate := make(map[Date][]dayEntry)

	for _, e := range events {
		startDay := DateOf(e.Start)
		lastDay := startDay
		if multiDay(e) {
			// Per-day expansion covers floor(start) .. floor(end)-1; an
			// event ending exactly at midnight does not spill into the
			// next day.
			lastDay = DateOf(e.End).AddDays(-1)
		}

		for d := startDay; !d.After(lastDay); d = d.AddDays(1) {
			if d.Before(start) || d.After(end) {
				continue
			}
			byDate[d] = append(byDate[d], dayEntry{event: e, firstDay: d == startDay})
		}
	}

	tl := Timeline{Start: start, End: end}
	for d := start; !d.After(end); d = d.AddDays(1) {
		entries := byDate[d]
		if len(entries) == 0 {
			tl.Items = append(tl.Items, Item{Date: d})
			continue
		}
		// Ascending by event start; ties keep input order.
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].event.Start.Before(entries[j].event.Start)
		})
		for i := range entries {
			ev := entries[i].event
			tl.Items = append(tl.Items, Item{Date: d, Event: &ev, FirstDay: entries[i].firstDay})
		}
	}
	return tl
}

// multiDay reports whether an event spans more than one display day.
// An event whose start and end carry the same time-of-day exactly one
// day apart is a display-only marker and stays single-day.
func multiDay(e models.Event) bool {
	span := DateOf(e.Start).DaysUntil(DateOf(e.End))
	if span < 1 {
		return false
	}
	if span == 1 && sameClock(e.Start, e.End) {
		return false
	}
	return true
}

func sameClock(a, b time.Time) bool {
	ah, am, as := a.Clock()
	bh, bm, bs := b.Clock()
	return ah == bh && am == bm && as == bs
}
