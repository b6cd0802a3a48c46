package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedDate marks an event whose timestamps cannot be trusted
// (end before start). Such events are rejected, not stored.
var ErrMalformedDate = errors.New("malformed event dates")

// Calendar represents one remote calendar mirrored into the local cache.
// SyncToken is the opaque incremental-fetch cursor issued by the remote
// service; empty means the calendar has never been synced and the next
// cycle must do a full fetch.
type Calendar struct {
	ID         string `json:"id"`
	Summary    string `json:"summary"`
	Subscribed bool   `json:"subscribed"`
	SyncToken  string `json:"sync_token,omitempty"`
}

// Event represents a single concrete event occurrence. Recurring events
// are expanded by the remote service before they reach this model.
type Event struct {
	ID           string    `json:"id"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Summary      string    `json:"summary"`
	Description  string    `json:"description,omitempty"`
	CalendarID   string    `json:"calendar_id"`
	CalendarName string    `json:"calendar_name"`
}

// Validate checks the event's timestamp invariant (start <= end).
func (e Event) Validate() error {
	if e.Start.IsZero() || e.End.IsZero() {
		return fmt.Errorf("event %s: missing timestamp: %w", e.ID, ErrMalformedDate)
	}
	if e.End.Before(e.Start) {
		return fmt.Errorf("event %s: end %s before start %s: %w",
			e.ID, e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339), ErrMalformedDate)
	}
	return nil
}

// IsAllDay reports whether the event is an all-day entry. All-day events
// arrive with midnight start and end boundaries and no time-of-day.
func (e Event) IsAllDay() bool {
	return isMidnight(e.Start) && isMidnight(e.End)
}

func isMidnight(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}

// Matches reports whether the event matches a find keyword: either the
// summary contains it, or the M/D form of the start date does.
func (e Event) Matches(keyword string) bool {
	if keyword == "" {
		return true
	}
	startStr := fmt.Sprintf("%d/%d", int(e.Start.Month()), e.Start.Day())
	if strings.Contains(startStr, keyword) {
		return true
	}
	return strings.Contains(strings.ToLower(e.Summary), strings.ToLower(keyword))
}
