// Package sync reconciles the local event cache with the remote
// calendar service using token-based incremental fetches.
package sync

import (
	"context"

	"github.com/marcus/gcal/internal/models"
)

// Gateway is the remote capability the synchronizer consumes. The
// production implementation lives in internal/gcal; tests supply fakes.
type Gateway interface {
	// ListCalendars returns every calendar the account can access.
	ListCalendars(ctx context.Context) ([]models.Calendar, error)

	// ListEvents fetches changes for one calendar. When the calendar
	// carries a sync token the fetch is incremental; otherwise it is a
	// full fetch of all current events.
	ListEvents(ctx context.Context, cal models.Calendar) (ListResult, error)
}

// ListResult is the typed outcome of one fetch. TokenExpired reports
// that the remote rejected the stored cursor; the caller must retry
// without a token. This replaces status-code branching at call sites.
type ListResult struct {
	Confirmed    []models.Event
	Cancelled    []string // tombstone event ids
	NextToken    string
	TokenExpired bool
}

// CycleResult reports the outcome of one calendar's sync cycle.
// Failures are per-calendar; one failed cycle never aborts the others.
type CycleResult struct {
	CalendarID string
	Summary    string
	Upserted   int
	Deleted    int
	Rejected   int // events dropped for malformed dates
	FullResync bool
	Err        error
}
