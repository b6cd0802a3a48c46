package sync

import (
	"context"
	"fmt"
	"log/slog"
	gosync "sync"

	"github.com/marcus/gcal/internal/db"
	"github.com/marcus/gcal/internal/models"
)

// Synchronizer drives incremental sync cycles against the remote
// gateway and applies the results to the local store.
type Synchronizer struct {
	store   *db.Store
	gateway Gateway
}

// New creates a Synchronizer over the given store and gateway.
func New(store *db.Store, gateway Gateway) *Synchronizer {
	return &Synchronizer{store: store, gateway: gateway}
}

// SyncAll runs one sync cycle per calendar concurrently and returns one
// result per calendar, in input order.
func (s *Synchronizer) SyncAll(ctx context.Context, calendars []models.Calendar) []CycleResult {
	results := make([]CycleResult, len(calendars))
	var wg gosync.WaitGroup
	for i, cal := range calendars {
		wg.Add(1)
		go func(i int, cal models.Calendar) {
			defer wg.Done()
			results[i] = s.SyncCalendar(ctx, cal)
		}(i, cal)
	}
	wg.Wait()
	return results
}

// SyncCalendar reconciles one calendar. On token expiry it falls back
// to a full resync transparently; the caller never sees expiry as an
// error. On failure the prior token and cache state are left untouched.
func (s *Synchronizer) SyncCalendar(ctx context.Context, cal models.Calendar) CycleResult {
	result := CycleResult{CalendarID: cal.ID, Summary: cal.Summary}

	res, err := s.gateway.ListEvents(ctx, cal)
	if err != nil {
		result.Err = fmt.Errorf("list events for %s: %w", cal.ID, err)
		return result
	}

	if res.TokenExpired {
		slog.Info("sync token expired, running full resync", "calendar", cal.ID)
		cal.SyncToken = ""
		result.FullResync = true
		res, err = s.gateway.ListEvents(ctx, cal)
		if err != nil {
			result.Err = fmt.Errorf("full resync for %s: %w", cal.ID, err)
			return result
		}
	}
	if cal.SyncToken == "" {
		result.FullResync = true
	}

	confirmed := make([]models.Event, 0, len(res.Confirmed))
	for _, e := range res.Confirmed {
		if err := e.Validate(); err != nil {
			slog.Warn("rejecting event with malformed dates", "calendar", cal.ID, "event", e.ID, "err", err)
			result.Rejected++
			continue
		}
		confirmed = append(confirmed, e)
	}

	// Tombstones apply before upserts so a cancelled-then-recreated id
	// in one batch ends up present, not deleted.
	if err := s.store.DeleteEvents(res.Cancelled); err != nil {
		result.Err = fmt.Errorf("apply tombstones for %s: %w", cal.ID, err)
		return result
	}
	if err := s.store.UpsertEvents(confirmed); err != nil {
		result.Err = fmt.Errorf("upsert events for %s: %w", cal.ID, err)
		return result
	}
	// Token advances only after the batch is fully applied; a failed
	// cycle leaves the old token so the next cycle refetches.
	if err := s.store.SetSyncToken(cal.ID, res.NextToken); err != nil {
		result.Err = fmt.Errorf("store sync token for %s: %w", cal.ID, err)
		return result
	}

	result.Deleted = len(res.Cancelled)
	result.Upserted = len(confirmed)
	slog.Debug("sync cycle complete", "calendar", cal.ID,
		"upserted", result.Upserted, "deleted", result.Deleted, "full", result.FullResync)
	return result
}

// DiscoverCalendars fetches the remote calendar list and records any
// calendars not yet known locally. Existing subscription flags and sync
// tokens are preserved.
func (s *Synchronizer) DiscoverCalendars(ctx context.Context) ([]models.Calendar, error) {
	remote, err := s.gateway.ListCalendars(ctx)
	if err != nil {
		return nil, fmt.Errorf("list remote calendars: %w", err)
	}
	if err := s.store.UpsertCalendars(remote); err != nil {
		return nil, fmt.Errorf("record calendars: %w", err)
	}
	return s.store.FetchAllCalendars()
}
