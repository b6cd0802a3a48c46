// Package gcal implements the remote gateway against the Google
// Calendar v3 API.
package gcal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/marcus/gcal/internal/models"
	"github.com/marcus/gcal/internal/sync"
)

// ErrRemoteUnavailable wraps network and service failures so callers
// can detect them with errors.Is.
var ErrRemoteUnavailable = errors.New("remote calendar service unavailable")

// maxResults matches the API maximum page size; fewer round trips per
// full resync.
const maxResults = 2500

// Client is a Google Calendar API gateway.
type Client struct {
	svc *calendar.Service
}

// NewClient creates a gateway from an OAuth2 token source.
func NewClient(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// ListCalendars returns every calendar on the account's calendar list,
// all marked subscribed; the store preserves local subscription choices
// for calendars it already knows.
func (c *Client) ListCalendars(ctx context.Context) ([]models.Calendar, error) {
	var calendars []models.Calendar
	pageToken := ""
	for {
		call := c.svc.CalendarList.List().Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("list calendars: %w: %w", ErrRemoteUnavailable, err)
		}
		for _, item := range resp.Items {
			calendars = append(calendars, models.Calendar{
				ID:         item.Id,
				Summary:    item.Summary,
				Subscribed: true,
			})
		}
		pageToken = resp.NextPageToken
		if pageToken == "" {
			return calendars, nil
		}
	}
}

// ListEvents fetches changes for one calendar, incrementally when the
// calendar carries a sync token. A 410 Gone from the API means the
// token is no longer valid and is reported as TokenExpired, never as
// an error.
func (c *Client) ListEvents(ctx context.Context, cal models.Calendar) (sync.ListResult, error) {
	var result sync.ListResult
	pageToken := ""
	for {
		call := c.svc.Events.List(cal.ID).
			SingleEvents(true).
			MaxResults(maxResults).
			Context(ctx)
		if cal.SyncToken != "" {
			call = call.SyncToken(cal.SyncToken)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) && apiErr.Code == http.StatusGone {
				return sync.ListResult{TokenExpired: true}, nil
			}
			return sync.ListResult{}, fmt.Errorf("list events for %s: %w: %w", cal.ID, ErrRemoteUnavailable, err)
		}

		for _, item := range resp.Items {
			if item.Status == "cancelled" {
				result.Cancelled = append(result.Cancelled, item.Id)
				continue
			}
			ev, err := convertEvent(item, cal)
			if err != nil {
				// Keep malformed events in the batch; the synchronizer
				// decides whether to reject them.
				ev = models.Event{ID: item.Id, CalendarID: cal.ID, CalendarName: cal.Summary}
			}
			result.Confirmed = append(result.Confirmed, ev)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			result.NextToken = resp.NextSyncToken
			return result, nil
		}
	}
}

// convertEvent maps an API event to the local model. All-day events
// arrive as bare dates and become midnight boundaries.
func convertEvent(item *calendar.Event, cal models.Calendar) (models.Event, error) {
	start, err := eventTime(item.Start)
	if err != nil {
		return models.Event{}, fmt.Errorf("event %s start: %w", item.Id, err)
	}
	end, err := eventTime(item.End)
	if err != nil {
		return models.Event{}, fmt.Errorf("event %s end: %w", item.Id, err)
	}
	return models.Event{
		ID:           item.Id,
		Start:        start,
		End:          end,
		Summary:      item.Summary,
		Description:  item.Description,
		CalendarID:   cal.ID,
		CalendarName: cal.Summary,
	}, nil
}

func eventTime(edt *calendar.EventDateTime) (time.Time, error) {
	if edt == nil {
		return time.Time{}, errors.New("missing time")
	}
	if edt.DateTime != "" {
		return time.Parse(time.RFC3339, edt.DateTime)
	}
	return time.ParseInLocation("2006-01-02", edt.Date, time.Local)
}
