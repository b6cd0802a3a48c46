package db

import (
	"database/sql"
	"strings"

	"github.com/marcus/gcal/internal/models"
)

// UpsertEvents inserts or fully overwrites events by id (last write
// wins). Calling it twice with the same batch, or with overlapping
// batches, leaves exactly one row per id.
func (s *Store) UpsertEvents(events []models.Event) error {
	if len(events) == 0 {
		return nil
	}
	return s.inTx("upsert events", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO events (id, start, end, summary, description, calendar_id, calendar_name)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				start = excluded.start,
				end = excluded.end,
				summary = excluded.summary,
				description = excluded.description,
				calendar_id = excluded.calendar_id,
				calendar_name = excluded.calendar_name`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, e := range events {
			_, err := stmt.Exec(e.ID, formatTimestamp(e.Start), formatTimestamp(e.End),
				e.Summary, e.Description, e.CalendarID, e.CalendarName)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteEvents removes all rows matching the given ids. Unknown ids are
// a no-op, not an error, so tombstone batches can be replayed freely.
func (s *Store) DeleteEvents(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.inTx("delete events", func(tx *sql.Tx) error {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
		args := make([]any, len(ids))
		for i, id := range ids {
			args[i] = id
		}
		_, err := tx.Exec("DELETE FROM events WHERE id IN ("+placeholders+")", args...)
		return err
	})
}

// FetchEvents returns all events belonging to the given calendars,
// sorted ascending by start. An empty filter returns nothing.
func (s *Store) FetchEvents(calendarIDs []string) ([]models.Event, error) {
	if len(calendarIDs) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(calendarIDs)), ",")
	args := make([]any, len(calendarIDs))
	for i, id := range calendarIDs {
		args[i] = id
	}

	rows, err := s.conn.Query(`
		SELECT id, start, end, summary, description, calendar_id, calendar_name
		FROM events WHERE calendar_id IN (`+placeholders+`)
		ORDER BY start ASC`, args...)
	if err != nil {
		return nil, unavailable("fetch events", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var (
			e          models.Event
			start, end string
		)
		if err := rows.Scan(&e.ID, &start, &end, &e.Summary, &e.Description, &e.CalendarID, &e.CalendarName); err != nil {
			return nil, unavailable("scan event", err)
		}
		if e.Start, err = parseTimestamp(start); err != nil {
			return nil, unavailable("parse event start", err)
		}
		if e.End, err = parseTimestamp(end); err != nil {
			return nil, unavailable("parse event end", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("fetch events", err)
	}
	return events, nil
}
