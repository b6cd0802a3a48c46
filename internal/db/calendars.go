package db

import (
	"database/sql"
	"strings"

	"github.com/marcus/gcal/internal/models"
)

// UpsertCalendars inserts calendars that are not already present,
// matched by id. Existing rows keep their subscribed flag and sync
// token untouched, so re-running calendar discovery never clobbers
// sync state.
func (s *Store) UpsertCalendars(calendars []models.Calendar) error {
	if len(calendars) == 0 {
		return nil
	}
	return s.inTx("upsert calendars", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(
			`INSERT OR IGNORE INTO calendars (id, summary, subscribed, sync_token) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, c := range calendars {
			token := sql.NullString{String: c.SyncToken, Valid: c.SyncToken != ""}
			if _, err := stmt.Exec(c.ID, c.Summary, boolToInt(c.Subscribed), token); err != nil {
				return err
			}
		}
		return nil
	})
}

// FetchCalendars returns all subscribed calendars.
func (s *Store) FetchCalendars() ([]models.Calendar, error) {
	return s.queryCalendars("SELECT id, summary, subscribed, sync_token FROM calendars WHERE subscribed = 1 ORDER BY summary ASC")
}

// FetchAllCalendars returns every known calendar, subscribed or not.
func (s *Store) FetchAllCalendars() ([]models.Calendar, error) {
	return s.queryCalendars("SELECT id, summary, subscribed, sync_token FROM calendars ORDER BY summary ASC")
}

func (s *Store) queryCalendars(query string) ([]models.Calendar, error) {
	rows, err := s.conn.Query(query)
	if err != nil {
		return nil, unavailable("fetch calendars", err)
	}
	defer rows.Close()

	var calendars []models.Calendar
	for rows.Next() {
		var (
			c          models.Calendar
			subscribed int
			token      sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Summary, &subscribed, &token); err != nil {
			return nil, unavailable("scan calendar", err)
		}
		c.Subscribed = subscribed != 0
		c.SyncToken = token.String
		calendars = append(calendars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("fetch calendars", err)
	}
	return calendars, nil
}

// SetSyncToken persists the incremental-fetch cursor for a calendar.
// An empty token clears the cursor and forces a full resync next cycle.
func (s *Store) SetSyncToken(calendarID, token string) error {
	value := sql.NullString{String: token, Valid: token != ""}
	if _, err := s.conn.Exec("UPDATE calendars SET sync_token = ? WHERE id = ?", value, calendarID); err != nil {
		return unavailable("set sync token", err)
	}
	return nil
}

// SetSubscriptions marks exactly the given calendar ids as subscribed
// and every other calendar as unsubscribed.
func (s *Store) SetSubscriptions(ids []string) error {
	return s.inTx("set subscriptions", func(tx *sql.Tx) error {
		if _, err := tx.Exec("UPDATE calendars SET subscribed = 0"); err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
		args := make([]any, len(ids))
		for i, id := range ids {
			args[i] = id
		}
		_, err := tx.Exec("UPDATE calendars SET subscribed = 1 WHERE id IN ("+placeholders+")", args...)
		return err
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
