package db

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// schemaVersion returns the current schema version recorded in the
// database; 0 means a pre-versioning (legacy) database.
func (s *Store) schemaVersion() (int, error) {
	var version string
	err := s.conn.QueryRow("SELECT value FROM schema_info WHERE key = 'version'").Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var v int
	fmt.Sscanf(version, "%d", &v)
	return v, nil
}

func (s *Store) setSchemaVersion(version int) error {
	_, err := s.conn.Exec(`INSERT OR REPLACE INTO schema_info (key, value) VALUES ('version', ?)`,
		fmt.Sprintf("%d", version))
	return err
}

// runMigrations brings a legacy database up to the current schema.
func (s *Store) runMigrations() error {
	version, err := s.schemaVersion()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version >= SchemaVersion {
		return nil
	}

	if version < 2 {
		if err := s.migrateSyncTokenColumn(); err != nil {
			return fmt.Errorf("migrate sync_token column: %w", err)
		}
		if err := s.migrateEventPrimaryKey(); err != nil {
			return fmt.Errorf("migrate event primary key: %w", err)
		}
	}

	if err := s.setSchemaVersion(SchemaVersion); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	slog.Debug("migrated schema", "from", version, "to", SchemaVersion)
	return nil
}

// migrateSyncTokenColumn adds calendars.sync_token to databases created
// before incremental sync existed.
func (s *Store) migrateSyncTokenColumn() error {
	exists, err := s.columnExists("calendars", "sync_token")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = s.conn.Exec("ALTER TABLE calendars ADD COLUMN sync_token TEXT")
	return err
}

// migrateEventPrimaryKey rebuilds the events table with id as primary
// key. Legacy databases had no uniqueness constraint, so a race between
// concurrent sync cycles could leave two rows for one event id; of those
// the row with the latest start wins.
func (s *Store) migrateEventPrimaryKey() error {
	tx, err := s.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events_migrated (
			id TEXT PRIMARY KEY,
			start DATETIME NOT NULL,
			end DATETIME NOT NULL,
			summary TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			calendar_id TEXT NOT NULL,
			calendar_name TEXT NOT NULL DEFAULT ''
		)`,
		`INSERT OR REPLACE INTO events_migrated (id, start, end, summary, description, calendar_id, calendar_name)
		 SELECT id, start, end, summary, description, calendar_id, calendar_name
		 FROM events ORDER BY start ASC, rowid ASC`,
		`DROP TABLE events`,
		`ALTER TABLE events_migrated RENAME TO events`,
		`CREATE INDEX IF NOT EXISTS idx_events_calendar_start ON events(calendar_id, start)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return tx.Commit()
}
