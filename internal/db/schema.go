package db

// SchemaVersion is the current database schema version
const SchemaVersion = 2

const schema = `
-- Calendars table
CREATE TABLE IF NOT EXISTS calendars (
    id TEXT PRIMARY KEY,
    summary TEXT NOT NULL DEFAULT '',
    subscribed INTEGER NOT NULL DEFAULT 1,
    sync_token TEXT
);

-- Events table
CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    start DATETIME NOT NULL,
    end DATETIME NOT NULL,
    summary TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    calendar_id TEXT NOT NULL,
    calendar_name TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_events_calendar_start ON events(calendar_id, start);

-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_info (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`
