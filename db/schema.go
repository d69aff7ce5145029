// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. dbType is "sqlite" or
// "postgres"; url is a file path for sqlite and a connection string
// for postgres.
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case "sqlite":
		driver = "sqlite"
	case "postgres":
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dbType == "sqlite" {
		// modernc's sqlite serializes writers itself; a single
		// connection avoids SQLITE_BUSY under concurrent requests.
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The SQL sticks to
// the subset shared by sqlite and postgres: TEXT primary keys
// generated in Go, CURRENT_TIMESTAMP defaults, $N placeholders.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Members (the roster)
CREATE TABLE IF NOT EXISTS member (
    id TEXT PRIMARY KEY,
    registration_badge_id TEXT NOT NULL UNIQUE,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    organization TEXT,
    email TEXT NOT NULL,
    is_member BOOLEAN NOT NULL DEFAULT TRUE,
    eligible_for_drawing BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_member_badge ON member(registration_badge_id);
CREATE INDEX IF NOT EXISTS idx_member_eligible ON member(eligible_for_drawing, is_member);

-- Winner log (append-only draw outcomes)
CREATE TABLE IF NOT EXISTS winner_log (
    id TEXT PRIMARY KEY,
    member_id TEXT NOT NULL REFERENCES member(id) ON DELETE CASCADE,
    status TEXT NOT NULL CHECK (status IN ('claimed', 'not_here')),
    drawn_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_winner_log_member ON winner_log(member_id);
CREATE INDEX IF NOT EXISTS idx_winner_log_drawn_at ON winner_log(drawn_at);
`
