// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening a Connection

Open selects the driver from the configured type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "sqlite" (modernc.org/sqlite, CGO-free, the
default) and "postgres" (lib/pq). For sqlite the URL is a file path;
":memory:" gives an in-process test database.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The SQL is restricted to the subset both drivers accept, so
the same schema string serves sqlite and postgres.

# Tables

The schema includes:

  - member: Roster records keyed by registration badge ID
  - winner_log: Append-only draw outcomes (claimed / not_here)

# Relationships

	member 1──* winner_log

The foreign key uses ON DELETE CASCADE.

# Indexes

  - member.registration_badge_id (unique)
  - member.(eligible_for_drawing, is_member) for the draw query
  - winner_log.member_id
  - winner_log.drawn_at for history ordering
*/
package db
