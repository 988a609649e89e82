// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connections

Open selects the driver from the configured type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

PostgreSQL uses github.com/lib/pq; SQLite uses the pure-Go modernc.org/sqlite
with foreign keys enabled and a single connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - app_user: accounts for the token issuer
  - poll: question, creator, creation and expiry timestamps
  - option: choices per poll, ordered by position
  - vote: one row per (poll, user)

# Relationships

	poll 1──* option
	poll 1──* vote
	option 1──* vote

The vote table's (option_id, poll_id) foreign key guarantees a vote's option
belongs to the voted poll. UNIQUE (poll_id, user_id) is the only guard
against duplicate votes; the application never checks before inserting.
*/
package db
