// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the store and manages its schema.

# Opening

Open picks the driver from the configuration and pings the store:

	conn, err := db.Open(ctx, cfg)

SQLite (modernc.org/sqlite, the default) uses the DBPath file with a 30s
busy timeout and WAL journaling. PostgreSQL uses DatabaseURL via lib/pq.

# Schema Creation

CreateSchema applies the embedded goose migrations:

	if err := db.CreateSchema(ctx, conn.DB, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - applied versions are tracked in
goose_db_version and every statement uses IF NOT EXISTS.

# Tables

  - users: id, name, email (unique), password_hash, created_at
  - skills: id, user_id, name, percent, color, note
  - ai_queries: id, user_id (nullable), query, response, created_at

There are no foreign keys. Skill and query rows tolerate missing users.

# Errors

IsUniqueViolation recognises duplicate-key errors from both drivers:

	if db.IsUniqueViolation(err) {
		// 409 Conflict
	}
*/
package db
