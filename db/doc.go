// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the backing store and creates the schema.

# Backends

Two drivers are registered: lib/pq for production postgres and modernc.org/sqlite
for development and tests. The config's DatabaseType selects between them:

	conn, err := db.Open(cfg)
	err = db.CreateSchema(conn)

All SQL in this repository is written against the dialect intersection of the
two backends ($n placeholders, ON CONFLICT DO UPDATE, explicit timestamps), so
the same statements run unchanged on both.

# Tables

  - application: one row per multi-step submission
  - application_step: one row per (application, step) payload
  - app_user: registered accounts (email + bcrypt hash)
  - page_view: append-only page view log
*/
package db
