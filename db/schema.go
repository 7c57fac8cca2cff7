// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/loanflow/cliparse"
)

// Open connects to the configured backing store. SQLite is capped to one
// connection because the modernc driver serializes writers anyway.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver := "postgres"
	if cfg.DatabaseType == "sqlite" {
		driver = "sqlite"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == "sqlite" {
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(25)
		conn.SetMaxIdleConns(5)
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL sticks to the dialect intersection of postgres and sqlite:
// explicit timestamps from code, no JSONB, no NOW().
const schema = `
-- Applications
CREATE TABLE IF NOT EXISTS application (
    id TEXT PRIMARY KEY,
    session_id TEXT,
    phone TEXT NOT NULL DEFAULT '',
    current_step INTEGER NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'in_progress' CHECK (status IN ('in_progress', 'submitted')),
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_application_session_id ON application(session_id);
CREATE INDEX IF NOT EXISTS idx_application_created_at ON application(created_at);

-- Step payloads, one row per (application, step)
CREATE TABLE IF NOT EXISTS application_step (
    application_id TEXT NOT NULL REFERENCES application(id) ON DELETE CASCADE,
    step INTEGER NOT NULL,
    data TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (application_id, step)
);

CREATE INDEX IF NOT EXISTS idx_application_step_app ON application_step(application_id);

-- Registered users
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Page view log, append-only
CREATE TABLE IF NOT EXISTS page_view (
    id TEXT PRIMARY KEY,
    path TEXT NOT NULL,
    viewed_at TIMESTAMP NOT NULL
);
`
