// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/loanflow/cliparse"
	"github.com/danielhkuo/loanflow/db"
	"github.com/danielhkuo/loanflow/models"
)

// NewTestLogger creates a logger that outputs through testing.T.
func NewTestLogger(t testing.TB) *zap.SugaredLogger {
	return zaptest.NewLogger(t).Sugar()
}

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
// One connection max: the driver serializes writers anyway, and the shared
// in-memory database lives exactly as long as that connection.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3180,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		AdminUsername: "admin",
		AdminPassword: "test-admin-pass",
		JWTSecret:     "test-jwt-secret",
		TokenTTL:      time.Hour,
		LogLevel:      "error",
		LogFormat:     "console",
	}
}

// CreateTestApplication inserts an application row and returns its ID
func CreateTestApplication(t *testing.T, conn *sql.DB, sessionID string) string {
	t.Helper()

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO application (id, session_id, phone, current_step, status, created_at, updated_at)
		VALUES ($1, $2, '', 0, $3, $4, $4)
	`, id, sessionID, models.StatusInProgress, now)
	if err != nil {
		t.Fatalf("Failed to create test application: %v", err)
	}

	return id
}

// WriteTestStep records a step payload directly, bypassing validation
func WriteTestStep(t *testing.T, conn *sql.DB, applicationID string, step int, data map[string]any) {
	t.Helper()

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("Failed to marshal step data: %v", err)
	}

	now := time.Now().UTC()
	_, err = conn.Exec(`
		INSERT INTO application_step (application_id, step, data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (application_id, step)
		DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, applicationID, step, string(raw), now)
	if err != nil {
		t.Fatalf("Failed to write test step: %v", err)
	}

	_, err = conn.Exec(`
		UPDATE application
		SET current_step = CASE WHEN current_step < $2 THEN $2 ELSE current_step END, updated_at = $3
		WHERE id = $1
	`, applicationID, step, now)
	if err != nil {
		t.Fatalf("Failed to bump current step: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// DecodeJSON decodes the response body into the provided struct
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
