// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/loanflow/models"
	"github.com/danielhkuo/loanflow/steps"
)

var ErrNotFound = errors.New("application not found")

// Store persists applications and their per-step payloads.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateGuest allocates a fresh application for an anonymous visitor.
// The session ID may be empty; a phone can be attached later by a step write.
func (s *Store) CreateGuest(ctx context.Context, sessionID string) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO application (id, session_id, phone, current_step, status, created_at, updated_at)
		VALUES ($1, $2, '', 0, $3, $4, $4)
	`, id, sessionID, models.StatusInProgress, now)
	if err != nil {
		return "", fmt.Errorf("failed to insert application: %w", err)
	}

	return id, nil
}

// Get fetches one application record. Returns ErrNotFound for unknown IDs.
func (s *Store) Get(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	err := s.db.QueryRowContext(ctx, `
		SELECT id, session_id, phone, current_step, status, created_at, updated_at
		FROM application WHERE id = $1
	`, id).Scan(&app.ID, &app.SessionID, &app.Phone, &app.CurrentStep, &app.Status, &app.CreatedAt, &app.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query application: %w", err)
	}

	return &app, nil
}

// WriteStep records one step payload for an existing application and returns
// the resulting current step.
//
// The write is a single transaction: the application row update (existence
// check, high-water mark, optional phone attach, updated_at refresh) and the
// per-step upsert commit together or not at all. Steps live in disjoint rows,
// so concurrent writes to different steps never interfere; a rewrite of the
// same step replaces that step's payload wholesale (last-write-wins).
func (s *Store) WriteStep(ctx context.Context, id string, step int, payload map[string]any, phone string) (int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal step payload: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin step write: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	// Existence check and application-row bookkeeping in one statement.
	// CASE WHEN instead of GREATEST keeps the statement portable to sqlite.
	res, err := tx.ExecContext(ctx, `
		UPDATE application
		SET current_step = CASE WHEN current_step < $2 THEN $2 ELSE current_step END,
		    phone = CASE WHEN $3 <> '' THEN $3 ELSE phone END,
		    updated_at = $4
		WHERE id = $1
	`, id, step, phone, now)
	if err != nil {
		return 0, fmt.Errorf("failed to update application: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return 0, ErrNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO application_step (application_id, step, data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (application_id, step)
		DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, id, step, string(data), now)
	if err != nil {
		return 0, fmt.Errorf("failed to write step %d: %w", step, err)
	}

	var current int
	err = tx.QueryRowContext(ctx, `SELECT current_step FROM application WHERE id = $1`, id).Scan(&current)
	if err != nil {
		return 0, fmt.Errorf("failed to read current step: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit step write: %w", err)
	}

	return current, nil
}

// GetSteps returns an application together with all its recorded step
// payloads, ordered by step number. Returns ErrNotFound for unknown IDs.
func (s *Store) GetSteps(ctx context.Context, id string) (*models.Application, []models.StepView, error) {
	app, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT step, data, updated_at
		FROM application_step
		WHERE application_id = $1
		ORDER BY step
	`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query steps: %w", err)
	}
	defer rows.Close()

	views := []models.StepView{}
	for rows.Next() {
		var view models.StepView
		var raw string
		if err := rows.Scan(&view.Step, &raw, &view.UpdatedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan step: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &view.Data); err != nil {
			return nil, nil, fmt.Errorf("failed to decode step %d payload: %w", view.Step, err)
		}
		view.Name = steps.Name(view.Step)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate steps: %w", err)
	}

	return app, views, nil
}

// List returns application summaries, newest first. Completeness is derived
// from the recorded step count, not from current_step.
func (s *Store) List(ctx context.Context, limit, offset int) ([]models.ApplicationSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.session_id, a.phone, a.current_step, a.status, a.created_at, a.updated_at,
		       (SELECT COUNT(*) FROM application_step st WHERE st.application_id = a.id)
		FROM application a
		ORDER BY a.created_at DESC, a.id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	summaries := []models.ApplicationSummary{}
	for rows.Next() {
		var sum models.ApplicationSummary
		err := rows.Scan(&sum.ID, &sum.SessionID, &sum.Phone, &sum.CurrentStep, &sum.Status,
			&sum.CreatedAt, &sum.UpdatedAt, &sum.StepsRecorded)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application summary: %w", err)
		}
		sum.Complete = sum.StepsRecorded == steps.Count
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applications: %w", err)
	}

	return summaries, nil
}
