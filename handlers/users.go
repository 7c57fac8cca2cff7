// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danielhkuo/loanflow/auth"
	"github.com/danielhkuo/loanflow/middleware"
	"github.com/danielhkuo/loanflow/models"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type UserHandler struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

func NewUserHandler(db *sql.DB, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{db: db, log: log}
}

// Register handles POST /api/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !emailPattern.MatchString(req.Email) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email: invalid format")
		return
	}
	if len(req.Password) < minPasswordLength {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password: must be at least 8 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Errorw("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	userID := uuid.NewString()
	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO app_user (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, strings.ToLower(req.Email), hash, time.Now().UTC())

	if err != nil {
		// Unique-violation text differs between the two drivers
		if strings.Contains(err.Error(), "UNIQUE constraint failed") ||
			strings.Contains(err.Error(), "duplicate key") {
			middleware.ErrorResponse(w, http.StatusConflict, "Email already registered")
			return
		}
		h.log.Errorw("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	h.log.Infow("user registered", "user_id", userID)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		Success: true,
		UserID:  userID,
	})
}
