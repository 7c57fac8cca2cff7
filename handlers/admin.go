// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/danielhkuo/loanflow/auth"
	"github.com/danielhkuo/loanflow/cliparse"
	"github.com/danielhkuo/loanflow/middleware"
	"github.com/danielhkuo/loanflow/models"
	"github.com/danielhkuo/loanflow/store"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type AdminHandler struct {
	store *store.Store
	cfg   cliparse.Config
	log   *zap.SugaredLogger
}

func NewAdminHandler(conn *sql.DB, cfg cliparse.Config, log *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{store: store.New(conn), cfg: cfg, log: log}
}

// Login handles POST /api/admin/auth/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// One generic failure message regardless of which part was wrong
	if err := auth.VerifyAdmin(req.Username, req.Password, h.cfg.AdminUsername, h.cfg.AdminPassword); err != nil {
		h.log.Warnw("admin login rejected", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.IssueAdminToken(req.Username, h.cfg.JWTSecret, h.cfg.TokenTTL)
	if err != nil {
		h.log.Errorw("failed to issue admin token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	h.log.Infow("admin logged in", "username", req.Username)

	middleware.JSONResponse(w, http.StatusOK, models.AdminLoginResponse{
		Success: true,
		Token:   token,
	})
}

// ListApplications handles GET /api/admin/applications
func (h *AdminHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	offset := 0

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxListLimit {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be 1-"+strconv.Itoa(maxListLimit))
			return
		}
		limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "offset must be non-negative")
			return
		}
		offset = n
	}

	sums, err := h.store.List(r.Context(), limit, offset)
	if err != nil {
		h.log.Errorw("failed to list applications", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.log.Infow("applications listed",
		"admin", middleware.GetAdminUsername(r.Context()),
		"count", len(sums), "limit", limit, "offset", offset)

	middleware.JSONResponse(w, http.StatusOK, models.ListApplicationsResponse{
		Success:      true,
		Applications: sums,
	})
}

// GetApplicationSteps handles GET /api/admin/applications/{id}/steps
func (h *AdminHandler) GetApplicationSteps(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "application id is required")
		return
	}

	app, views, err := h.store.GetSteps(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Application not found")
		return
	}
	if err != nil {
		h.log.Errorw("failed to query steps", "error", err, "application_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ApplicationStepsResponse{
		Success:     true,
		Application: *app,
		Steps:       views,
	})
}
