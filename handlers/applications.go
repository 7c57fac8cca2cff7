// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/danielhkuo/loanflow/cliparse"
	"github.com/danielhkuo/loanflow/metrics"
	"github.com/danielhkuo/loanflow/middleware"
	"github.com/danielhkuo/loanflow/models"
	"github.com/danielhkuo/loanflow/steps"
	"github.com/danielhkuo/loanflow/store"
)

type ApplicationHandler struct {
	store *store.Store
	cfg   cliparse.Config
	log   *zap.SugaredLogger
}

func NewApplicationHandler(conn *sql.DB, cfg cliparse.Config, log *zap.SugaredLogger) *ApplicationHandler {
	return &ApplicationHandler{store: store.New(conn), cfg: cfg, log: log}
}

// CreateGuest handles POST /api/applications/guest
func (h *ApplicationHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	// No login required: the session token, when present, is the only identity
	sessionID := middleware.GetSessionID(r)

	id, err := h.store.CreateGuest(r.Context(), sessionID)
	if err != nil {
		h.log.Errorw("failed to create application", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create application")
		return
	}

	h.log.Infow("application created", "application_id", id, "session_id", sessionID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateApplicationResponse{
		Success:       true,
		ApplicationID: id,
	})
}

// UpdateStep handles PUT /api/applications/{id}/step
func (h *ApplicationHandler) UpdateStep(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "application id is required")
		return
	}

	var req models.UpdateStepRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Data == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "data is required")
		return
	}

	// Validation runs before any store access; a rejected payload leaves
	// stored state untouched
	if verr := steps.Validate(req.Step, req.Data); verr != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
		return
	}

	current, err := h.store.WriteStep(r.Context(), id, req.Step, req.Data, req.Phone)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Application not found")
		return
	}
	if err != nil {
		h.log.Errorw("failed to write step", "error", err, "application_id", id, "step", req.Step)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	metrics.StepWritesTotal.WithLabelValues(strconv.Itoa(req.Step)).Inc()
	h.log.Infow("step written", "application_id", id, "step", req.Step, "current_step", current)

	middleware.JSONResponse(w, http.StatusOK, models.UpdateStepResponse{
		Success:     true,
		CurrentStep: current,
	})
}
