// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/danielhkuo/loanflow/cliparse"
	"github.com/danielhkuo/loanflow/handlers"
	"github.com/danielhkuo/loanflow/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, log *zap.SugaredLogger) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	appHandler := handlers.NewApplicationHandler(db, cfg, log)
	adminHandler := handlers.NewAdminHandler(db, cfg, log)
	userHandler := handlers.NewUserHandler(db, log)
	pvHandler := handlers.NewPageViewHandler(db, log)

	logged := func(route string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(log, route, h)
	}
	admin := func(route string, h http.HandlerFunc) http.HandlerFunc {
		return logged(route, middleware.RequireAdmin(cfg.JWTSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Guest application flow (public, no login)
	mux.HandleFunc("POST /api/applications/guest", logged("/api/applications/guest", appHandler.CreateGuest))
	mux.HandleFunc("PUT /api/applications/{id}/step", logged("/api/applications/{id}/step", appHandler.UpdateStep))

	// Admin authentication and review (read-only)
	mux.HandleFunc("POST /api/admin/auth/login", logged("/api/admin/auth/login", adminHandler.Login))
	mux.HandleFunc("GET /api/admin/applications", admin("/api/admin/applications", adminHandler.ListApplications))
	mux.HandleFunc("GET /api/admin/applications/{id}/steps", admin("/api/admin/applications/{id}/steps", adminHandler.GetApplicationSteps))

	// Registration
	mux.HandleFunc("POST /api/register", logged("/api/register", userHandler.Register))

	// Page view pixel
	mux.HandleFunc("GET /pv.gif", pvHandler.Track)

	// Metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// The rest of the API surface is stubbed; say so explicitly
	mux.HandleFunc("/api/", logged("/api/*", func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotImplemented, "under construction")
	}))

	// Root endpoint. {$} pins the exact root; a bare "GET /" would conflict
	// with the method-less /api/ catch-all and panic at registration.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("loanflow API v1"))
	})

	return mux
}
