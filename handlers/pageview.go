// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danielhkuo/loanflow/metrics"
)

// 1x1 transparent GIF
var gifPixel = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

type PageViewHandler struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

func NewPageViewHandler(db *sql.DB, log *zap.SugaredLogger) *PageViewHandler {
	return &PageViewHandler{db: db, log: log}
}

// Track handles GET /pv.gif. The pixel is always served; logging is
// fire-and-forget and an insert failure never surfaces to the caller.
func (h *PageViewHandler) Track(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = r.Referer()
	}

	_, err := h.db.ExecContext(r.Context(), `
		INSERT INTO page_view (id, path, viewed_at)
		VALUES ($1, $2, $3)
	`, uuid.NewString(), path, time.Now().UTC())
	if err != nil {
		h.log.Warnw("failed to log page view", "error", err, "path", path)
	} else {
		metrics.PageViewsTotal.Inc()
	}

	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(gifPixel)
}
