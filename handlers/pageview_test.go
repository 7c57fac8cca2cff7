// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/loanflow/logger"
	"github.com/danielhkuo/loanflow/testutil"
)

func TestTrack(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewPageViewHandler(conn, testutil.NewTestLogger(t))

	req := testutil.MakeRequest("GET", "/pv.gif?path=/apply/step2", nil, nil)
	w := httptest.NewRecorder()
	handler.Track(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "image/gif", w.Header().Get("Content-Type"))
	assert.Equal(t, gifPixel, w.Body.Bytes())

	var path string
	require.NoError(t, conn.QueryRow(`SELECT path FROM page_view`).Scan(&path))
	assert.Equal(t, "/apply/step2", path)
}

func TestTrack_NeverFailsVisibly(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	conn.Close() // force every insert to fail
	handler := NewPageViewHandler(conn, logger.NewNop())

	req := testutil.MakeRequest("GET", "/pv.gif?path=/apply", nil, nil)
	w := httptest.NewRecorder()
	handler.Track(w, req)

	// The pixel is served regardless of the logging outcome
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "image/gif", w.Header().Get("Content-Type"))
	assert.Equal(t, gifPixel, w.Body.Bytes())
}
