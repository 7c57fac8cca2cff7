// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/loanflow/auth"
	"github.com/danielhkuo/loanflow/models"
	"github.com/danielhkuo/loanflow/testutil"
)

func TestAdminLogin(t *testing.T) {
	cfg := testutil.GetTestConfig()

	tests := []struct {
		name       string
		username   string
		password   string
		wantStatus int
	}{
		{"correct credentials", cfg.AdminUsername, cfg.AdminPassword, 200},
		{"wrong password", cfg.AdminUsername, "wrong", 401},
		{"wrong username", "root", cfg.AdminPassword, 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := testutil.SetupTestDB(t)
			handler := NewAdminHandler(conn, cfg, testutil.NewTestLogger(t))

			body := models.AdminLoginRequest{Username: tt.username, Password: tt.password}
			req := testutil.MakeRequest("POST", "/api/admin/auth/login", body, nil)
			w := httptest.NewRecorder()
			handler.Login(w, req)

			require.Equal(t, tt.wantStatus, w.Code, "body: %s", w.Body.String())

			if tt.wantStatus == 200 {
				var resp models.AdminLoginResponse
				testutil.DecodeJSON(t, w, &resp)
				assert.True(t, resp.Success)

				claims, err := auth.VerifyAdminToken(resp.Token, cfg.JWTSecret)
				require.NoError(t, err)
				assert.Equal(t, cfg.AdminUsername, claims.Username)
				return
			}

			// Generic failure: no hint about which part was wrong
			var resp models.ErrorResponse
			testutil.DecodeJSON(t, w, &resp)
			assert.Equal(t, "Invalid credentials", resp.Message)
		})
	}
}

func TestListApplications(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(conn, cfg, testutil.NewTestLogger(t))

	id1 := testutil.CreateTestApplication(t, conn, "s1")
	testutil.WriteTestStep(t, conn, id1, 2, map[string]any{"idNumber": "1", "realName": "x"})

	req := testutil.MakeRequest("GET", "/api/admin/applications", nil, nil)
	w := httptest.NewRecorder()
	handler.ListApplications(w, req)

	require.Equal(t, 200, w.Code, "body: %s", w.Body.String())

	var resp models.ListApplicationsResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.True(t, resp.Success)
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, id1, resp.Applications[0].ID)
	assert.Equal(t, 1, resp.Applications[0].StepsRecorded)
	assert.False(t, resp.Applications[0].Complete)
}

func TestListApplications_BadPagination(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewAdminHandler(conn, testutil.GetTestConfig(), testutil.NewTestLogger(t))

	tests := []struct {
		name  string
		query string
	}{
		{"limit not a number", "?limit=abc"},
		{"limit zero", "?limit=0"},
		{"limit too large", "?limit=9999"},
		{"negative offset", "?offset=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/api/admin/applications"+tt.query, nil, nil)
			w := httptest.NewRecorder()
			handler.ListApplications(w, req)
			assert.Equal(t, 400, w.Code)
		})
	}
}

func TestGetApplicationSteps(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewAdminHandler(conn, testutil.GetTestConfig(), testutil.NewTestLogger(t))

	id := testutil.CreateTestApplication(t, conn, "s1")
	testutil.WriteTestStep(t, conn, id, 2, map[string]any{"idNumber": "123", "realName": "测试用户"})
	testutil.WriteTestStep(t, conn, id, 7, map[string]any{"bankCardNumber": "1234567890123456"})

	req := testutil.MakeRequest("GET", "/api/admin/applications/"+id+"/steps", nil, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	handler.GetApplicationSteps(w, req)

	require.Equal(t, 200, w.Code, "body: %s", w.Body.String())

	var resp models.ApplicationStepsResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, id, resp.Application.ID)

	require.Len(t, resp.Steps, 2)
	assert.Equal(t, 2, resp.Steps[0].Step)
	assert.Equal(t, "identity", resp.Steps[0].Name)
	assert.Equal(t, "测试用户", resp.Steps[0].Data["realName"])
	assert.Equal(t, 7, resp.Steps[1].Step)
}

func TestGetApplicationSteps_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewAdminHandler(conn, testutil.GetTestConfig(), testutil.NewTestLogger(t))

	req := testutil.MakeRequest("GET", "/api/admin/applications/missing/steps", nil, nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	handler.GetApplicationSteps(w, req)

	assert.Equal(t, 404, w.Code)
}
