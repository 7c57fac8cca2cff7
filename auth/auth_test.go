// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAdmin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"correct credentials", "admin", "hunter22hunter22", false},
		{"wrong password", "admin", "wrong", true},
		{"wrong username", "root", "hunter22hunter22", true},
		{"both wrong", "root", "wrong", true},
		{"empty credentials", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyAdmin(tt.username, tt.password, "admin", "hunter22hunter22")
			if tt.wantErr {
				// Always the same generic error, regardless of which part failed
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := IssueAdminToken("admin", "test-secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyAdminToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerifyAdminToken_Invalid(t *testing.T) {
	valid, err := IssueAdminToken("admin", "test-secret", time.Hour)
	require.NoError(t, err)

	expired, err := IssueAdminToken("admin", "test-secret", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", valid, "other-secret"},
		{"expired token", expired, "test-secret"},
		{"garbage token", "not.a.jwt", "test-secret"},
		{"empty token", "", "test-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyAdminToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)

	assert.True(t, CheckPassword(hash, "s3cretpass"))
	assert.False(t, CheckPassword(hash, "wrongpass"))
	assert.False(t, CheckPassword("not-a-hash", "s3cretpass"))

	// Hashing is salted - same input, different hashes
	hash2, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}
