// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielhkuo/loanflow/auth"
)

type contextKey string

const adminUsernameKey contextKey = "adminUsername"

// RequireAdmin gates a handler behind a valid admin bearer token. The check
// runs before the wrapped handler, so unauthenticated requests never reach
// the store. Failures are deliberately uniform: one message for missing,
// malformed, expired, and foreign tokens alike.
func RequireAdmin(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid or missing credentials")
			return
		}

		claims, err := auth.VerifyAdminToken(parts[1], secret)
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid or missing credentials")
			return
		}

		ctx := context.WithValue(r.Context(), adminUsernameKey, claims.Username)
		next(w, r.WithContext(ctx))
	}
}

// GetAdminUsername returns the authenticated admin's username, or "".
func GetAdminUsername(ctx context.Context) string {
	if v, ok := ctx.Value(adminUsernameKey).(string); ok {
		return v
	}
	return ""
}
