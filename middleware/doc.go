// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and request/response helpers.

# Request Wrappers

  - WithLogging: zap request logging plus prometheus traffic metrics,
    labeled by registered route pattern
  - RequireAdmin: admin bearer token gate; rejects before any store access
  - CORS: cross-origin support including preflight

# Helpers

  - JSONResponse / ErrorResponse: JSON encoding with the standard envelope
  - ParseJSONBody: request body decoding
  - GetSessionID: guest session token extraction (X-Session-ID header)
  - GetClientIP: X-Forwarded-For / X-Real-IP / RemoteAddr resolution
  - GetAdminUsername: authenticated admin identity from context
*/
package middleware
