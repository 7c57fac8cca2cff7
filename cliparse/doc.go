// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3180)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - AdminUsername / AdminPassword: the single administrator principal (required)
  - JWTSecret: HMAC secret for admin bearer tokens (required)
  - TokenTTL: admin token lifetime (default: 24h)
  - LogLevel / LogFormat: zap logger settings

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-admin-user  Administrator username
	-admin-pass  Administrator password
	-jwt-secret  Token signing secret
	-token-ttl   Token lifetime in hours
	-log-level   debug, info, warn, error
	-log-format  json or console

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	ADMIN_USERNAME  → -admin-user
	ADMIN_PASSWORD  → -admin-pass
	JWT_SECRET      → -jwt-secret
	TOKEN_TTL_HOURS → -token-ttl
	LOG_LEVEL       → -log-level
	LOG_FORMAT      → -log-format

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:
database URL, admin username, admin password, and JWT secret.
*/
package cliparse
