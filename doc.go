// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the loanflow API server.

Loanflow is a multi-step loan application intake service: anonymous visitors
progressively fill out a seven-step credit application without creating an
account, and a single administrator reviews submissions through bearer-token
gated endpoints.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... ADMIN_USERNAME=... ADMIN_PASSWORD=... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3180 -d loanflow.db -t sqlite -admin-user admin -admin-pass ... -jwt-secret ...

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - DATABASE_URL (-d): postgres connection string or sqlite file path
  - ADMIN_USERNAME (-admin-user): administrator login
  - ADMIN_PASSWORD (-admin-pass): administrator password
  - JWT_SECRET (-jwt-secret): admin token signing secret

Optional settings:

  - PORT (-p): server port (default: 3180)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TOKEN_TTL_HOURS (-token-ttl): admin token lifetime (default: 24)
  - LOG_LEVEL / LOG_FORMAT: zap logger settings

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (applications, admin, users, page views)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging/metrics wrapper, admin bearer gate, CORS, JSON helpers
  - models: request/response and domain types
  - store: application persistence with per-step rows
  - steps: the seven-step form flow and payload validation
  - auth: admin credential check, JWT tokens, bcrypt hashing
  - db: driver selection and schema creation
  - metrics: prometheus collectors
  - logger: zap construction
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
