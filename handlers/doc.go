// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the loanflow API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - ApplicationHandler: guest application creation and step writes
  - AdminHandler: admin login plus the read-only review endpoints
  - UserHandler: account registration
  - PageViewHandler: the pv.gif tracking pixel

Handlers are created via constructor functions that accept *sql.DB, Config
and a logger:

	appHandler := handlers.NewApplicationHandler(db, cfg, log)

# Application Flow

Visitors never log in. Creating an application requires at most a session
token; each form step is then written independently:

	POST /api/applications/guest     → CreateGuest (returns applicationId)
	PUT  /api/applications/{id}/step → UpdateStep (validates, then persists)

Steps may arrive in any order. A step payload is validated against its
required field set before the store is touched; a rejected payload changes
nothing. A phone number supplied with a step write is attached to the
application, tying the anonymous session to a phone identity.

# Admin Review

	POST /api/admin/auth/login              → Login (returns bearer token)
	GET  /api/admin/applications            → ListApplications
	GET  /api/admin/applications/{id}/steps → GetApplicationSteps

Review endpoints require the Authorization: Bearer <token> header and are
read-only.

# Registration and Tracking

	POST /api/register → Register (email + bcrypt-hashed password)
	GET  /pv.gif       → Track (always serves the pixel)
*/
package handlers
