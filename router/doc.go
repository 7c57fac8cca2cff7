// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ routing.

Public routes cover the guest application flow, registration, the tracking
pixel, health and metrics. Admin review routes are wrapped with
middleware.RequireAdmin; everything goes through the logging/metrics wrapper.
Unmatched /api/ paths get an explicit "under construction" response rather
than a bare 404.
*/
package router
