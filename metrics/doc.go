// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics declares the server's prometheus collectors.

Collectors are registered on the default registry via promauto and exposed by
the /metrics route:

  - http_requests_total{route,method,status}
  - http_request_duration_seconds{route,method}
  - application_step_writes_total{step}
  - page_views_total
*/
package metrics
