// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route", "method"},
	)

	StepWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "application_step_writes_total",
			Help: "Total number of successful step writes by step number",
		},
		[]string{"step"},
	)

	PageViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "page_views_total",
			Help: "Total number of page views logged via pv.gif",
		},
	)
)
