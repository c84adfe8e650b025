// Package metrics defines and registers all custom Prometheus metrics for the
// Zoo Arcadia gateway. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "arcadia"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsRestoredTotal counts session restorations by outcome.
// Label:
//   - result: "authenticated" (valid token), "anonymous" (no token) or
//     "invalid" (token erased after a failed decode)
var SessionsRestoredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_restored_total",
		Help:      "Total number of session restorations, labelled by outcome.",
	},
	[]string{"result"},
)

// LoginsTotal counts credential exchanges against the upstream backend.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login exchanges, labelled by result.",
	},
	[]string{"result"},
)

// ── Guard metrics ─────────────────────────────────────────────────────────────

// GuardDecisionsTotal counts route-guard evaluations.
// Label:
//   - decision: "allowed", "login_redirect" (anonymous visitor) or
//     "role_redirect" (authenticated, wrong role)
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard evaluations, labelled by decision.",
	},
	[]string{"decision"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts proxied calls to the Zoo Arcadia backend.
// Labels:
//   - resource: upstream collection ("animals", "habitats", "auth", ...)
//   - status: HTTP status class ("2xx", "4xx", "5xx") or "error" when the
//     request never produced a response
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of upstream API calls, labelled by resource and status class.",
	},
	[]string{"resource", "status"},
)

// UpstreamRequestDuration measures upstream call latency end-to-end.
// Label:
//   - resource: upstream collection
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream API calls from dispatch to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheRequestsTotal counts lookups against the public content cache.
// Labels:
//   - key: cache key ("habitats", "services", "reviews", ...)
//   - result: "hit" or "miss"
var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_requests_total",
		Help:      "Total number of public cache lookups, labelled by key and result.",
	},
	[]string{"key", "result"},
)

// CacheRefreshTotal counts background refresh attempts per resource.
// Labels:
//   - resource: refreshed collection
//   - result: "ok" or "error"
var CacheRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_refresh_total",
		Help:      "Total number of background cache refreshes, labelled by resource and result.",
	},
	[]string{"resource", "result"},
)
