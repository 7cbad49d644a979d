// Package observability holds the Prometheus collectors shared by the HTTP and service layers.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration records request latency by route template, method and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hostspot_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	// SignupsTotal counts signup attempts by role and outcome code.
	SignupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hostspot_signups_total",
		Help: "Total signup attempts by role and outcome",
	}, []string{"role", "outcome"})

	// LoginsTotal counts login attempts by outcome code.
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hostspot_logins_total",
		Help: "Total login attempts by outcome",
	}, []string{"outcome"})

	// SignupCleanupsTotal counts best-effort account removals after a failed host signup.
	SignupCleanupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hostspot_signup_cleanups_total",
		Help: "Account cleanups after failed host signups by result",
	}, []string{"result"})

	// ExportCacheLookups counts export snapshot cache lookups by result (hit, miss, error).
	ExportCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hostspot_export_cache_lookups_total",
		Help: "Export snapshot cache lookups by result",
	}, []string{"result"})

	// RedisErrors counts failed Redis commands by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hostspot_redis_errors_total",
		Help: "Total Redis command errors",
	}, []string{"command"})
)

// Outcome returns the label used for a finished operation: "ok" or the error code.
func Outcome(code string, err error) string {
	if err == nil {
		return "ok"
	}
	return code
}
