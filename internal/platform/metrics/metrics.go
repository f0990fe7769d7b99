// Package metrics declares the Prometheus collectors exported on /metrics
// and the HTTP middleware that feeds the request collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "homebank"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status class",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status class",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	UsersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_created_total",
			Help:      "Total number of users created",
		},
	)

	DuplicateAccountsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_accounts_total",
			Help:      "Total number of user creations rejected for a duplicate account number",
		},
	)
)

// UserRecorder receives user lifecycle events from the service layer.
type UserRecorder interface {
	UserCreated()
	DuplicateAccountRejected()
}

// PrometheusRecorder implements UserRecorder on the package collectors.
type PrometheusRecorder struct{}

// UserCreated increments UsersCreatedTotal.
func (PrometheusRecorder) UserCreated() { UsersCreatedTotal.Inc() }

// DuplicateAccountRejected increments DuplicateAccountsTotal.
func (PrometheusRecorder) DuplicateAccountRejected() { DuplicateAccountsTotal.Inc() }

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) UserCreated()              {}
func (NopRecorder) DuplicateAccountRejected() {}
