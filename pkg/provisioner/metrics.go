package provisioner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric status label values.
const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	// Provisioning workflow metrics
	provisionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "envprov_provision_duration_seconds",
			Help:    "Duration of a full provisioning run in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	provisionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envprov_provision_total",
			Help: "Total number of provisioning runs",
		},
		[]string{"status"}, // success or error
	)

	// External invocation metrics
	invocationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envprov_invocation_total",
			Help: "Total number of external tool invocations",
		},
		[]string{"tool", "status"},
	)

	entriesSetTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "envprov_entries_set_total",
			Help: "Total number of configuration entries written",
		},
	)

	preflightFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envprov_preflight_failures_total",
			Help: "Total number of failed precondition checks",
		},
		[]string{"check"}, // azd-missing, az-missing, not-authenticated
	)
)
