// Package metrics exposes checker results to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "upmon"
)

var (
	checkDurationBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30}

	ChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checks_total",
		Help:      "Count of endpoint checks by result.",
	}, []string{"monitor", "status"})

	CheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "check_duration_seconds",
		Help:      "Time taken for an endpoint to respond.",
		Buckets:   checkDurationBuckets,
	}, []string{"monitor"})

	CheckLastTimestamp = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "check_last_timestamp_seconds",
		Help:      "Unix timestamp of the last completed check.",
	}, []string{"monitor"})

	RecordFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_failures_total",
		Help:      "Count of checks that could not be written to the store.",
	}, []string{"monitor"})
)
