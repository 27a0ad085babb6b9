// Package metrics provides Prometheus instrumentation for slip39
// command invocations. It exposes operation counters and a duration
// histogram so an operator running cmd/slip39 as a long-lived service
// (behind, say, a batch job wrapper) can scrape outcome rates. The core
// packages never import this package; only cmd/slip39 records metrics
// around calls to pkg/slip39.Generate and pkg/slip39.Combine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all slip39 metrics.
	Namespace = "slip39"

	// LabelOperation is the metric label naming which entry point ran.
	LabelOperation = "operation"

	// LabelStatus is the metric label naming the outcome of a call.
	LabelStatus = "status"

	// StatusSuccess and StatusError are the two values LabelStatus takes.
	StatusSuccess = "success"
	StatusError   = "error"

	// OpGenerate and OpCombine are the two values LabelOperation takes.
	OpGenerate = "generate"
	OpCombine  = "combine"
)

var (
	// GenerateTotal counts cmd/slip39 generate invocations by outcome.
	GenerateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "generate_total",
			Help:      "Total number of generate invocations by status",
		},
		[]string{LabelStatus},
	)

	// CombineTotal counts cmd/slip39 combine invocations by outcome.
	CombineTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "combine_total",
			Help:      "Total number of combine invocations by status",
		},
		[]string{LabelStatus},
	)

	// OperationDuration tracks how long generate/combine invocations take.
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of generate/combine invocations in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{LabelOperation},
	)
)

// RecordGenerate increments GenerateTotal with the outcome status implied
// by err.
func RecordGenerate(err error) {
	GenerateTotal.WithLabelValues(statusFor(err)).Inc()
}

// RecordCombine increments CombineTotal with the outcome status implied
// by err.
func RecordCombine(err error) {
	CombineTotal.WithLabelValues(statusFor(err)).Inc()
}

func statusFor(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}
