package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransitionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loanbook_transitions_applied_total",
		Help: "Total number of committed loan status transitions, labelled by edge.",
	}, []string{"from", "to"})

	TransitionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loanbook_transitions_rejected_total",
		Help: "Total number of refused transition attempts, labelled by rejection kind.",
	}, []string{"kind"})

	TransitionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "loanbook_transition_duration_ms",
		Help:    "End-to-end transition latency in milliseconds, including the storage transaction.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})

	PaymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loanbook_payments_recorded_total",
		Help: "Total number of payments recorded against loans.",
	})
)

// Rejection kinds for TransitionsRejected.
const (
	KindNotFound          = "not_found"
	KindInvalidTransition = "invalid_transition"
	KindGuardRejected     = "guard_rejected"
	KindStorage           = "storage"
)
