// Package metrics exposes the Prometheus counters of the order-resolution pipeline.
//
// A nil *Recorder is valid and records nothing, so components can be built without metrics in tests.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orderdesk"

// Lookup attempt outcomes.
const (
	AttemptSimulatedFailure = "simulated_failure"
	AttemptFound            = "found"
	AttemptNotFound         = "not_found"
	AttemptError            = "error"
)

// Lookup results.
const (
	ResultFound     = "found"
	ResultNotFound  = "not_found"
	ResultError     = "error"
	ResultCancelled = "cancelled"
)

// Notification outcomes.
const (
	NotificationSent   = "sent"
	NotificationFailed = "failed"
)

// Recorder groups the pipeline counters.
type Recorder struct {
	lookupAttempts *prometheus.CounterVec
	lookupResults  *prometheus.CounterVec
	resolutions    *prometheus.CounterVec
	notifications  *prometheus.CounterVec
}

// NewRecorder registers the pipeline counters with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		lookupAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lookup",
			Name:      "attempts_total",
			Help:      "Internal order lookup attempts by outcome.",
		}, []string{"outcome"}),
		lookupResults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lookup",
			Name:      "results_total",
			Help:      "Completed order lookups by result.",
		}, []string{"result"}),
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolution",
			Name:      "branches_total",
			Help:      "Resolved user requests by terminal branch.",
		}, []string{"branch"}),
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notification",
			Name:      "dispatched_total",
			Help:      "Prioritization notifications by outcome.",
		}, []string{"outcome"}),
	}
}

// LookupAttempt counts one internal lookup attempt.
func (r *Recorder) LookupAttempt(outcome string) {
	if r == nil {
		return
	}
	r.lookupAttempts.WithLabelValues(outcome).Inc()
}

// LookupResult counts one finished lookup.
func (r *Recorder) LookupResult(result string) {
	if r == nil {
		return
	}
	r.lookupResults.WithLabelValues(result).Inc()
}

// Resolution counts one resolved request.
func (r *Recorder) Resolution(branch string) {
	if r == nil {
		return
	}
	r.resolutions.WithLabelValues(branch).Inc()
}

// Notification counts one dispatch.
func (r *Recorder) Notification(outcome string) {
	if r == nil {
		return
	}
	r.notifications.WithLabelValues(outcome).Inc()
}
