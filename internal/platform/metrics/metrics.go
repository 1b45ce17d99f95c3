// Package metrics provides Prometheus instrumentation for text generation.
package metrics

import (
	"github.com/phrazzld/classroom-assist/internal/generation"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements generation.Observer on top of Prometheus collectors.
type Recorder struct {
	// AttemptsTotal counts individual remote calls by result ("success" or "failure").
	AttemptsTotal *prometheus.CounterVec

	// OutcomesTotal counts completed Generate calls by terminal outcome.
	OutcomesTotal *prometheus.CounterVec

	// AttemptsPerCall tracks how many attempts each Generate call needed.
	AttemptsPerCall prometheus.Histogram
}

var _ generation.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them with reg.
// A nil reg leaves the collectors unregistered.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		AttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "generation_attempts_total",
				Help: "Total number of remote text-generation calls by result.",
			},
			[]string{"result"},
		),
		OutcomesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "generation_outcomes_total",
				Help: "Total number of text-generation requests by terminal outcome.",
			},
			[]string{"outcome"},
		),
		AttemptsPerCall: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "generation_attempts_per_request",
				Help:    "Remote calls made per text-generation request.",
				Buckets: []float64{0, 1, 2, 3, 5, 10},
			},
		),
	}

	if reg != nil {
		reg.MustRegister(r.AttemptsTotal, r.OutcomesTotal, r.AttemptsPerCall)
	}
	return r
}

// ObserveAttempt records one remote call.
func (r *Recorder) ObserveAttempt(err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	r.AttemptsTotal.WithLabelValues(result).Inc()
}

// ObserveOutcome records a finished request.
func (r *Recorder) ObserveOutcome(outcome generation.Outcome, attempts int) {
	r.OutcomesTotal.WithLabelValues(outcome.String()).Inc()
	r.AttemptsPerCall.Observe(float64(attempts))
}
