// Package metrics records dispatch outcomes in Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PromRecorder implements commands.DispatchRecorder on Prometheus counters.
type PromRecorder struct {
	assignments *prometheus.CounterVec
	failures    prometheus.Counter
	transitions *prometheus.CounterVec
}

// NewPromRecorder registers dispatch metrics on the default Prometheus
// registerer. The metrics endpoint is served separately.
func NewPromRecorder() (*PromRecorder, error) {
	return NewPromRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromRecorderWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromRecorderWithRegistry(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	assignments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignments_total",
		Help: "Total number of successful order assignments",
	}, []string{"method"})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignment_failures_total",
		Help: "Total number of failed assignment attempts",
	})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_transitions_total",
		Help: "Total number of delivery status transitions",
	}, []string{"to_status"})

	if err := reg.Register(assignments); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			assignments = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(failures); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			failures = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(transitions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			transitions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromRecorder{
		assignments: assignments,
		failures:    failures,
		transitions: transitions,
	}, nil
}

// RecordAssignment increments the assignment counter for the given method.
func (r *PromRecorder) RecordAssignment(method string) {
	r.assignments.WithLabelValues(method).Inc()
}

// RecordAssignmentFailure increments the failure counter.
func (r *PromRecorder) RecordAssignmentFailure() {
	r.failures.Inc()
}

// RecordTransition increments the transition counter for the entered status.
func (r *PromRecorder) RecordTransition(toStatus string) {
	r.transitions.WithLabelValues(toStatus).Inc()
}
