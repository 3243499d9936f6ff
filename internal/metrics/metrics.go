// Package metrics counts pipeline stage outcomes with Prometheus collectors
// registered on a private registry.
//
// A CLI process is short-lived, so the registry is not served over HTTP.
// WriteTextfile dumps it in the text exposition format for a node exporter
// textfile collector.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/leapstack-labs/leapfol/pkg/core"
)

const namespace = "leapfol"

// Outcome labels.
const (
	OutcomeOK          = "ok"
	OutcomeRejected    = "rejected"
	OutcomeUnsupported = "unsupported"
	OutcomeError       = "error"
)

// Metrics holds the pipeline collectors. A nil *Metrics discards every
// observation.
type Metrics struct {
	registry *prometheus.Registry

	// StageTotal counts stage executions by stage and outcome.
	StageTotal *prometheus.CounterVec

	// StageDuration observes stage latency by stage.
	StageDuration *prometheus.HistogramVec

	// ObligationsTotal counts proof obligations produced by morph runs.
	ObligationsTotal prometheus.Counter

	// StatementsTotal counts emitted prover statements by role.
	StatementsTotal *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		StageTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_total",
			Help:      "Pipeline stage executions by stage and outcome.",
		}, []string{"stage", "outcome"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Pipeline stage latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"stage"}),
		ObligationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "obligations_total",
			Help:      "Proof obligations produced by morphism checks.",
		}),
		StatementsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "statements_total",
			Help:      "Prover statements emitted by role.",
		}, []string{"role"}),
	}
	m.registry.MustRegister(m.StageTotal, m.StageDuration, m.ObligationsTotal, m.StatementsTotal)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveStage records one execution of stage that took d and ended with err.
func (m *Metrics) ObserveStage(stage string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.StageTotal.WithLabelValues(stage, Outcome(err)).Inc()
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// AddObligations counts n produced obligations.
func (m *Metrics) AddObligations(n int) {
	if m == nil {
		return
	}
	m.ObligationsTotal.Add(float64(n))
}

// AddStatements counts n emitted statements with the given role.
func (m *Metrics) AddStatements(role string, n int) {
	if m == nil {
		return
	}
	m.StatementsTotal.WithLabelValues(role).Add(float64(n))
}

// WriteTextfile writes every collector to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

// Outcome classifies err into an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, core.ErrUnsupported):
		return OutcomeUnsupported
	case core.IsRejection(err):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}
