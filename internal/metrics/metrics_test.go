package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapfol/pkg/core"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, OutcomeOK},
		{"well-formedness", &core.WellFormednessError{Index: 1, Reason: "x"}, OutcomeRejected},
		{"lookup", &core.LookupError{Kind: "axiom", ID: "a", Where: "domain"}, OutcomeRejected},
		{"unsupported", core.Unsupported(core.StageCompile, 1), OutcomeUnsupported},
		{"other", errors.New("disk full"), OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Outcome(tt.err))
		})
	}
}

func TestObserveStage(t *testing.T) {
	m := New()

	m.ObserveStage(core.StageCheck, time.Millisecond, nil)
	m.ObserveStage(core.StageCheck, time.Millisecond, nil)
	m.ObserveStage(core.StageCompile, time.Millisecond, core.Unsupported(core.StageCompile, 1))
	m.AddObligations(3)
	m.AddStatements("axiom", 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StageTotal.WithLabelValues(core.StageCheck, OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StageTotal.WithLabelValues(core.StageCompile, OutcomeUnsupported)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ObligationsTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StatementsTotal.WithLabelValues("axiom")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.StageDuration))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveStage(core.StageEmit, time.Second, nil)
	m.AddObligations(1)
	m.AddStatements("axiom", 1)
	assert.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.ObserveStage(core.StageEmit, time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "leapfol.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `leapfol_stage_total{outcome="ok",stage="emit"} 1`)
}
