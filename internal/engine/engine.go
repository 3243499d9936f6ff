// Package engine drives the load, check, compile, emit and morph pipeline
// over interchange files and records each invocation in the state store.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/leapstack-labs/leapfol/internal/metrics"
	"github.com/leapstack-labs/leapfol/internal/state"
	"github.com/leapstack-labs/leapfol/pkg/core"
	"github.com/leapstack-labs/leapfol/pkg/tptp"
)

// Default settings.
const (
	DefaultWorkers          = 4
	DefaultObligationPrefix = "obligation"
)

// Engine runs pipeline operations. It is safe for concurrent use; every
// operation builds its own compiler and printers.
type Engine struct {
	logger  *slog.Logger
	store   state.Store
	metrics *metrics.Metrics

	workers          int
	labelPrefix      string
	obligationPrefix string
}

// Config holds engine configuration.
type Config struct {
	// StatePath is the path to the SQLite state database. Runs are recorded
	// only when Record is set.
	StatePath string
	// Record enables run history.
	Record bool
	// Workers bounds parallel compilation (default 4).
	Workers int
	// LabelPrefix prefixes emitted axiom labels (default "axiom").
	LabelPrefix string
	// ObligationPrefix prefixes emitted conjecture labels (default "obligation").
	ObligationPrefix string
	// Metrics receives stage observations (optional).
	Metrics *metrics.Metrics
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// New creates an engine, opening the state store when recording is enabled.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := &Engine{
		logger:           logger,
		metrics:          cfg.Metrics,
		workers:          cfg.Workers,
		labelPrefix:      cfg.LabelPrefix,
		obligationPrefix: cfg.ObligationPrefix,
	}
	if e.workers <= 0 {
		e.workers = DefaultWorkers
	}
	if e.labelPrefix == "" {
		e.labelPrefix = tptp.DefaultLabelPrefix
	}
	if e.obligationPrefix == "" {
		e.obligationPrefix = DefaultObligationPrefix
	}

	logger.Debug("initializing engine", "record", cfg.Record, "state_path", cfg.StatePath, "workers", e.workers)

	if cfg.Record {
		store := state.NewSQLiteStore(logger)
		if err := store.Open(cfg.StatePath); err != nil {
			return nil, fmt.Errorf("failed to open state store: %w", err)
		}
		if err := store.InitSchema(); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to initialize state schema: %w", err)
		}
		e.store = store
	}

	return e, nil
}

// NewWithStore creates an engine that records into an existing store.
func NewWithStore(cfg Config, store state.Store) (*Engine, error) {
	cfg.Record = false
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}
	e.store = store
	return e, nil
}

// Close releases the state store.
func (e *Engine) Close() error {
	if e.store != nil {
		return e.store.Close()
	}
	return nil
}

// Store returns the state store, or nil when recording is disabled.
func (e *Engine) Store() state.Store {
	return e.store
}

// Metrics returns the metrics sink, which may be nil.
func (e *Engine) Metrics() *metrics.Metrics {
	return e.metrics
}

// startRun records the beginning of an operation. A store failure is logged
// and the operation proceeds unrecorded.
func (e *Engine) startRun(kind core.RunKind, input, hash string) *core.Run {
	if e.store == nil {
		return nil
	}
	run, err := e.store.CreateRun(kind, input, hash)
	if err != nil {
		e.logger.Warn("failed to record run", "kind", string(kind), "error", err.Error())
		return nil
	}
	e.logger.Debug("created run", "run_id", run.ID, "kind", string(kind))
	return run
}

// finishRun completes run with a status derived from opErr and returns the
// stored record.
func (e *Engine) finishRun(run *core.Run, stats core.RunStats, opErr error) *core.Run {
	if run == nil {
		return nil
	}

	status := RunStatus(opErr)
	msg := ""
	if opErr != nil {
		msg = opErr.Error()
	}
	if err := e.store.CompleteRun(run.ID, status, stats, msg); err != nil {
		e.logger.Warn("failed to complete run", "run_id", run.ID, "error", err.Error())
		return run
	}

	e.logger.Info("run finished", "run_id", run.ID, "kind", string(run.Kind), "status", string(status))
	if stored, err := e.store.GetRun(run.ID); err == nil {
		return stored
	}
	return run
}

// RunStatus maps an operation error to the recorded run status.
func RunStatus(err error) core.RunStatus {
	switch {
	case err == nil:
		return core.RunStatusCompleted
	case core.IsRejection(err):
		return core.RunStatusRejected
	default:
		return core.RunStatusFailed
	}
}

// stage times fn and reports it under name.
func (e *Engine) stage(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	e.metrics.ObserveStage(name, time.Since(start), err)
	if err != nil {
		e.logger.Debug("stage failed", "stage", name, "error", err.Error())
	}
	return err
}
