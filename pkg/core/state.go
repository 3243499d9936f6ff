package core

import "time"

// Store defines the interface for state management operations.
type Store interface {
	Open(path string) error
	Close() error
	InitSchema() error

	// Run operations
	CreateRun(kind RunKind, input, inputHash string) (*Run, error)
	GetRun(id string) (*Run, error)
	CompleteRun(id string, status RunStatus, stats RunStats, errMsg string) error
	GetLatestRun(kind RunKind) (*Run, error)
	ListRuns(limit int) ([]*Run, error)

	// Obligation operations
	SaveObligations(runID string, obligations []*Obligation) error
	GetObligations(runID string) ([]*Obligation, error)
}

// RunKind names the pipeline operation a run performed.
type RunKind string

// Run kinds.
const (
	RunKindCheck   RunKind = "check"
	RunKindCompile RunKind = "compile"
	RunKindEmit    RunKind = "emit"
	RunKindMorph   RunKind = "morph"
)

// RunStatus represents the status of a pipeline run.
type RunStatus string

// Run status constants.
const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusRejected  RunStatus = "rejected" // input was not well-formed
	RunStatusFailed    RunStatus = "failed"   // unsupported construct or I/O failure
)

// RunStats holds the counters recorded when a run completes.
type RunStats struct {
	Declarations int
	Axioms       int
	Obligations  int
}

// Run represents one invocation of a pipeline operation.
type Run struct {
	ID          string
	Kind        RunKind
	Input       string
	InputHash   string
	Status      RunStatus
	Stats       RunStats
	StartedAt   time.Time
	CompletedAt *time.Time
	Error       string
}

// Obligation is a persisted proof obligation produced by a morph run.
type Obligation struct {
	RunID   string
	Seq     int
	AxiomID string
	Formula string // readable source-logic rendering
	TPTP    string // emitted conjecture statement
}
