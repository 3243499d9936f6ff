package output

import (
	"time"

	"github.com/leapstack-labs/leapfol/pkg/core"
)

// RunInfo describes a recorded run.
type RunInfo struct {
	ID          string `json:"id" yaml:"id"`
	Kind        string `json:"kind" yaml:"kind"`
	Input       string `json:"input" yaml:"input"`
	InputHash   string `json:"input_hash" yaml:"input_hash"`
	Status      string `json:"status" yaml:"status"`
	Decls       int    `json:"declarations" yaml:"declarations"`
	Axioms      int    `json:"axioms" yaml:"axioms"`
	Obligations int    `json:"obligations" yaml:"obligations"`
	StartedAt   string `json:"started_at" yaml:"started_at"`
	CompletedAt string `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewRunInfo converts a run record. It returns nil for a nil run.
func NewRunInfo(run *core.Run) *RunInfo {
	if run == nil {
		return nil
	}
	info := &RunInfo{
		ID:          run.ID,
		Kind:        string(run.Kind),
		Input:       run.Input,
		InputHash:   run.InputHash,
		Status:      string(run.Status),
		Decls:       run.Stats.Declarations,
		Axioms:      run.Stats.Axioms,
		Obligations: run.Stats.Obligations,
		StartedAt:   run.StartedAt.Format(time.RFC3339),
		Error:       run.Error,
	}
	if run.CompletedAt != nil {
		info.CompletedAt = run.CompletedAt.Format(time.RFC3339)
	}
	return info
}

// CheckOutput is the structured result of checking one file.
type CheckOutput struct {
	Path         string   `json:"path" yaml:"path"`
	WellFormed   bool     `json:"well_formed" yaml:"well_formed"`
	Status       string   `json:"status" yaml:"status"`
	Declarations int      `json:"declarations" yaml:"declarations"`
	Axioms       int      `json:"axioms" yaml:"axioms"`
	Error        string   `json:"error,omitempty" yaml:"error,omitempty"`
	Run          *RunInfo `json:"run,omitempty" yaml:"run,omitempty"`
}

// CompileOutput is the structured result of compiling one file.
type CompileOutput struct {
	Path         string   `json:"path" yaml:"path"`
	Status       string   `json:"status" yaml:"status"`
	Declarations []string `json:"declarations" yaml:"declarations"`
	Error        string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// EmitOutput is the structured result of emitting one file.
type EmitOutput struct {
	Path       string   `json:"path" yaml:"path"`
	Statements int      `json:"statements" yaml:"statements"`
	Text       string   `json:"text" yaml:"text"`
	Written    string   `json:"written,omitempty" yaml:"written,omitempty"`
	Run        *RunInfo `json:"run,omitempty" yaml:"run,omitempty"`
}

// ObligationInfo describes one proof obligation.
type ObligationInfo struct {
	Seq     int    `json:"seq" yaml:"seq"`
	AxiomID string `json:"axiom" yaml:"axiom"`
	Formula string `json:"formula" yaml:"formula"`
	TPTP    string `json:"tptp" yaml:"tptp"`
}

// MorphOutput is the structured result of checking a morphism.
type MorphOutput struct {
	WellFormed  bool             `json:"well_formed" yaml:"well_formed"`
	Status      string           `json:"status" yaml:"status"`
	Obligations []ObligationInfo `json:"obligations" yaml:"obligations"`
	Problem     string           `json:"problem,omitempty" yaml:"problem,omitempty"`
	Written     string           `json:"written,omitempty" yaml:"written,omitempty"`
	Error       string           `json:"error,omitempty" yaml:"error,omitempty"`
	Run         *RunInfo         `json:"run,omitempty" yaml:"run,omitempty"`
}

// DeclInfo describes one declaration of a vocabulary.
type DeclInfo struct {
	Index int    `json:"index" yaml:"index"`
	Kind  string `json:"kind" yaml:"kind"`
	Name  string `json:"name" yaml:"name"`
	Text  string `json:"text" yaml:"text"`
}

// InspectOutput is the structured listing of a vocabulary.
type InspectOutput struct {
	Path         string     `json:"path" yaml:"path"`
	WellFormed   bool       `json:"well_formed" yaml:"well_formed"`
	Error        string     `json:"error,omitempty" yaml:"error,omitempty"`
	Declarations []DeclInfo `json:"declarations" yaml:"declarations"`
}
