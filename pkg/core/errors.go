package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure classes. Use errors.Is to classify
// an error returned by any pipeline stage.
var (
	// ErrNotWellFormed marks an ordinary rejection: an undeclared reference,
	// a duplicate identifier, or a value/type mismatch.
	ErrNotWellFormed = errors.New("not well-formed")

	// ErrUnsupported marks a construct a stage does not handle. It is a defect
	// signal, never an ordinary rejection.
	ErrUnsupported = errors.New("unsupported construct")

	// ErrNotFound marks a failed lookup by identifier.
	ErrNotFound = errors.New("not found")
)

// Stage names used in UnsupportedError.
const (
	StageCheck    = "check"
	StageMorphism = "morphism"
	StageCompile  = "compile"
	StageEmit     = "emit"
	StageDecode   = "decode"
	StageEncode   = "encode"
)

// WellFormednessError reports the declaration (or assignment) that failed a check.
type WellFormednessError struct {
	Index  int    // position in the declaration or assignment sequence
	Decl   string // readable form of the offending declaration
	Reason string
}

func (e *WellFormednessError) Error() string {
	return fmt.Sprintf("not well-formed at #%d (%s): %s", e.Index, e.Decl, e.Reason)
}

// Is reports whether target is ErrNotWellFormed.
func (e *WellFormednessError) Is(target error) bool { return target == ErrNotWellFormed }

// UnsupportedError reports a construct that a stage cannot process.
type UnsupportedError struct {
	Stage     string
	Construct string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: unsupported construct %s", e.Stage, e.Construct)
}

// Is reports whether target is ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool { return target == ErrUnsupported }

// Unsupported builds an UnsupportedError naming the dynamic type of v.
func Unsupported(stage string, v any) error {
	return &UnsupportedError{Stage: stage, Construct: fmt.Sprintf("%T", v)}
}

// LookupError reports an identifier that could not be resolved.
type LookupError struct {
	Kind  string // individual, concept, relation, property, axiom
	ID    string
	Where string // what was searched: "domain", "codomain", "morphism", ...
}

func (e *LookupError) Error() string {
	if e.Where == "morphism" {
		return fmt.Sprintf("morphism not well-formed: no assignment for %s %q", e.Kind, e.ID)
	}
	return fmt.Sprintf("%s %q not found in %s", e.Kind, e.ID, e.Where)
}

// Is reports whether target is ErrNotFound.
func (e *LookupError) Is(target error) bool { return target == ErrNotFound }

// IsRejection reports whether err is an ordinary failure (not well-formed or
// lookup) rather than an unsupported-construct defect.
func IsRejection(err error) bool {
	return err != nil && !errors.Is(err, ErrUnsupported) &&
		(errors.Is(err, ErrNotWellFormed) || errors.Is(err, ErrNotFound))
}
