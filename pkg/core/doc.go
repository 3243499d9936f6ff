// Package core defines the shared language of the leapfol system.
//
// This package contains:
//   - The error taxonomy shared by the checker, morphism engine, compiler,
//     emitter and interchange codec (ErrNotWellFormed, ErrUnsupported, ErrNotFound)
//   - Persisted run and obligation records (Run, Obligation)
//   - The Store interface implemented by internal/state
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
