// Package state records pipeline runs and the proof obligations they produce
// in a SQLite database.
package state

import "github.com/leapstack-labs/leapfol/pkg/core"

// Type aliases for the persisted records defined in pkg/core.
type (
	// Store is an alias for core.Store.
	Store = core.Store

	// Run is an alias for core.Run.
	Run = core.Run

	// RunKind is an alias for core.RunKind.
	RunKind = core.RunKind

	// RunStatus is an alias for core.RunStatus.
	RunStatus = core.RunStatus

	// RunStats is an alias for core.RunStats.
	RunStats = core.RunStats

	// Obligation is an alias for core.Obligation.
	Obligation = core.Obligation
)

var _ Store = (*SQLiteStore)(nil)
