package state

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapfol/pkg/core"
)

// SaveObligations stores the obligations of a run in one transaction.
// Seq is taken from each obligation as given.
func (s *SQLiteStore) SaveObligations(runID string, obligations []*core.Obligation) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT INTO obligations (run_id, seq, axiom_id, formula, tptp) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare obligation insert: %w", err)
	}
	defer stmt.Close()

	for _, ob := range obligations {
		if _, err := stmt.Exec(runID, ob.Seq, ob.AxiomID, ob.Formula, ob.TPTP); err != nil {
			return fmt.Errorf("failed to save obligation %d: %w", ob.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit obligations: %w", err)
	}

	s.logger.Debug("saved obligations", slog.String("run_id", runID), slog.Int("count", len(obligations)))
	return nil
}

// GetObligations returns the obligations of a run ordered by Seq.
func (s *SQLiteStore) GetObligations(runID string) ([]*core.Obligation, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.Query(
		`SELECT run_id, seq, axiom_id, formula, tptp FROM obligations WHERE run_id = ? ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get obligations: %w", err)
	}
	defer rows.Close()

	var out []*core.Obligation
	for rows.Next() {
		ob := &core.Obligation{}
		if err := rows.Scan(&ob.RunID, &ob.Seq, &ob.AxiomID, &ob.Formula, &ob.TPTP); err != nil {
			return nil, fmt.Errorf("failed to scan obligation: %w", err)
		}
		out = append(out, ob)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get obligations: %w", err)
	}

	return out, nil
}
