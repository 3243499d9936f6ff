package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfol/internal/cli/output"
	"github.com/leapstack-labs/leapfol/pkg/core"
)

// DefaultHistoryLimit is the number of runs shown by default.
const DefaultHistoryLimit = 20

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs",
		Long:  `List the most recent check, compile, emit and morph runs from the state database, newest first.`,
		Example: `  leapfol history
  leapfol history --limit 5 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", DefaultHistoryLimit, "Maximum number of runs to show")

	return cmd
}

func runHistory(cmd *cobra.Command, limit int) error {
	cc, cleanup, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	r := cc.Renderer

	runs, err := cc.Engine.Store().ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	infos := make([]*output.RunInfo, len(runs))
	for i, run := range runs {
		infos[i] = output.NewRunInfo(run)
	}

	if r.Structured() {
		return r.Structure(infos)
	}

	r.Header(1, fmt.Sprintf("Runs (%d)", len(runs)))
	if len(runs) == 0 {
		r.Println("No runs recorded.")
		return nil
	}
	rows := make([][]string, len(runs))
	for i, run := range runs {
		rows[i] = []string{
			shortID(run.ID),
			string(run.Kind),
			string(run.Status),
			run.Input,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			runCounts(run),
		}
	}
	r.Table([]string{"ID", "Kind", "Status", "Input", "Started", "Counts"}, rows)
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func runCounts(run *core.Run) string {
	s := fmt.Sprintf("%d decls, %d axioms", run.Stats.Declarations, run.Stats.Axioms)
	if run.Kind == core.RunKindMorph {
		s += fmt.Sprintf(", %d obligations", run.Stats.Obligations)
	}
	return s
}
