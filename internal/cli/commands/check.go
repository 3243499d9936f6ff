package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfol/internal/cli/output"
	"github.com/leapstack-labs/leapfol/internal/engine"
	"github.com/leapstack-labs/leapfol/pkg/core"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check vocabularies for well-formedness",
		Long: `Check that every reference in a vocabulary is declared before use, that no
identifier is declared twice and that property values match their declared type.

Exits non-zero if any vocabulary is not well-formed.`,
		Example: `  # Check a single vocabulary
  leapfol check university.xml

  # Check several and report as JSON
  leapfol check a.xml b.xml --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}
}

func runCheck(cmd *cobra.Command, paths []string) error {
	cc, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	r := cc.Renderer

	results := make([]output.CheckOutput, 0, len(paths))
	failed := 0
	for _, path := range paths {
		res, err := cc.Engine.Check(cmd.Context(), path)
		if err != nil && res == nil {
			return err
		}

		out := output.CheckOutput{
			Path:       path,
			WellFormed: err == nil,
			Status:     statusName(err),
			Run:        output.NewRunInfo(res.Run),
		}
		if res.Vocabulary != nil {
			out.Declarations = len(res.Vocabulary.Decls)
			out.Axioms = len(res.Vocabulary.Axioms())
		}
		if err != nil {
			out.Error = err.Error()
			failed++
		}
		results = append(results, out)
	}

	if r.Structured() {
		if err := r.Structure(results); err != nil {
			return err
		}
	} else {
		r.Header(1, "Check")
		for _, res := range results {
			detail := fmt.Sprintf("%d declarations, %d axioms", res.Declarations, res.Axioms)
			if res.Error != "" {
				detail = res.Error
			}
			r.StatusLine(res.Path, res.Status, detail)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d vocabularies not well-formed", failed, len(paths))
	}
	return nil
}

// statusName maps an operation error to a renderer status.
func statusName(err error) string {
	if s := engine.RunStatus(err); s != core.RunStatusCompleted {
		return string(s)
	}
	return "success"
}
