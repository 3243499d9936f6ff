package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfol/internal/cli/output"
	"github.com/leapstack-labs/leapfol/pkg/core"
)

// NewObligationsCommand creates the obligations command.
func NewObligationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "obligations [run-id]",
		Short: "Show the proof obligations of a morph run",
		Long: `Show the recorded proof obligations of a morph run. Without a run id the
latest morph run is used. A run id may be abbreviated to its first characters
as printed by history.`,
		Example: `  leapfol obligations
  leapfol obligations 3f2a9c1e`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			return runObligations(cmd, id)
		},
	}
}

func runObligations(cmd *cobra.Command, id string) error {
	cc, cleanup, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	r := cc.Renderer
	store := cc.Engine.Store()

	run, err := findMorphRun(store, id)
	if err != nil {
		return err
	}

	obligations, err := store.GetObligations(run.ID)
	if err != nil {
		return fmt.Errorf("failed to load obligations: %w", err)
	}

	infos := make([]output.ObligationInfo, len(obligations))
	for i, ob := range obligations {
		infos[i] = output.ObligationInfo{Seq: ob.Seq, AxiomID: ob.AxiomID, Formula: ob.Formula, TPTP: ob.TPTP}
	}

	if r.Structured() {
		return r.Structure(infos)
	}

	r.Header(1, fmt.Sprintf("Obligations of run %s (%d)", shortID(run.ID), len(infos)))
	if len(infos) == 0 {
		r.Println("No obligations recorded.")
		return nil
	}
	rows := make([][]string, len(infos))
	tptp := make([]string, len(infos))
	for i, ob := range infos {
		rows[i] = []string{strconv.Itoa(ob.Seq), ob.AxiomID, ob.Formula}
		tptp[i] = ob.TPTP
	}
	r.Table([]string{"#", "Axiom", "Formula"}, rows)
	r.Println("")
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatCodeBlock("tptp", strings.Join(tptp, "\n")))
	} else {
		r.Println(strings.Join(tptp, "\n"))
	}
	return nil
}

// findMorphRun resolves a full or abbreviated run id, or the latest morph run.
func findMorphRun(store core.Store, id string) (*core.Run, error) {
	if id == "" {
		run, err := store.GetLatestRun(core.RunKindMorph)
		if err != nil {
			return nil, err
		}
		if run == nil {
			return nil, fmt.Errorf("no morph runs recorded")
		}
		return run, nil
	}

	match, err := store.GetRun(id)
	if err != nil {
		runs, err := store.ListRuns(0)
		if err != nil {
			return nil, err
		}
		for _, run := range runs {
			if strings.HasPrefix(run.ID, id) {
				if match != nil {
					return nil, fmt.Errorf("run id %q is ambiguous", id)
				}
				match = run
			}
		}
	}
	if match == nil {
		return nil, &core.LookupError{Kind: "run", ID: id, Where: "state store"}
	}
	if match.Kind != core.RunKindMorph {
		return nil, fmt.Errorf("run %s is a %s run, not morph", shortID(match.ID), match.Kind)
	}
	return match, nil
}
