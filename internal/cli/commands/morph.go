package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfol/internal/cli/output"
)

// NewMorphCommand creates the morph command.
func NewMorphCommand() *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "morph <domain> <codomain> <morphism>",
		Short: "Check a vocabulary morphism and emit its proof obligations",
		Long: `Check that a morphism maps every symbol of the domain vocabulary to a
well-formed expression over the codomain, then translate each mapped domain
axiom into a proof obligation.

The obligations are emitted as a prover problem: the codomain axioms followed
by one conjecture per obligation. Obligations are recorded in the run history.`,
		Example: `  # Print the obligations and the problem
  leapfol morph gender.xml gender_v2.xml gender.morphism.xml

  # Write the problem for a prover
  leapfol morph gender.xml gender_v2.xml gender.morphism.xml -o problem.p`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMorph(cmd, args[0], args[1], args[2], dest)
		},
	}

	cmd.Flags().StringVarP(&dest, "output", "o", "", "Write the prover problem to this file")

	return cmd
}

func runMorph(cmd *cobra.Command, domain, codomain, morphism, dest string) error {
	cc, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	r := cc.Renderer

	res, morphErr := cc.Engine.Morph(cmd.Context(), domain, codomain, morphism)
	if morphErr != nil && res == nil {
		return morphErr
	}

	out := output.MorphOutput{
		WellFormed:  morphErr == nil,
		Status:      statusName(morphErr),
		Obligations: make([]output.ObligationInfo, 0, len(res.Obligations)),
		Problem:     res.Problem,
		Run:         output.NewRunInfo(res.Run),
	}
	for i, ob := range res.Obligations {
		out.Obligations = append(out.Obligations, output.ObligationInfo{
			Seq:     i,
			AxiomID: ob.AxiomID,
			Formula: ob.Formula.String(),
			TPTP:    res.Conjectures[i],
		})
	}
	if morphErr != nil {
		out.Error = morphErr.Error()
	}

	if morphErr == nil && dest != "" {
		if err := writeText(dest, res.Problem); err != nil {
			return err
		}
		out.Written = dest
	}

	if r.Structured() {
		if err := r.Structure(out); err != nil {
			return err
		}
		return morphErr
	}

	if morphErr != nil {
		r.StatusLine(morphism, out.Status, out.Error)
		return morphErr
	}

	r.Header(1, fmt.Sprintf("Obligations (%d)", len(res.Obligations)))
	for _, ob := range res.Obligations {
		r.Println(ob.String())
	}
	r.Println("")

	switch {
	case dest != "":
		r.Success(fmt.Sprintf("Wrote problem to %s", dest))
	case res.Problem == "":
	case r.EffectiveMode() == output.ModeMarkdown:
		r.Header(2, "Problem")
		r.Println(output.FormatCodeBlock("tptp", res.Problem))
	default:
		r.Header(2, "Problem")
		r.Println(res.Problem)
	}
	return nil
}
