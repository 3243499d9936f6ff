package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfol/internal/cli/output"
)

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <file>...",
		Short: "Compile vocabularies to sorted first-order logic",
		Long: `Check and compile each vocabulary into sorted first-order logic. Files are
compiled in parallel, bounded by the workers setting.`,
		Example: `  # Compile one vocabulary
  leapfol compile university.xml

  # Compile many with 8 workers
  leapfol compile vocab/*.xml --workers 8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args)
		},
	}
}

func runCompile(cmd *cobra.Command, paths []string) error {
	cc, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	r := cc.Renderer

	results, compileErr := cc.Engine.Compile(cmd.Context(), paths...)

	outputs := make([]output.CompileOutput, 0, len(results))
	for _, res := range results {
		if res == nil {
			continue
		}
		out := output.CompileOutput{Path: res.Path, Status: "success", Declarations: []string{}}
		if res.Target != nil {
			for _, d := range res.Target.Decls {
				out.Declarations = append(out.Declarations, d.String())
			}
		} else if res.Err != nil {
			out.Status = statusName(res.Err)
			out.Error = res.Err.Error()
		}
		outputs = append(outputs, out)
	}

	if r.Structured() {
		if err := r.Structure(outputs); err != nil {
			return err
		}
		return compileErr
	}

	for _, out := range outputs {
		r.Header(2, out.Path)
		if out.Error != "" {
			r.StatusLine(out.Path, out.Status, out.Error)
			continue
		}
		if r.EffectiveMode() == output.ModeMarkdown {
			r.Println(output.FormatCodeBlock("", strings.Join(out.Declarations, "\n")))
			r.Println("")
			continue
		}
		for _, d := range out.Declarations {
			r.Println("  " + d)
		}
	}
	return compileErr
}
