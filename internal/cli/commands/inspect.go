package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfol/internal/cli/output"
	"github.com/leapstack-labs/leapfol/pkg/bol"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "List the declarations of a vocabulary",
		Long: `Decode a vocabulary and list its declarations in order with their kind and
readable form, followed by the well-formedness verdict. Inspect never records
a run.`,
		Example: `  leapfol inspect university.xml
  leapfol inspect university.xml --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}

func runInspect(cmd *cobra.Command, path string) error {
	cc := NewCommandContextWithoutEngine(cmd)
	cfg := *cc.Cfg
	cfg.Record = false
	eng, err := createEngine(&cfg, cc.Logger, nil)
	if err != nil {
		return err
	}
	defer eng.Close()
	r := cc.Renderer

	v, checkErr := eng.Inspect(path)
	if v == nil {
		return checkErr
	}

	out := output.InspectOutput{
		Path:         path,
		WellFormed:   checkErr == nil,
		Declarations: declInfos(v),
	}
	if checkErr != nil {
		out.Error = checkErr.Error()
	}

	if r.Structured() {
		return r.Structure(out)
	}

	r.Header(1, fmt.Sprintf("%s (%d declarations)", path, len(out.Declarations)))
	rows := make([][]string, len(out.Declarations))
	for i, d := range out.Declarations {
		rows[i] = []string{strconv.Itoa(d.Index), d.Kind, d.Name, d.Text}
	}
	r.Table([]string{"#", "Kind", "Name", "Declaration"}, rows)
	r.Println("")
	if checkErr != nil {
		r.StatusLine(path, statusName(checkErr), out.Error)
	} else {
		r.StatusLine(path, "success", "well-formed")
	}
	return nil
}

func declInfos(v *bol.Vocabulary) []output.DeclInfo {
	infos := make([]output.DeclInfo, len(v.Decls))
	for i, d := range v.Decls {
		info := output.DeclInfo{Index: i, Text: d.String()}
		switch d := d.(type) {
		case bol.SymbolDecl:
			info.Kind, info.Name = d.Kind(), d.Name()
		case *bol.Axiom:
			info.Kind, info.Name = bol.KindAxiom, d.ID
		}
		infos[i] = info
	}
	return infos
}
