package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapfol/internal/cli/config"
	"github.com/leapstack-labs/leapfol/internal/cli/output"
	"github.com/leapstack-labs/leapfol/internal/cli/testutil"
	"github.com/leapstack-labs/leapfol/pkg/core"
)

// testEnv is a fixture project with its own state database.
type testEnv struct {
	dir string
	cfg *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := testutil.SetupTestProject(t)
	cfg := config.Default()
	cfg.StatePath = filepath.Join(dir, ".leapfol", "state.db")
	cfg.OutputFormat = string(output.ModeMarkdown)
	return &testEnv{dir: dir, cfg: cfg}
}

func (e *testEnv) path(name string) string {
	return filepath.Join(e.dir, name)
}

func (e *testEnv) format(mode output.OutputMode) *testEnv {
	cfg := *e.cfg
	cfg.OutputFormat = string(mode)
	return &testEnv{dir: e.dir, cfg: &cfg}
}

// run executes cmd with args and returns stdout and stderr.
func (e *testEnv) run(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.ExecuteContext(config.WithConfig(context.Background(), e.cfg))
	return out.String(), errOut.String(), err
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewCheckCommand(), "check <file>...", nil},
		{NewCompileCommand(), "compile <file>...", nil},
		{NewEmitCommand(), "emit <file>", []string{"output", "watch"}},
		{NewMorphCommand(), "morph <domain> <codomain> <morphism>", []string{"output"}},
		{NewInspectCommand(), "inspect <file>", nil},
		{NewHistoryCommand(), "history", []string{"limit"}},
		{NewObligationsCommand(), "obligations [run-id]", nil},
		{NewInitCommand(), "init [directory]", []string{"force", "example"}},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			assert.NotEmpty(t, tt.cmd.Long, "Long should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

func TestCheckCommand(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run(t, NewCheckCommand(), env.path("student.xml"))
	require.NoError(t, err)
	assert.Contains(t, out, "# Check")
	assert.Contains(t, out, "- [ok] `"+env.path("student.xml")+"`: 4 declarations, 1 axioms")
	testutil.AssertValidMarkdown(t, out)
	testutil.AssertNoANSI(t, out)

	out, _, err = env.run(t, NewCheckCommand(), env.path("student.xml"), env.path("forward.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 vocabularies not well-formed")
	assert.Contains(t, out, "- [rejected] `"+env.path("forward.xml")+"`")
	assert.Contains(t, out, `concept "Student" is not declared before use`)
}

func TestCheckCommandJSON(t *testing.T) {
	env := newTestEnv(t).format(output.ModeJSON)

	out, _, err := env.run(t, NewCheckCommand(), env.path("student.xml"))
	require.NoError(t, err)

	var results []output.CheckOutput
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.True(t, results[0].WellFormed)
	assert.Equal(t, "success", results[0].Status)
	assert.Equal(t, 4, results[0].Declarations)
	require.NotNil(t, results[0].Run)
	assert.Equal(t, string(core.RunStatusCompleted), results[0].Run.Status)
}

func TestCheckCommandMissingFile(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.run(t, NewCheckCommand(), env.path("nope.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestCompileCommand(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run(t, NewCompileCommand(), env.path("student.xml"), env.path("domain.xml"))
	require.NoError(t, err)
	assert.Contains(t, out, "## "+env.path("student.xml"))
	assert.Contains(t, out, "Student(Tu)")
	assert.Contains(t, out, "man(A)")
	testutil.AssertValidMarkdown(t, out)

	out, _, err = env.run(t, NewCompileCommand(), env.path("closure.xml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnsupported)
	assert.Contains(t, out, "[failed]")
}

func TestEmitCommand(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run(t, NewEmitCommand(), env.path("student.xml"))
	require.NoError(t, err)
	assert.Equal(t, "tff(axiom_0,axiom,Student(Tu)).\n", out)

	dest := env.path("student.p")
	out, _, err = env.run(t, NewEmitCommand(), env.path("student.xml"), "-o", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 1 statements to "+dest)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "tff(axiom_0,axiom,Student(Tu)).\n", string(data))
}

func TestEmitCommandLabelPrefix(t *testing.T) {
	env := newTestEnv(t).format(output.ModeYAML)
	env.cfg.Emit.LabelPrefix = "uni"

	out, _, err := env.run(t, NewEmitCommand(), env.path("student.xml"))
	require.NoError(t, err)
	assert.Contains(t, out, "statements: 1")
	assert.Contains(t, out, "tff(uni_0,axiom,Student(Tu)).")
}

func TestEmitCommandRejected(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.run(t, NewEmitCommand(), env.path("forward.xml"))
	require.Error(t, err)
	assert.True(t, core.IsRejection(err))
}

func TestMorphCommand(t *testing.T) {
	env := newTestEnv(t)
	dest := env.path("problem.p")

	out, _, err := env.run(t, NewMorphCommand(),
		env.path("domain.xml"), env.path("codomain.xml"), env.path("gender.morphism.xml"), "-o", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "# Obligations (1)")
	assert.Contains(t, out, "Prove a_is_man: Individual A is a (Concept cisman U Concept transman)")
	assert.Contains(t, out, "Wrote problem to "+dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "tff(obligation_0,conjecture,(cisman(A) | transman(A))).\n", string(data))
}

func TestMorphCommandJSON(t *testing.T) {
	env := newTestEnv(t).format(output.ModeJSON)

	out, _, err := env.run(t, NewMorphCommand(),
		env.path("domain.xml"), env.path("codomain.xml"), env.path("gender.morphism.xml"))
	require.NoError(t, err)

	var res output.MorphOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.WellFormed)
	require.Len(t, res.Obligations, 1)
	assert.Equal(t, "a_is_man", res.Obligations[0].AxiomID)
	assert.Equal(t, "tff(obligation_0,conjecture,(cisman(A) | transman(A))).", res.Obligations[0].TPTP)
	require.NotNil(t, res.Run)
	assert.Equal(t, 1, res.Run.Obligations)
}

func TestMorphCommandRejected(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run(t, NewMorphCommand(),
		env.path("domain.xml"), env.path("student.xml"), env.path("gender.morphism.xml"))
	require.Error(t, err)
	assert.True(t, core.IsRejection(err))
	assert.Contains(t, out, "[rejected]")
}

func TestInspectCommand(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run(t, NewInspectCommand(), env.path("student.xml"))
	require.NoError(t, err)
	assert.Contains(t, out, "(4 declarations)")
	assert.Contains(t, out, "| 0 | concept | Student | Concept Student |")
	assert.Contains(t, out, "| 3 | axiom |")
	assert.Contains(t, out, "Axiom Individual Tu is a Concept Student")
	assert.Contains(t, out, "well-formed")

	out, _, err = env.run(t, NewInspectCommand(), env.path("forward.xml"))
	require.NoError(t, err)
	assert.Contains(t, out, "[rejected]")

	// inspect never records
	out, _, err = env.run(t, NewHistoryCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")
}

func TestHistoryCommand(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, NewCheckCommand(), env.path("student.xml"))
	require.NoError(t, err)
	_, _, _ = env.run(t, NewEmitCommand(), env.path("forward.xml"))

	out, _, err := env.format(output.ModeJSON).run(t, NewHistoryCommand())
	require.NoError(t, err)
	var runs []output.RunInfo
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 2)
	assert.Equal(t, "emit", runs[0].Kind)
	assert.Equal(t, string(core.RunStatusRejected), runs[0].Status)
	assert.Equal(t, "check", runs[1].Kind)

	out, _, err = env.run(t, NewHistoryCommand(), "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "# Runs (1)")
	assert.Contains(t, out, "| emit | rejected |")
}

func TestHistoryWithoutRecording(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Record = false

	_, _, err := env.run(t, NewCheckCommand(), env.path("student.xml"))
	require.NoError(t, err)

	out, _, err := env.run(t, NewHistoryCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")
}

func TestObligationsCommand(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, NewObligationsCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no morph runs recorded")

	out, _, err := env.format(output.ModeJSON).run(t, NewMorphCommand(),
		env.path("domain.xml"), env.path("codomain.xml"), env.path("gender.morphism.xml"))
	require.NoError(t, err)
	var res output.MorphOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	runID := res.Run.ID

	out, _, err = env.run(t, NewObligationsCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "| 0 | a_is_man |")
	assert.Contains(t, out, "```tptp\ntff(obligation_0,conjecture,(cisman(A) | transman(A))).\n```")

	out, _, err = env.format(output.ModeJSON).run(t, NewObligationsCommand(), runID[:8])
	require.NoError(t, err)
	var obs []output.ObligationInfo
	require.NoError(t, json.Unmarshal([]byte(out), &obs))
	require.Len(t, obs, 1)
	assert.Equal(t, "Individual A is a (Concept cisman U Concept transman)", obs[0].Formula)

	_, _, err = env.run(t, NewObligationsCommand(), "zzzzzzzz")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestObligationsOfOtherRunKind(t *testing.T) {
	env := newTestEnv(t).format(output.ModeJSON)

	out, _, err := env.run(t, NewCheckCommand(), env.path("student.xml"))
	require.NoError(t, err)
	var results []output.CheckOutput
	require.NoError(t, json.Unmarshal([]byte(out), &results))

	_, _, err = env.run(t, NewObligationsCommand(), results[0].Run.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a check run, not morph")
}

func TestMetricsFile(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.MetricsFile = env.path("metrics.prom")

	_, _, err := env.run(t, NewCheckCommand(), env.path("student.xml"))
	require.NoError(t, err)

	data, err := os.ReadFile(env.cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `leapfol_stage_total{outcome="ok",stage="check"} 1`)
}
