package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapfol/internal/cli/config"
	"github.com/leapstack-labs/leapfol/internal/cli/output"
	"github.com/leapstack-labs/leapfol/internal/cli/testutil"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"check", "compile", "emit", "morph", "inspect", "history", "obligations", "init", "version", "completion"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"config", "state", "record", "workers", "label-prefix", "obligation-prefix", "metrics-file", "verbose", "format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRootFlagsReachCommands(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	t.Chdir(dir)
	state := filepath.Join(dir, "runs.db")

	out, _, err := execute(t, "emit", "student.xml", "--state", state, "--label-prefix", "uni", "--format", "markdown")
	require.NoError(t, err)
	assert.Equal(t, "tff(uni_0,axiom,Student(Tu)).\n", out)

	out, _, err = execute(t, "history", "--state", state, "-f", "json")
	require.NoError(t, err)
	var runs []output.RunInfo
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "emit", runs[0].Kind)
}

func TestRootConfigFile(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	testutil.WriteFile(t, dir, "leapfol.yaml", "record: false\noutput: markdown\nemit:\n  obligation_prefix: goal\n")
	t.Chdir(dir)

	out, _, err := execute(t, "morph", "domain.xml", "codomain.xml", "gender.morphism.xml")
	require.NoError(t, err)
	assert.Contains(t, out, "tff(goal_0,conjecture,(cisman(A) | transman(A))).")

	out, _, err = execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")
}

func TestRootVerbose(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	testutil.WriteFile(t, dir, "leapfol.yaml", "record: false\n")
	t.Chdir(dir)

	_, errOut, err := execute(t, "check", "student.xml", "-v", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Using config file: ")
	assert.Contains(t, errOut, "level=DEBUG")
}

func TestRootInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := execute(t, "check", "x.xml", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")

	_, _, err = execute(t, "check", "x.xml", "--workers", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers must be at least 1")
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, _, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "leapfol")
		})
	}

	_, _, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "leapfol "+Version)
}
