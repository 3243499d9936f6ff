package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapfol/internal/cli/config"
)

func TestNewInitCommand(t *testing.T) {
	tests := []struct {
		name      string
		setupDir  func(t *testing.T, dir string)
		args      []string
		wantErr   bool
		wantFiles []string
	}{
		{
			name:      "init empty directory",
			args:      []string{},
			wantFiles: []string{"leapfol.yaml"},
		},
		{
			name: "init existing config without force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "leapfol.yaml"), []byte("existing"), 0600)
			},
			args:    []string{},
			wantErr: true,
		},
		{
			name: "init existing config with force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "leapfol.yaml"), []byte("existing"), 0600)
			},
			args:      []string{"--force"},
			wantFiles: []string{"leapfol.yaml"},
		},
		{
			name: "init with example",
			args: []string{"--example"},
			wantFiles: []string{
				"leapfol.yaml",
				".gitignore",
				"vocabularies/university.xml",
				"vocabularies/gender.xml",
				"vocabularies/gender_v2.xml",
				"morphisms/gender.morphism.xml",
			},
		},
		{
			name:      "init into new directory",
			args:      []string{"project"},
			wantFiles: []string{"project/leapfol.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Chdir(tmpDir)

			if tt.setupDir != nil {
				tt.setupDir(t, tmpDir)
			}

			cmd := NewInitCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.ExecuteContext(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			for _, f := range tt.wantFiles {
				_, err := os.Stat(filepath.Join(tmpDir, f))
				assert.False(t, os.IsNotExist(err), "expected file %q to exist", f)
			}
		})
	}
}

func TestInitCreatesLoadableConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	cmd := NewInitCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	content, err := os.ReadFile("leapfol.yaml")
	require.NoError(t, err)
	for _, expected := range []string{"state_path: .leapfol/state.db", "workers: 4", "label_prefix: axiom", "obligation_prefix: obligation"} {
		assert.Contains(t, string(content), expected, "config should contain %q", expected)
	}

	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, ".leapfol", "state.db"), cfg.StatePath)
}

func TestInitExampleVocabulariesCheck(t *testing.T) {
	dir := t.TempDir()
	files, err := copyTemplate("example", dir, false)
	require.NoError(t, err)
	assert.Contains(t, files, ".gitignore")

	env := &testEnv{dir: dir, cfg: config.Default()}
	env.cfg.Record = false
	env.cfg.OutputFormat = "markdown"

	for _, f := range []string{"vocabularies/university.xml", "vocabularies/gender.xml", "vocabularies/gender_v2.xml"} {
		_, _, err := env.run(t, NewCheckCommand(), env.path(f))
		assert.NoError(t, err, f)
	}

	out, _, err := env.run(t, NewMorphCommand(),
		env.path("vocabularies/gender.xml"), env.path("vocabularies/gender_v2.xml"), env.path("morphisms/gender.morphism.xml"))
	require.NoError(t, err)
	assert.Contains(t, out, "tff(axiom_0,axiom,")
	assert.Contains(t, out, "tff(obligation_0,conjecture,(cisman(A) | transman(A))).")
}
