// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/leapfol/internal/cli/output"
)

// Vocabulary documents written by SetupTestProject.
const (
	StudentVocabulary = `<vocabulary>
  <concdecl name="Student"/>
  <concdecl name="Lecturer"/>
  <inddecl name="Tu"/>
  <axiom>
    <concassert>
      <indref name="Tu"/>
      <concref name="Student"/>
    </concassert>
  </axiom>
</vocabulary>
`

	ForwardVocabulary = `<vocabulary>
  <inddecl name="Tu"/>
  <axiom>
    <concassert>
      <indref name="Tu"/>
      <concref name="Student"/>
    </concassert>
  </axiom>
  <concdecl name="Student"/>
</vocabulary>
`

	ClosureVocabulary = `<vocabulary>
  <inddecl name="a"/>
  <reldecl name="r"/>
  <axiom>
    <relassert>
      <indref name="a"/>
      <reltrans>
        <relref name="r"/>
      </reltrans>
      <indref name="a"/>
    </relassert>
  </axiom>
</vocabulary>
`

	DomainVocabulary = `<vocabulary>
  <inddecl name="A"/>
  <concdecl name="man"/>
  <axiom name="a_is_man">
    <concassert>
      <indref name="A"/>
      <concref name="man"/>
    </concassert>
  </axiom>
</vocabulary>
`

	CodomainVocabulary = `<vocabulary>
  <inddecl name="A"/>
  <concdecl name="cisman"/>
  <concdecl name="transman"/>
</vocabulary>
`

	GenderMorphism = `<morphism>
  <indassign name="A">
    <indref name="A"/>
  </indassign>
  <concassign name="man">
    <concunion>
      <concref name="cisman"/>
      <concref name="transman"/>
    </concunion>
  </concassign>
  <axiomassign name="a_is_man"/>
</morphism>
`
)

// SetupTestProject creates a temporary project holding the fixture
// documents above and returns its directory.
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	files := map[string]string{
		"student.xml":         StudentVocabulary,
		"forward.xml":         ForwardVocabulary,
		"closure.xml":         ClosureVocabulary,
		"domain.xml":          DomainVocabulary,
		"codomain.xml":        CodomainVocabulary,
		"gender.morphism.xml": GenderMorphism,
	}
	for name, content := range files {
		WriteFile(t, tmpDir, name, content)
	}
	return tmpDir
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	return path
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and empty headers.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	fenceCount := strings.Count(md, "```")
	if fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	lines := strings.Split(md, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
