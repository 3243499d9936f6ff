package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapfol/internal/cli/config"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Key         string
	Type        string
	Default     string
	Flag        string
	Description string
}

// getConfigSchema returns the configuration schema, with defaults taken
// from config.Default.
func getConfigSchema() []ConfigField {
	d := config.Default()
	return []ConfigField{
		{Key: "state_path", Type: "string", Default: d.StatePath, Flag: "--state", Description: "SQLite database holding the run history"},
		{Key: "record", Type: "bool", Default: strconv.FormatBool(d.Record), Flag: "--record", Description: "Record runs and obligations in the state database"},
		{Key: "verbose", Type: "bool", Default: strconv.FormatBool(d.Verbose), Flag: "--verbose", Description: "Debug logging on stderr"},
		{Key: "output", Type: "string", Default: d.OutputFormat, Flag: "--format", Description: "Output format: auto, text, markdown, json, yaml"},
		{Key: "workers", Type: "int", Default: strconv.Itoa(d.Workers), Flag: "--workers", Description: "Vocabularies compiled in parallel"},
		{Key: "metrics_file", Type: "string", Default: "", Flag: "--metrics-file", Description: "Prometheus textfile written after each command"},
		{Key: "emit.label_prefix", Type: "string", Default: d.Emit.LabelPrefix, Flag: "--label-prefix", Description: "Label prefix for emitted axioms"},
		{Key: "emit.obligation_prefix", Type: "string", Default: d.Emit.ObligationPrefix, Flag: "--obligation-prefix", Description: "Label prefix for emitted proof obligations"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "leapfol configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("leapfol reads %s from the project root, the nearest ancestor directory containing one.",
		InlineCode(config.ConfigFileNames[0])))

	w.Header(2, "Settings")
	headers := []string{"Key", "Type", "Default", "Flag", "Environment", "Description"}
	var rows [][]string
	for _, f := range getConfigSchema() {
		defVal := "-"
		if f.Default != "" {
			defVal = InlineCode(f.Default)
		}
		rows = append(rows, []string{
			InlineCode(f.Key),
			f.Type,
			defVal,
			InlineCode(f.Flag),
			InlineCode(envName(f.Key)),
			f.Description,
		})
	}
	w.Table(headers, rows)

	w.Header(2, "Precedence")
	w.BulletList([]string{
		"Explicitly set command-line flags",
		"`LEAPFOL_*` environment variables",
		"The configuration file",
		"Built-in defaults",
	})
	w.Paragraph("Relative paths in the file resolve against the project root. Relative paths given as flags resolve against the working directory.")

	w.Header(2, "Default Configuration")
	starter, err := config.Starter()
	if err != nil {
		return fmt.Errorf("failed to render starter config: %w", err)
	}
	w.CodeBlock("yaml", string(starter))

	w.Header(2, "Environment Variables")
	w.Paragraph("Use `${VAR_NAME}` syntax to reference environment variables in path settings:")
	w.CodeBlock("yaml", `state_path: ${HOME}/.cache/leapfol/state.db`)

	filename := filepath.Join(outDir, "configuration.md")
	log.Printf("  Generated configuration.md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}

// envName returns the environment variable overriding key.
func envName(key string) string {
	return "LEAPFOL_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
