package config

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leapfol/internal/cli/output"
)

// labelPattern matches a prover statement label prefix.
var labelPattern = regexp.MustCompile(`^[a-z][A-Za-z0-9_]*$`)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Record && c.StatePath == "" {
		return fmt.Errorf("state_path is required when record is enabled")
	}
	if !output.ValidMode(c.OutputFormat) {
		return fmt.Errorf("unknown output format %q (want one of %s)", c.OutputFormat, strings.Join(output.Modes, ", "))
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if !labelPattern.MatchString(c.Emit.LabelPrefix) {
		return fmt.Errorf("emit.label_prefix %q must match %s", c.Emit.LabelPrefix, labelPattern)
	}
	if !labelPattern.MatchString(c.Emit.ObligationPrefix) {
		return fmt.Errorf("emit.obligation_prefix %q must match %s", c.Emit.ObligationPrefix, labelPattern)
	}
	return nil
}

// Starter renders the default configuration as a leapfol.yaml document.
func Starter() ([]byte, error) {
	out, err := yaml.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}
	return append([]byte("# leapfol configuration\n"), out...), nil
}
