package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfol/internal/cli/config"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var example bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new leapfol project",
		Long: `Initialize a new leapfol project by writing a leapfol.yaml holding the
default configuration.

Use --example to also create sample vocabularies and a morphism between two
of them.`,
		Example: `  # Initialize in current directory
  leapfol init

  # Initialize a new directory with example vocabularies
  leapfol init my-project --example

  # Force overwrite existing config
  leapfol init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force, example)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&example, "example", false, "Create example vocabularies and a morphism")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force, example bool) error {
	r := NewCommandContextWithoutEngine(cmd).Renderer

	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, config.ConfigFileNames[0])
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.ConfigFileNames[0])
	}

	starter, err := config.Starter()
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, starter, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	r.StatusLine(config.ConfigFileNames[0], "success", "")

	if example {
		files, err := copyTemplate("example", dir, force)
		if err != nil {
			return fmt.Errorf("failed to initialize project: %w", err)
		}
		for _, f := range files {
			r.StatusLine(f, "success", "")
		}
	}

	r.Println("")
	r.Success("leapfol project initialized!")
	r.Println("")
	r.Println("Next steps:")
	if example {
		r.Println("  leapfol check vocabularies/university.xml")
		r.Println("  leapfol emit vocabularies/university.xml")
		r.Println("  leapfol morph vocabularies/gender.xml vocabularies/gender_v2.xml morphisms/gender.morphism.xml")
	} else {
		r.Println("  1. Write a vocabulary document")
		r.Println("  2. Run 'leapfol check <file>' to validate it")
		r.Println("  3. Run 'leapfol emit <file>' to produce prover input")
	}
	return nil
}
