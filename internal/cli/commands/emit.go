package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfol/internal/cli/output"
	"github.com/leapstack-labs/leapfol/internal/watch"
)

// EmitOptions holds options for the emit command.
type EmitOptions struct {
	Output string
	Watch  bool
}

// NewEmitCommand creates the emit command.
func NewEmitCommand() *cobra.Command {
	opts := &EmitOptions{}

	cmd := &cobra.Command{
		Use:   "emit <file>",
		Short: "Emit a vocabulary as prover input",
		Long: `Check and compile a vocabulary, then print one typed first-order statement
per axiom in the prover's input syntax.

With --watch the file is re-emitted every time it changes until interrupted.`,
		Example: `  # Print prover input
  leapfol emit university.xml

  # Write it to a file and keep it current
  leapfol emit university.xml -o university.p --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write prover input to this file instead of stdout")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-emit when the file changes")

	return cmd
}

func runEmit(cmd *cobra.Command, path string, opts *EmitOptions) error {
	cc, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	emit := func(ctx context.Context) error {
		return emitOnce(ctx, cc, path, opts.Output)
	}

	if !opts.Watch {
		return emit(cmd.Context())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := emit(ctx); err != nil {
		cc.Renderer.Error(err.Error())
	}

	w, err := watch.New([]string{path}, watch.WithLogger(cc.Logger))
	if err != nil {
		return err
	}
	cc.Logger.Info("watching for changes", "path", path)
	return w.Run(ctx, func(ctx context.Context) error {
		err := emit(ctx)
		if err != nil {
			cc.Renderer.Error(err.Error())
		}
		return err
	})
}

func emitOnce(ctx context.Context, cc *CommandContext, path, dest string) error {
	r := cc.Renderer

	res, err := cc.Engine.Emit(ctx, path)
	if err != nil {
		return err
	}

	out := output.EmitOutput{
		Path:       path,
		Statements: res.Statements,
		Text:       res.Text,
		Run:        output.NewRunInfo(res.Run),
	}

	if dest != "" {
		if err := writeText(dest, res.Text); err != nil {
			return err
		}
		out.Written = dest
	}

	switch {
	case r.Structured():
		return r.Structure(out)
	case dest != "":
		r.Success(fmt.Sprintf("Wrote %d statements to %s", res.Statements, dest))
	default:
		if res.Text != "" {
			r.Println(res.Text)
		}
	}
	return nil
}

// writeText writes text with a trailing newline.
func writeText(path, text string) error {
	if text != "" {
		text += "\n"
	}
	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
