package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfol/internal/cli/config"
	"github.com/leapstack-labs/leapfol/internal/cli/output"
	"github.com/leapstack-labs/leapfol/internal/engine"
	"github.com/leapstack-labs/leapfol/internal/metrics"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *engine.Engine
	Metrics  *metrics.Metrics
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with engine and renderer.
// Returns the context and a cleanup function that must be called (typically via defer).
// The cleanup closes the engine and writes the metrics textfile when one is configured.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cc := NewCommandContextWithoutEngine(cmd)
	if cc.Cfg.MetricsFile != "" {
		cc.Metrics = metrics.New()
	}

	eng, err := createEngine(cc.Cfg, cc.Logger, cc.Metrics)
	if err != nil {
		return nil, nil, err
	}
	cc.Engine = eng

	cleanup := func() {
		_ = eng.Close()
		if err := cc.Metrics.WriteTextfile(cc.Cfg.MetricsFile); err != nil {
			cc.Logger.Warn("failed to write metrics", "path", cc.Cfg.MetricsFile, "error", err.Error())
		}
	}
	return cc, cleanup, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without an engine.
// Useful for commands that don't need to load vocabularies.
func NewCommandContextWithoutEngine(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}
}

func createEngine(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*engine.Engine, error) {
	return engine.New(engine.Config{
		StatePath:        cfg.StatePath,
		Record:           cfg.Record,
		Workers:          cfg.Workers,
		LabelPrefix:      cfg.Emit.LabelPrefix,
		ObligationPrefix: cfg.Emit.ObligationPrefix,
		Metrics:          m,
		Logger:           logger,
	})
}

// openStore creates an engine that must record runs, for commands that
// read history.
func openStore(cmd *cobra.Command) (*CommandContext, func(), error) {
	cc := NewCommandContextWithoutEngine(cmd)
	cfg := *cc.Cfg
	cfg.Record = true
	eng, err := createEngine(&cfg, cc.Logger, nil)
	if err != nil {
		return nil, nil, err
	}
	cc.Engine = eng
	return cc, func() { _ = eng.Close() }, nil
}
