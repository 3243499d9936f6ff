package engine

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leapfol/pkg/bol"
	"github.com/leapstack-labs/leapfol/pkg/check"
	"github.com/leapstack-labs/leapfol/pkg/compiler"
	"github.com/leapstack-labs/leapfol/pkg/core"
	"github.com/leapstack-labs/leapfol/pkg/sfol"
	"github.com/leapstack-labs/leapfol/pkg/tptp"
)

// CheckResult is the outcome of checking one vocabulary file.
type CheckResult struct {
	Path       string
	Vocabulary *bol.Vocabulary
	Run        *core.Run
}

// CompileResult is the outcome of compiling one vocabulary file.
type CompileResult struct {
	Path   string
	Source *bol.Vocabulary
	Target *sfol.Vocabulary
	Err    error
	Run    *core.Run
}

// EmitResult is the prover text for one vocabulary file.
type EmitResult struct {
	Path       string
	Text       string
	Statements int
	Run        *core.Run
}

// Check loads and checks the vocabulary at path. A rejection is returned as
// an error matching core.ErrNotWellFormed; the result still names the run.
func (e *Engine) Check(ctx context.Context, path string) (*CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}

	run := e.startRun(core.RunKindCheck, path, hashSources(src))
	res := &CheckResult{Path: path}

	res.Vocabulary, err = e.checkedVocabulary(src)
	res.Run = e.finishRun(run, statsOf(res.Vocabulary), err)
	return res, err
}

// checkedVocabulary decodes and checks src. The vocabulary is returned even
// when the check fails.
func (e *Engine) checkedVocabulary(src *source) (*bol.Vocabulary, error) {
	v, err := e.decodeVocabulary(src)
	if err != nil {
		return nil, err
	}
	if err := e.stage(core.StageCheck, func() error { return check.Vocabulary(v) }); err != nil {
		return v, fmt.Errorf("%s: %w", src.path, err)
	}
	return v, nil
}

func (e *Engine) compile(src *source) (*bol.Vocabulary, *sfol.Vocabulary, error) {
	v, err := e.checkedVocabulary(src)
	if err != nil {
		return v, nil, err
	}
	var target *sfol.Vocabulary
	err = e.stage(core.StageCompile, func() error {
		var err error
		target, err = compiler.Compile(v)
		return err
	})
	if err != nil {
		return v, nil, fmt.Errorf("%s: %w", src.path, err)
	}
	return v, target, nil
}

// Compile checks and compiles every file, at most Workers at a time. Each
// file gets its own compiler. Results are in argument order; the first
// failure cancels files not yet started and is returned.
func (e *Engine) Compile(ctx context.Context, paths ...string) ([]*CompileResult, error) {
	results := make([]*CompileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src, err := readSource(path)
			if err != nil {
				return err
			}

			run := e.startRun(core.RunKindCompile, path, hashSources(src))
			res := &CompileResult{Path: path}
			res.Source, res.Target, err = e.compile(src)
			res.Err = err
			res.Run = e.finishRun(run, statsOf(res.Source), err)
			results[i] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	e.logger.Info("compiled vocabularies", "count", len(paths))
	return results, nil
}

// Emit checks, compiles and prints the vocabulary at path.
func (e *Engine) Emit(ctx context.Context, path string) (*EmitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}

	run := e.startRun(core.RunKindEmit, path, hashSources(src))
	res := &EmitResult{Path: path}

	v, target, err := e.compile(src)
	if err == nil {
		p := tptp.NewPrinter(tptp.WithLabelPrefix(e.labelPrefix))
		err = e.stage(core.StageEmit, func() error { return p.Vocabulary(target) })
		if err != nil {
			err = fmt.Errorf("%s: %w", path, err)
		} else {
			res.Text = p.String()
			res.Statements = p.Count()
			e.metrics.AddStatements(tptp.RoleAxiom, p.Count())
		}
	}

	res.Run = e.finishRun(run, statsOf(v), err)
	return res, err
}

// Inspect loads the vocabulary at path and reports whether it is well-formed
// without recording a run.
func (e *Engine) Inspect(path string) (*bol.Vocabulary, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	return e.checkedVocabulary(src)
}

func joinInputs(paths ...string) string {
	return strings.Join(paths, ",")
}
