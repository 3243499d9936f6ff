package engine

import (
	"context"
	"fmt"

	"github.com/leapstack-labs/leapfol/pkg/bol"
	"github.com/leapstack-labs/leapfol/pkg/compiler"
	"github.com/leapstack-labs/leapfol/pkg/core"
	"github.com/leapstack-labs/leapfol/pkg/morphism"
	"github.com/leapstack-labs/leapfol/pkg/sfol"
	"github.com/leapstack-labs/leapfol/pkg/tptp"
)

// MorphResult is the outcome of checking a morphism between two vocabularies.
type MorphResult struct {
	Obligations []morphism.Obligation
	// Problem is a prover problem: the codomain axioms followed by one
	// conjecture per obligation.
	Problem string
	// Conjectures holds the emitted conjecture statement of each obligation.
	Conjectures []string
	Run         *core.Run
}

// Morph checks both vocabularies, validates the morphism between them and
// translates the obligations into a prover problem over the codomain.
func (e *Engine) Morph(ctx context.Context, domainPath, codomainPath, morphismPath string) (*MorphResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sources []*source
	for _, p := range []string{domainPath, codomainPath, morphismPath} {
		src, err := readSource(p)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	run := e.startRun(core.RunKindMorph, joinInputs(domainPath, codomainPath, morphismPath), hashSources(sources...))
	res, stats, err := e.morph(sources[0], sources[1], sources[2])
	if err == nil && run != nil {
		err = e.saveObligations(run.ID, res)
	}
	finished := e.finishRun(run, stats, err)
	if res == nil {
		res = &MorphResult{}
	}
	res.Run = finished
	return res, err
}

func (e *Engine) morph(domSrc, codSrc, morSrc *source) (*MorphResult, core.RunStats, error) {
	var stats core.RunStats

	domain, err := e.checkedVocabulary(domSrc)
	if err != nil {
		return nil, stats, err
	}
	codomain, err := e.checkedVocabulary(codSrc)
	if err != nil {
		return nil, stats, err
	}
	stats = statsOf(codomain)

	mor, err := e.decodeMorphism(morSrc)
	if err != nil {
		return nil, stats, err
	}

	var obligations []morphism.Obligation
	err = e.stage(core.StageMorphism, func() error {
		var err error
		obligations, err = morphism.Check(domain, codomain, mor)
		return err
	})
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", morSrc.path, err)
	}
	stats.Obligations = len(obligations)
	e.metrics.AddObligations(len(obligations))

	res := &MorphResult{Obligations: obligations}
	if err := e.problem(codomain, res); err != nil {
		return nil, stats, fmt.Errorf("%s: %w", codSrc.path, err)
	}
	return res, stats, nil
}

// problem compiles the codomain and the obligations with one compiler so
// bound variable names never repeat within the problem.
func (e *Engine) problem(codomain *bol.Vocabulary, res *MorphResult) error {
	c := compiler.New(codomain)

	var (
		target   *sfol.Vocabulary
		formulas []sfol.Formula
	)
	err := e.stage(core.StageCompile, func() error {
		var err error
		if target, err = c.Vocabulary(); err != nil {
			return err
		}
		for _, ob := range res.Obligations {
			f, err := c.Formula(ob.Formula)
			if err != nil {
				return fmt.Errorf("obligation %s: %w", ob.AxiomID, err)
			}
			formulas = append(formulas, f)
		}
		return nil
	})
	if err != nil {
		return err
	}

	axioms := tptp.NewPrinter(tptp.WithLabelPrefix(e.labelPrefix))
	conjectures := tptp.NewPrinter(tptp.WithLabelPrefix(e.obligationPrefix))
	err = e.stage(core.StageEmit, func() error {
		if err := axioms.Vocabulary(target); err != nil {
			return err
		}
		for _, f := range formulas {
			if err := conjectures.Statement(tptp.RoleConjecture, f); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	res.Conjectures = conjectures.Statements()
	e.metrics.AddStatements(tptp.RoleAxiom, axioms.Count())
	e.metrics.AddStatements(tptp.RoleConjecture, conjectures.Count())

	switch {
	case axioms.Count() == 0:
		res.Problem = conjectures.String()
	case conjectures.Count() == 0:
		res.Problem = axioms.String()
	default:
		res.Problem = axioms.String() + "\n" + conjectures.String()
	}
	return nil
}

func (e *Engine) saveObligations(runID string, res *MorphResult) error {
	records := make([]*core.Obligation, len(res.Obligations))
	for i, ob := range res.Obligations {
		records[i] = &core.Obligation{
			RunID:   runID,
			Seq:     i,
			AxiomID: ob.AxiomID,
			Formula: ob.Formula.String(),
			TPTP:    res.Conjectures[i],
		}
	}
	if err := e.store.SaveObligations(runID, records); err != nil {
		return fmt.Errorf("failed to record obligations: %w", err)
	}
	return nil
}
