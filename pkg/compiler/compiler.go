// Package compiler elaborates a source-logic vocabulary into sorted
// first-order logic.
//
// A Compiler is one compilation run. Its fresh-name counter is private to the
// run, so every bound variable it introduces has a distinct name and
// concurrent runs on separate Compilers never share state.
package compiler

import (
	"fmt"

	"github.com/leapstack-labs/leapfol/pkg/bol"
	"github.com/leapstack-labs/leapfol/pkg/core"
	"github.com/leapstack-labs/leapfol/pkg/sfol"
)

// Fresh-variable prefixes.
const (
	prefixConcept     = "X" // Equal, Subset
	prefixRestriction = "Y" // restrictions, Domain, Range, PropertyDomain
	prefixComposition = "M" // Composition
)

// Compiler elaborates formulas of one source vocabulary.
type Compiler struct {
	source *bol.Vocabulary
	fresh  int
	sorts  map[bol.Type]bool
}

// New returns a compiler for source. The source vocabulary is retained to
// resolve property types at PropertyDomain sites.
func New(source *bol.Vocabulary) *Compiler {
	return &Compiler{source: source, sorts: make(map[bol.Type]bool)}
}

// Compile elaborates v in a fresh run.
func Compile(v *bol.Vocabulary) (*sfol.Vocabulary, error) {
	return New(v).Vocabulary()
}

// CompileFormula elaborates a single formula over source in a fresh run.
func CompileFormula(source *bol.Vocabulary, f bol.Formula) (sfol.Formula, error) {
	return New(source).Formula(f)
}

// SortOf returns the target sort of a data type.
func SortOf(t bol.Type) sfol.Sort {
	return sfol.AtomicSort{ID: t.String()}
}

// Fresh returns a new variable name with the given prefix, distinct from
// every name this compiler has returned before.
func (c *Compiler) Fresh(prefix string) string {
	name := fmt.Sprintf("%s_%d", prefix, c.fresh)
	c.fresh++
	return name
}

// Vocabulary elaborates every declaration of the source vocabulary in order.
func (c *Compiler) Vocabulary() (*sfol.Vocabulary, error) {
	out := &sfol.Vocabulary{}
	for i, d := range c.source.Decls {
		decls, err := c.Declaration(d)
		if err != nil {
			return nil, fmt.Errorf("declaration #%d: %w", i, err)
		}
		out.Decls = append(out.Decls, decls...)
	}
	return out, nil
}

// Declaration elaborates d. A property declaration is preceded by the
// declaration of its data sort the first time that sort is used.
func (c *Compiler) Declaration(d bol.Declaration) ([]sfol.Declaration, error) {
	switch d := d.(type) {
	case *bol.IndividualDecl:
		return []sfol.Declaration{&sfol.FunctionDecl{ID: d.ID, Result: sfol.Individual}}, nil
	case *bol.ConceptDecl:
		return []sfol.Declaration{&sfol.PredicateDecl{ID: d.ID, Params: []sfol.Sort{sfol.Individual}}}, nil
	case *bol.RelationDecl:
		return []sfol.Declaration{&sfol.PredicateDecl{ID: d.ID, Params: []sfol.Sort{sfol.Individual, sfol.Individual}}}, nil
	case *bol.PropertyDecl:
		var out []sfol.Declaration
		if !c.sorts[d.Type] {
			c.sorts[d.Type] = true
			out = append(out, &sfol.TypeDecl{ID: d.Type.String()})
		}
		return append(out, &sfol.PredicateDecl{ID: d.ID, Params: []sfol.Sort{sfol.Individual, SortOf(d.Type)}}), nil
	case *bol.Axiom:
		f, err := c.Formula(d.Formula)
		if err != nil {
			return nil, err
		}
		return []sfol.Declaration{&sfol.Axiom{Formula: f}}, nil
	default:
		return nil, core.Unsupported(core.StageCompile, d)
	}
}

// Formula elaborates f.
func (c *Compiler) Formula(f bol.Formula) (sfol.Formula, error) {
	switch f := f.(type) {
	case *bol.Equal:
		return c.quantifiedPair(f.Left, f.Right, func(l, r sfol.Formula) sfol.Formula {
			return &sfol.Iff{Left: l, Right: r}
		})

	case *bol.Subset:
		return c.quantifiedPair(f.Left, f.Right, func(l, r sfol.Formula) sfol.Formula {
			return &sfol.Implies{Left: l, Right: r}
		})

	case *bol.Isa:
		x, err := c.Individual(f.Individual)
		if err != nil {
			return nil, err
		}
		return c.Concept(f.Concept, x)

	case *bol.RelationAssertion:
		x, err := c.Individual(f.Subject)
		if err != nil {
			return nil, err
		}
		y, err := c.Individual(f.Object)
		if err != nil {
			return nil, err
		}
		return c.Relation(f.Relation, x, y)

	case *bol.PropertyAssertion:
		x, err := c.Individual(f.Individual)
		if err != nil {
			return nil, err
		}
		y, err := c.Value(f.Value)
		if err != nil {
			return nil, err
		}
		return c.Property(f.Property, x, y)

	default:
		return nil, core.Unsupported(core.StageCompile, f)
	}
}

func (c *Compiler) quantifiedPair(left, right bol.ConceptExpr, join func(l, r sfol.Formula) sfol.Formula) (sfol.Formula, error) {
	name := c.Fresh(prefixConcept)
	x := &sfol.Var{ID: name}
	l, err := c.Concept(left, x)
	if err != nil {
		return nil, err
	}
	r, err := c.Concept(right, x)
	if err != nil {
		return nil, err
	}
	return &sfol.ForAll{Var: name, Sort: sfol.Individual, Body: join(l, r)}, nil
}

// Individual elaborates i to a constant.
func (c *Compiler) Individual(i bol.IndividualExpr) (sfol.Term, error) {
	switch i := i.(type) {
	case *bol.IndividualRef:
		return sfol.Const(i.ID), nil
	default:
		return nil, core.Unsupported(core.StageCompile, i)
	}
}

// Value elaborates v to a literal of its data sort. Integers stay numeric so
// they never share a symbol with an individual.
func (c *Compiler) Value(v bol.Value) (sfol.Term, error) {
	if v == nil {
		return nil, core.Unsupported(core.StageCompile, v)
	}
	lit := &sfol.Literal{Text: v.Literal(), Sort: SortOf(v.Type())}
	switch v.Type() {
	case bol.TypeInteger, bol.TypeBigInteger:
		lit.Numeric = true
	}
	return lit, nil
}

// Property elaborates the assertion that individual x has value y for p.
func (c *Compiler) Property(p bol.PropertyExpr, x, y sfol.Term) (sfol.Formula, error) {
	switch p := p.(type) {
	case *bol.PropertyRef:
		return &sfol.Pred{ID: p.ID, Args: []sfol.Term{x, y}}, nil
	default:
		return nil, core.Unsupported(core.StageCompile, p)
	}
}
