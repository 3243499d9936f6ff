package morphism

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/leapfol/pkg/bol"
	"github.com/leapstack-labs/leapfol/pkg/check"
	"github.com/leapstack-labs/leapfol/pkg/core"
)

// Check validates mor as a morphism from domain to codomain and returns one
// obligation per AxiomAssignment, in assignment order.
//
// A failing assignment yields a *core.WellFormednessError, a
// *core.LookupError when an identifier cannot be resolved, or an error
// matching core.ErrUnsupported.
func Check(domain, codomain *bol.Vocabulary, mor *Morphism) ([]Obligation, error) {
	target := check.NewScope(codomain.Decls...)
	ext := NewExtension()
	var obligations []Obligation

	for i, a := range mor.Assignments {
		ob, err := assignment(a, domain, target, ext)
		if err != nil {
			return nil, atAssignment(i, a, err)
		}
		if ob != nil {
			obligations = append(obligations, *ob)
		}
		ext.Add(a)
	}
	return obligations, nil
}

// IsWellFormed reports whether mor is a well-formed morphism from domain to
// codomain. The error is non-nil only for unsupported constructs.
func IsWellFormed(domain, codomain *bol.Vocabulary, mor *Morphism) (bool, []Obligation, error) {
	obligations, err := Check(domain, codomain, mor)
	switch {
	case err == nil:
		return true, obligations, nil
	case core.IsRejection(err):
		return false, nil, nil
	default:
		return false, nil, err
	}
}

func atAssignment(i int, a Assignment, err error) error {
	if errors.Is(err, core.ErrNotWellFormed) && !errors.Is(err, core.ErrUnsupported) {
		name := "<nil>"
		if a != nil {
			name = a.String()
		}
		return &core.WellFormednessError{Index: i, Decl: name, Reason: err.Error()}
	}
	return fmt.Errorf("assignment #%d: %w", i, err)
}

func assignment(a Assignment, domain *bol.Vocabulary, target *check.Scope, ext *Extension) (*Obligation, error) {
	if ax, ok := a.(*AxiomAssignment); ok {
		decl := domain.Axiom(ax.ID)
		if decl == nil {
			return nil, &core.LookupError{Kind: bol.KindAxiom, ID: ax.ID, Where: "domain"}
		}
		f, err := ext.Formula(decl.Formula)
		if err != nil {
			return nil, err
		}
		return &Obligation{AxiomID: ax.ID, Formula: f}, nil
	}

	if a == nil {
		return nil, core.Unsupported(core.StageMorphism, a)
	}
	if err := declaredInDomain(a, domain, ext); err != nil {
		return nil, err
	}

	switch a := a.(type) {
	case *IndividualAssignment:
		return nil, check.IndividualExpr(a.Individual, target)
	case *ConceptAssignment:
		return nil, check.ConceptExpr(a.Concept, target)
	case *RelationAssignment:
		return nil, check.RelationExpr(a.Relation, target)
	case *PropertyAssignment:
		decl, err := check.PropertyExpr(a.Property, target)
		if err != nil {
			return nil, err
		}
		if decl.Type != a.Type {
			return nil, reject("codomain property %q is declared %s, assignment says %s", decl.ID, decl.Type, a.Type)
		}
		if src := domain.Property(a.ID); src.Type != a.Type {
			return nil, reject("domain property %q is declared %s, assignment says %s", a.ID, src.Type, a.Type)
		}
		return nil, nil
	default:
		return nil, core.Unsupported(core.StageMorphism, a)
	}
}

// declaredInDomain checks that a names a domain symbol of the matching kind
// that has not been assigned yet.
func declaredInDomain(a Assignment, domain *bol.Vocabulary, ext *Extension) error {
	sym := domain.Symbol(a.Name())
	if sym == nil {
		return &core.LookupError{Kind: a.Kind(), ID: a.Name(), Where: "domain"}
	}
	if sym.Kind() != a.Kind() {
		return reject("%q is declared as %s in the domain, not %s", a.Name(), sym.Kind(), a.Kind())
	}
	if ext.Has(a.Kind(), a.Name()) {
		return reject("%s %q is assigned more than once", a.Kind(), a.Name())
	}
	return nil
}

type rejection struct {
	msg string
}

func (r *rejection) Error() string { return r.msg }

func (r *rejection) Is(target error) bool { return target == core.ErrNotWellFormed }

func reject(format string, args ...any) error {
	return &rejection{msg: fmt.Sprintf(format, args...)}
}
