// Package check validates a source-logic vocabulary against itself.
//
// Declarations are processed left to right. Each one is checked against the
// prefix accepted before it, so a reference is valid only when it names a
// symbol declared at an earlier position. The first failing declaration ends
// the check; no partial diagnostics are collected.
package check

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/leapfol/pkg/bol"
	"github.com/leapstack-labs/leapfol/pkg/core"
)

// rejection is an ordinary well-formedness failure below declaration level.
type rejection struct {
	msg string
}

func (r *rejection) Error() string { return r.msg }

func (r *rejection) Is(target error) bool { return target == core.ErrNotWellFormed }

func reject(format string, args ...any) error {
	return &rejection{msg: fmt.Sprintf(format, args...)}
}

// Vocabulary checks every declaration of v in order. It returns nil when v is
// well-formed, a *core.WellFormednessError naming the first offending
// declaration, or an error matching core.ErrUnsupported.
func Vocabulary(v *bol.Vocabulary) error {
	scope := NewScope()
	for i, d := range v.Decls {
		if err := Declaration(d, scope); err != nil {
			return atDeclaration(i, d, err)
		}
		scope.Add(d)
	}
	return nil
}

// IsWellFormed reports whether v is well-formed. The error is non-nil only for
// unsupported constructs, so a false result with a nil error is an ordinary
// rejection.
func IsWellFormed(v *bol.Vocabulary) (bool, error) {
	err := Vocabulary(v)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, core.ErrUnsupported):
		return false, err
	default:
		return false, nil
	}
}

func atDeclaration(i int, d bol.Declaration, err error) error {
	if errors.Is(err, core.ErrUnsupported) {
		return fmt.Errorf("declaration #%d: %w", i, err)
	}
	name := "<nil>"
	if d != nil {
		name = d.String()
	}
	return &core.WellFormednessError{Index: i, Decl: name, Reason: err.Error()}
}

// Declaration checks d against the declarations in scope.
func Declaration(d bol.Declaration, scope *Scope) error {
	switch d := d.(type) {
	case *bol.IndividualDecl, *bol.ConceptDecl, *bol.RelationDecl, *bol.PropertyDecl:
		sym := d.(bol.SymbolDecl)
		if prev := scope.Lookup(sym.Name()); prev != nil {
			return reject("identifier %q already declared as %s", sym.Name(), prev.Kind())
		}
		return nil
	case *bol.Axiom:
		return Formula(d.Formula, scope)
	default:
		return core.Unsupported(core.StageCheck, d)
	}
}

// Formula checks every expression in f against scope.
func Formula(f bol.Formula, scope *Scope) error {
	switch f := f.(type) {
	case *bol.Isa:
		if err := IndividualExpr(f.Individual, scope); err != nil {
			return err
		}
		return ConceptExpr(f.Concept, scope)

	case *bol.RelationAssertion:
		if err := IndividualExpr(f.Subject, scope); err != nil {
			return err
		}
		if err := RelationExpr(f.Relation, scope); err != nil {
			return err
		}
		return IndividualExpr(f.Object, scope)

	case *bol.PropertyAssertion:
		if err := IndividualExpr(f.Individual, scope); err != nil {
			return err
		}
		decl, err := PropertyExpr(f.Property, scope)
		if err != nil {
			return err
		}
		return Value(decl, f.Value)

	case *bol.Equal:
		if err := ConceptExpr(f.Left, scope); err != nil {
			return err
		}
		return ConceptExpr(f.Right, scope)

	case *bol.Subset:
		if err := ConceptExpr(f.Left, scope); err != nil {
			return err
		}
		return ConceptExpr(f.Right, scope)

	default:
		return core.Unsupported(core.StageCheck, f)
	}
}

// IndividualExpr checks that i resolves to a declared individual.
func IndividualExpr(i bol.IndividualExpr, scope *Scope) error {
	switch i := i.(type) {
	case *bol.IndividualRef:
		return resolve(scope, bol.KindIndividual, i.ID)
	default:
		return core.Unsupported(core.StageCheck, i)
	}
}

// ConceptExpr checks every reference inside c.
func ConceptExpr(c bol.ConceptExpr, scope *Scope) error {
	switch c := c.(type) {
	case *bol.ConceptRef:
		return resolve(scope, bol.KindConcept, c.ID)
	case *bol.Universal, *bol.Empty:
		return nil
	case *bol.Union:
		return conceptPair(c.Left, c.Right, scope)
	case *bol.Intersect:
		return conceptPair(c.Left, c.Right, scope)
	case *bol.UniversalRestriction:
		if err := RelationExpr(c.Relation, scope); err != nil {
			return err
		}
		return ConceptExpr(c.Concept, scope)
	case *bol.ExistentialRestriction:
		if err := RelationExpr(c.Relation, scope); err != nil {
			return err
		}
		return ConceptExpr(c.Concept, scope)
	case *bol.Domain:
		return RelationExpr(c.Relation, scope)
	case *bol.Range:
		return RelationExpr(c.Relation, scope)
	case *bol.PropertyDomain:
		_, err := PropertyExpr(c.Property, scope)
		return err
	default:
		return core.Unsupported(core.StageCheck, c)
	}
}

func conceptPair(left, right bol.ConceptExpr, scope *Scope) error {
	if err := ConceptExpr(left, scope); err != nil {
		return err
	}
	return ConceptExpr(right, scope)
}

// RelationExpr checks every reference inside r.
func RelationExpr(r bol.RelationExpr, scope *Scope) error {
	switch r := r.(type) {
	case *bol.RelationRef:
		return resolve(scope, bol.KindRelation, r.ID)
	case *bol.RelationUnion:
		return relationPair(r.Left, r.Right, scope)
	case *bol.RelationIntersect:
		return relationPair(r.Left, r.Right, scope)
	case *bol.Composition:
		return relationPair(r.First, r.Second, scope)
	case *bol.TransitiveClosure:
		return RelationExpr(r.Relation, scope)
	case *bol.Dual:
		return RelationExpr(r.Relation, scope)
	case *bol.IdentityOverConcept:
		return ConceptExpr(r.Concept, scope)
	default:
		return core.Unsupported(core.StageCheck, r)
	}
}

func relationPair(left, right bol.RelationExpr, scope *Scope) error {
	if err := RelationExpr(left, scope); err != nil {
		return err
	}
	return RelationExpr(right, scope)
}

// PropertyExpr checks that p resolves to a declared property and returns
// that declaration.
func PropertyExpr(p bol.PropertyExpr, scope *Scope) (*bol.PropertyDecl, error) {
	switch p := p.(type) {
	case *bol.PropertyRef:
		if err := resolve(scope, bol.KindProperty, p.ID); err != nil {
			return nil, err
		}
		return scope.Lookup(p.ID).(*bol.PropertyDecl), nil
	default:
		return nil, core.Unsupported(core.StageCheck, p)
	}
}

// Value checks that v's tag equals the declared type of decl exactly.
func Value(decl *bol.PropertyDecl, v bol.Value) error {
	if v == nil {
		return core.Unsupported(core.StageCheck, v)
	}
	if v.Type() != decl.Type {
		return reject("value %s has type %s, property %q is declared %s", v, v.Type(), decl.ID, decl.Type)
	}
	if s, ok := v.(*bol.SemesterValue); ok && (s.Year < 0 || s.Year > 99) {
		return reject("semester year %d of property %q is not two digits", s.Year, decl.ID)
	}
	return nil
}

func resolve(scope *Scope, kind, id string) error {
	sym := scope.Lookup(id)
	if sym == nil {
		return reject("%s %q is not declared before use", kind, id)
	}
	if sym.Kind() != kind {
		return reject("%q is declared as %s, not %s", id, sym.Kind(), kind)
	}
	return nil
}
