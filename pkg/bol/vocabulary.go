package bol

import (
	"fmt"
	"strings"
)

// Node is the base interface for all source-logic nodes.
type Node interface {
	fmt.Stringer
}

// Vocabulary is an ordered sequence of declarations.
type Vocabulary struct {
	Decls []Declaration
}

// NewVocabulary builds a vocabulary from declarations in order.
func NewVocabulary(decls ...Declaration) *Vocabulary {
	return &Vocabulary{Decls: decls}
}

func (v *Vocabulary) String() string {
	lines := make([]string, len(v.Decls))
	for i, d := range v.Decls {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

// Symbol returns the first symbol declaration named id, or nil.
func (v *Vocabulary) Symbol(id string) SymbolDecl {
	for _, d := range v.Decls {
		if s, ok := d.(SymbolDecl); ok && s.Name() == id {
			return s
		}
	}
	return nil
}

// Property returns the property declaration named id, or nil.
func (v *Vocabulary) Property(id string) *PropertyDecl {
	if p, ok := v.Symbol(id).(*PropertyDecl); ok {
		return p
	}
	return nil
}

// Axiom returns the first axiom whose identifier is id, or nil.
// Axiom identifiers are not required to be unique; the first match wins.
func (v *Vocabulary) Axiom(id string) *Axiom {
	for _, d := range v.Decls {
		if a, ok := d.(*Axiom); ok && a.ID == id {
			return a
		}
	}
	return nil
}

// Axioms returns the axioms in declaration order.
func (v *Vocabulary) Axioms() []*Axiom {
	var out []*Axiom
	for _, d := range v.Decls {
		if a, ok := d.(*Axiom); ok {
			out = append(out, a)
		}
	}
	return out
}

// ---------- Declarations ----------

// Declaration is a marker interface for vocabulary members.
type Declaration interface {
	Node
	declNode()
}

// SymbolDecl is a declaration that introduces a named symbol.
// Axioms are declarations but not symbol declarations.
type SymbolDecl interface {
	Declaration
	Name() string
	Kind() string
}

// IndividualDecl introduces an individual.
type IndividualDecl struct {
	ID string
}

func (*IndividualDecl) declNode() {}

// Name implements SymbolDecl.
func (d *IndividualDecl) Name() string { return d.ID }

// Kind implements SymbolDecl.
func (d *IndividualDecl) Kind() string { return KindIndividual }

func (d *IndividualDecl) String() string { return "Individual " + d.ID }

// ConceptDecl introduces a concept.
type ConceptDecl struct {
	ID string
}

func (*ConceptDecl) declNode() {}

// Name implements SymbolDecl.
func (d *ConceptDecl) Name() string { return d.ID }

// Kind implements SymbolDecl.
func (d *ConceptDecl) Kind() string { return KindConcept }

func (d *ConceptDecl) String() string { return "Concept " + d.ID }

// RelationDecl introduces a relation.
type RelationDecl struct {
	ID string
}

func (*RelationDecl) declNode() {}

// Name implements SymbolDecl.
func (d *RelationDecl) Name() string { return d.ID }

// Kind implements SymbolDecl.
func (d *RelationDecl) Kind() string { return KindRelation }

func (d *RelationDecl) String() string { return "Relation " + d.ID }

// PropertyDecl introduces a property whose values have the given type.
type PropertyDecl struct {
	ID   string
	Type Type
}

func (*PropertyDecl) declNode() {}

// Name implements SymbolDecl.
func (d *PropertyDecl) Name() string { return d.ID }

// Kind implements SymbolDecl.
func (d *PropertyDecl) Kind() string { return KindProperty }

func (d *PropertyDecl) String() string { return fmt.Sprintf("Property %s %s", d.ID, d.Type) }

// Axiom asserts a formula. ID is optional and exempt from uniqueness checks.
type Axiom struct {
	Formula Formula
	ID      string
}

func (*Axiom) declNode() {}

func (a *Axiom) String() string {
	if a.ID != "" {
		return fmt.Sprintf("Axiom %s: %s", a.ID, a.Formula)
	}
	return "Axiom " + a.Formula.String()
}

// Symbol kinds reported by SymbolDecl.Kind.
const (
	KindIndividual = "individual"
	KindConcept    = "concept"
	KindRelation   = "relation"
	KindProperty   = "property"
	KindAxiom      = "axiom"
)
