// Package morphism maps the symbols of a domain vocabulary to expressions over
// a codomain vocabulary and translates domain axioms into proof obligations.
//
// A Morphism is read left to right. Each assignment is validated against the
// domain and codomain, and an AxiomAssignment is translated using only the
// assignments accepted before it.
package morphism

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapfol/pkg/bol"
)

// Morphism is an ordered sequence of assignments.
type Morphism struct {
	Assignments []Assignment
}

// New builds a morphism from assignments in order.
func New(assignments ...Assignment) *Morphism {
	return &Morphism{Assignments: assignments}
}

func (m *Morphism) String() string {
	lines := make([]string, len(m.Assignments))
	for i, a := range m.Assignments {
		lines[i] = a.String()
	}
	return strings.Join(lines, "\n")
}

// Assignment maps one domain identifier.
type Assignment interface {
	bol.Node
	// Name is the domain identifier being assigned.
	Name() string
	// Kind is the declaration kind the identifier must have in the domain.
	Kind() string
	assignmentNode()
}

// IndividualAssignment maps a domain individual to a codomain individual.
type IndividualAssignment struct {
	ID         string
	Individual bol.IndividualExpr
}

func (*IndividualAssignment) assignmentNode() {}

// Name implements Assignment.
func (a *IndividualAssignment) Name() string { return a.ID }

// Kind implements Assignment.
func (a *IndividualAssignment) Kind() string { return bol.KindIndividual }

func (a *IndividualAssignment) String() string {
	return fmt.Sprintf("individual %s := %s", a.ID, a.Individual)
}

// ConceptAssignment maps a domain concept to a codomain concept expression.
type ConceptAssignment struct {
	ID      string
	Concept bol.ConceptExpr
}

func (*ConceptAssignment) assignmentNode() {}

// Name implements Assignment.
func (a *ConceptAssignment) Name() string { return a.ID }

// Kind implements Assignment.
func (a *ConceptAssignment) Kind() string { return bol.KindConcept }

func (a *ConceptAssignment) String() string {
	return fmt.Sprintf("concept %s := %s", a.ID, a.Concept)
}

// RelationAssignment maps a domain relation to a codomain relation expression.
type RelationAssignment struct {
	ID       string
	Relation bol.RelationExpr
}

func (*RelationAssignment) assignmentNode() {}

// Name implements Assignment.
func (a *RelationAssignment) Name() string { return a.ID }

// Kind implements Assignment.
func (a *RelationAssignment) Kind() string { return bol.KindRelation }

func (a *RelationAssignment) String() string {
	return fmt.Sprintf("relation %s := %s", a.ID, a.Relation)
}

// PropertyAssignment maps a domain property to a codomain property. Type must
// equal the declared type on both sides.
type PropertyAssignment struct {
	ID       string
	Type     bol.Type
	Property bol.PropertyExpr
}

func (*PropertyAssignment) assignmentNode() {}

// Name implements Assignment.
func (a *PropertyAssignment) Name() string { return a.ID }

// Kind implements Assignment.
func (a *PropertyAssignment) Kind() string { return bol.KindProperty }

func (a *PropertyAssignment) String() string {
	return fmt.Sprintf("property %s %s := %s", a.ID, a.Type, a.Property)
}

// AxiomAssignment asserts that the translated image of the named domain axiom
// holds in the codomain. It yields a proof obligation.
type AxiomAssignment struct {
	ID string
}

func (*AxiomAssignment) assignmentNode() {}

// Name implements Assignment.
func (a *AxiomAssignment) Name() string { return a.ID }

// Kind implements Assignment.
func (a *AxiomAssignment) Kind() string { return bol.KindAxiom }

func (a *AxiomAssignment) String() string { return "axiom " + a.ID }

// Obligation is a translated domain axiom whose truth in the codomain must be
// established by an external prover.
type Obligation struct {
	AxiomID string
	Formula bol.Formula
}

func (o Obligation) String() string {
	return fmt.Sprintf("Prove %s: %s", o.AxiomID, o.Formula)
}
