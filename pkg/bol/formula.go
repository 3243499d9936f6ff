package bol

import "fmt"

// Formula is a marker interface for assertions.
type Formula interface {
	Node
	formulaNode()
}

// Isa asserts that an individual is a member of a concept.
type Isa struct {
	Individual IndividualExpr
	Concept    ConceptExpr
}

func (*Isa) formulaNode() {}

func (f *Isa) String() string { return fmt.Sprintf("%s is a %s", f.Individual, f.Concept) }

// RelationAssertion asserts that a relation holds between two individuals.
type RelationAssertion struct {
	Subject  IndividualExpr
	Relation RelationExpr
	Object   IndividualExpr
}

func (*RelationAssertion) formulaNode() {}

func (f *RelationAssertion) String() string {
	return fmt.Sprintf("%s %s %s", f.Subject, f.Relation, f.Object)
}

// PropertyAssertion asserts that an individual has a property value.
type PropertyAssertion struct {
	Individual IndividualExpr
	Property   PropertyExpr
	Value      Value
}

func (*PropertyAssertion) formulaNode() {}

func (f *PropertyAssertion) String() string {
	return fmt.Sprintf("%s %s %s", f.Individual, f.Property, f.Value)
}

// Equal asserts that two concepts have the same members.
type Equal struct {
	Left  ConceptExpr
	Right ConceptExpr
}

func (*Equal) formulaNode() {}

func (f *Equal) String() string { return fmt.Sprintf("%s == %s", f.Left, f.Right) }

// Subset asserts that every member of Left is a member of Right.
type Subset struct {
	Left  ConceptExpr
	Right ConceptExpr
}

func (*Subset) formulaNode() {}

func (f *Subset) String() string { return fmt.Sprintf("%s belongs to %s", f.Left, f.Right) }
