package bol

import "fmt"

// ---------- Concept expressions ----------

// ConceptExpr is a marker interface for concept expressions.
type ConceptExpr interface {
	Node
	conceptNode()
}

// ConceptRef references a declared concept.
type ConceptRef struct {
	ID string
}

func (*ConceptRef) conceptNode() {}

func (c *ConceptRef) String() string { return "Concept " + c.ID }

// Universal is the concept containing every individual.
type Universal struct{}

func (*Universal) conceptNode() {}

func (*Universal) String() string { return "Any Concept" }

// Empty is the concept containing no individual.
type Empty struct{}

func (*Empty) conceptNode() {}

func (*Empty) String() string { return "Empty Concept" }

// Union is the union of two concepts.
type Union struct {
	Left  ConceptExpr
	Right ConceptExpr
}

func (*Union) conceptNode() {}

func (c *Union) String() string { return fmt.Sprintf("(%s U %s)", c.Left, c.Right) }

// Intersect is the intersection of two concepts.
type Intersect struct {
	Left  ConceptExpr
	Right ConceptExpr
}

func (*Intersect) conceptNode() {}

func (c *Intersect) String() string { return fmt.Sprintf("(%s n %s)", c.Left, c.Right) }

// UniversalRestriction holds for x when every r-successor of x is in Concept.
type UniversalRestriction struct {
	Relation RelationExpr
	Concept  ConceptExpr
}

func (*UniversalRestriction) conceptNode() {}

func (c *UniversalRestriction) String() string {
	return fmt.Sprintf("for all %s.%s", c.Relation, c.Concept)
}

// ExistentialRestriction holds for x when some r-successor of x is in Concept.
type ExistentialRestriction struct {
	Relation RelationExpr
	Concept  ConceptExpr
}

func (*ExistentialRestriction) conceptNode() {}

func (c *ExistentialRestriction) String() string {
	return fmt.Sprintf("exists %s.%s", c.Relation, c.Concept)
}

// Domain is the set of individuals with at least one r-successor.
type Domain struct {
	Relation RelationExpr
}

func (*Domain) conceptNode() {}

func (c *Domain) String() string { return fmt.Sprintf("domain %s", c.Relation) }

// Range is the set of individuals with at least one r-predecessor.
type Range struct {
	Relation RelationExpr
}

func (*Range) conceptNode() {}

func (c *Range) String() string { return fmt.Sprintf("range %s", c.Relation) }

// PropertyDomain is the set of individuals that have some value for a property.
type PropertyDomain struct {
	Property PropertyExpr
}

func (*PropertyDomain) conceptNode() {}

func (c *PropertyDomain) String() string { return fmt.Sprintf("property domain %s", c.Property) }

// ---------- Relation expressions ----------

// RelationExpr is a marker interface for relation expressions.
type RelationExpr interface {
	Node
	relationNode()
}

// RelationRef references a declared relation.
type RelationRef struct {
	ID string
}

func (*RelationRef) relationNode() {}

func (r *RelationRef) String() string { return "relation " + r.ID }

// RelationUnion is the union of two relations.
type RelationUnion struct {
	Left  RelationExpr
	Right RelationExpr
}

func (*RelationUnion) relationNode() {}

func (r *RelationUnion) String() string { return fmt.Sprintf("(%s U %s)", r.Left, r.Right) }

// RelationIntersect is the intersection of two relations.
type RelationIntersect struct {
	Left  RelationExpr
	Right RelationExpr
}

func (*RelationIntersect) relationNode() {}

func (r *RelationIntersect) String() string { return fmt.Sprintf("(%s n %s)", r.Left, r.Right) }

// Composition relates x to y when First relates x to some m and Second relates m to y.
type Composition struct {
	First  RelationExpr
	Second RelationExpr
}

func (*Composition) relationNode() {}

func (r *Composition) String() string { return fmt.Sprintf("%s;%s", r.First, r.Second) }

// TransitiveClosure is the transitive closure of a relation.
// It has no first-order elaboration; the compiler rejects it.
type TransitiveClosure struct {
	Relation RelationExpr
}

func (*TransitiveClosure) relationNode() {}

func (r *TransitiveClosure) String() string { return fmt.Sprintf("%s*", r.Relation) }

// Dual is the inverse of a relation.
type Dual struct {
	Relation RelationExpr
}

func (*Dual) relationNode() {}

func (r *Dual) String() string { return fmt.Sprintf("%s^-1", r.Relation) }

// IdentityOverConcept relates every member of Concept to itself and nothing else.
type IdentityOverConcept struct {
	Concept ConceptExpr
}

func (*IdentityOverConcept) relationNode() {}

func (r *IdentityOverConcept) String() string { return fmt.Sprintf("(%s,%s)", r.Concept, r.Concept) }

// ---------- Property and individual expressions ----------

// PropertyExpr is a marker interface for property expressions.
type PropertyExpr interface {
	Node
	propertyNode()
}

// PropertyRef references a declared property.
type PropertyRef struct {
	ID string
}

func (*PropertyRef) propertyNode() {}

func (p *PropertyRef) String() string { return "property " + p.ID }

// IndividualExpr is a marker interface for individual expressions.
type IndividualExpr interface {
	Node
	individualNode()
}

// IndividualRef references a declared individual.
type IndividualRef struct {
	ID string
}

func (*IndividualRef) individualNode() {}

func (i *IndividualRef) String() string { return "Individual " + i.ID }

// ---------- Shorthands ----------

// Individual returns a reference to the individual id.
func Individual(id string) *IndividualRef { return &IndividualRef{ID: id} }

// Concept returns a reference to the concept id.
func Concept(id string) *ConceptRef { return &ConceptRef{ID: id} }

// Relation returns a reference to the relation id.
func Relation(id string) *RelationRef { return &RelationRef{ID: id} }

// Property returns a reference to the property id.
func Property(id string) *PropertyRef { return &PropertyRef{ID: id} }
