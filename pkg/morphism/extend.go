package morphism

import (
	"github.com/leapstack-labs/leapfol/pkg/bol"
	"github.com/leapstack-labs/leapfol/pkg/core"
)

// Extension lifts symbol assignments to whole formulas by structural
// substitution. Every reference to a domain symbol is replaced by its assigned
// codomain expression; every other combinator is rebuilt over its translated
// operands.
type Extension struct {
	individuals map[string]bol.IndividualExpr
	concepts    map[string]bol.ConceptExpr
	relations   map[string]bol.RelationExpr
	properties  map[string]bol.PropertyExpr
}

// NewExtension returns an extension with no assignments.
func NewExtension(assignments ...Assignment) *Extension {
	e := &Extension{
		individuals: make(map[string]bol.IndividualExpr),
		concepts:    make(map[string]bol.ConceptExpr),
		relations:   make(map[string]bol.RelationExpr),
		properties:  make(map[string]bol.PropertyExpr),
	}
	for _, a := range assignments {
		e.Add(a)
	}
	return e
}

// Add makes a available to later translations. Axiom assignments carry no
// expression and are ignored.
func (e *Extension) Add(a Assignment) {
	switch a := a.(type) {
	case *IndividualAssignment:
		e.individuals[a.ID] = a.Individual
	case *ConceptAssignment:
		e.concepts[a.ID] = a.Concept
	case *RelationAssignment:
		e.relations[a.ID] = a.Relation
	case *PropertyAssignment:
		e.properties[a.ID] = a.Property
	}
}

// Has reports whether a symbol of the given kind has been assigned.
func (e *Extension) Has(kind, id string) bool {
	var ok bool
	switch kind {
	case bol.KindIndividual:
		_, ok = e.individuals[id]
	case bol.KindConcept:
		_, ok = e.concepts[id]
	case bol.KindRelation:
		_, ok = e.relations[id]
	case bol.KindProperty:
		_, ok = e.properties[id]
	}
	return ok
}

// Extend translates f under every symbol assignment of mor.
func Extend(mor *Morphism, f bol.Formula) (bol.Formula, error) {
	return NewExtension(mor.Assignments...).Formula(f)
}

func missing(kind, id string) error {
	return &core.LookupError{Kind: kind, ID: id, Where: "morphism"}
}

// Formula translates f.
func (e *Extension) Formula(f bol.Formula) (bol.Formula, error) {
	switch f := f.(type) {
	case *bol.Isa:
		ind, err := e.Individual(f.Individual)
		if err != nil {
			return nil, err
		}
		c, err := e.Concept(f.Concept)
		if err != nil {
			return nil, err
		}
		return &bol.Isa{Individual: ind, Concept: c}, nil

	case *bol.RelationAssertion:
		subj, err := e.Individual(f.Subject)
		if err != nil {
			return nil, err
		}
		r, err := e.Relation(f.Relation)
		if err != nil {
			return nil, err
		}
		obj, err := e.Individual(f.Object)
		if err != nil {
			return nil, err
		}
		return &bol.RelationAssertion{Subject: subj, Relation: r, Object: obj}, nil

	case *bol.PropertyAssertion:
		ind, err := e.Individual(f.Individual)
		if err != nil {
			return nil, err
		}
		p, err := e.Property(f.Property)
		if err != nil {
			return nil, err
		}
		return &bol.PropertyAssertion{Individual: ind, Property: p, Value: f.Value}, nil

	case *bol.Equal:
		l, r, err := e.conceptPair(f.Left, f.Right)
		if err != nil {
			return nil, err
		}
		return &bol.Equal{Left: l, Right: r}, nil

	case *bol.Subset:
		l, r, err := e.conceptPair(f.Left, f.Right)
		if err != nil {
			return nil, err
		}
		return &bol.Subset{Left: l, Right: r}, nil

	default:
		return nil, core.Unsupported(core.StageMorphism, f)
	}
}

// Individual translates i.
func (e *Extension) Individual(i bol.IndividualExpr) (bol.IndividualExpr, error) {
	switch i := i.(type) {
	case *bol.IndividualRef:
		if img, ok := e.individuals[i.ID]; ok {
			return img, nil
		}
		return nil, missing(bol.KindIndividual, i.ID)
	default:
		return nil, core.Unsupported(core.StageMorphism, i)
	}
}

// Property translates p.
func (e *Extension) Property(p bol.PropertyExpr) (bol.PropertyExpr, error) {
	switch p := p.(type) {
	case *bol.PropertyRef:
		if img, ok := e.properties[p.ID]; ok {
			return img, nil
		}
		return nil, missing(bol.KindProperty, p.ID)
	default:
		return nil, core.Unsupported(core.StageMorphism, p)
	}
}

// Concept translates c.
func (e *Extension) Concept(c bol.ConceptExpr) (bol.ConceptExpr, error) {
	switch c := c.(type) {
	case *bol.ConceptRef:
		if img, ok := e.concepts[c.ID]; ok {
			return img, nil
		}
		return nil, missing(bol.KindConcept, c.ID)

	case *bol.Universal, *bol.Empty:
		return c, nil

	case *bol.Union:
		l, r, err := e.conceptPair(c.Left, c.Right)
		if err != nil {
			return nil, err
		}
		return &bol.Union{Left: l, Right: r}, nil

	case *bol.Intersect:
		l, r, err := e.conceptPair(c.Left, c.Right)
		if err != nil {
			return nil, err
		}
		return &bol.Intersect{Left: l, Right: r}, nil

	case *bol.UniversalRestriction:
		r, sub, err := e.restriction(c.Relation, c.Concept)
		if err != nil {
			return nil, err
		}
		return &bol.UniversalRestriction{Relation: r, Concept: sub}, nil

	case *bol.ExistentialRestriction:
		r, sub, err := e.restriction(c.Relation, c.Concept)
		if err != nil {
			return nil, err
		}
		return &bol.ExistentialRestriction{Relation: r, Concept: sub}, nil

	case *bol.Domain:
		r, err := e.Relation(c.Relation)
		if err != nil {
			return nil, err
		}
		return &bol.Domain{Relation: r}, nil

	case *bol.Range:
		r, err := e.Relation(c.Relation)
		if err != nil {
			return nil, err
		}
		return &bol.Range{Relation: r}, nil

	case *bol.PropertyDomain:
		p, err := e.Property(c.Property)
		if err != nil {
			return nil, err
		}
		return &bol.PropertyDomain{Property: p}, nil

	default:
		return nil, core.Unsupported(core.StageMorphism, c)
	}
}

func (e *Extension) conceptPair(left, right bol.ConceptExpr) (bol.ConceptExpr, bol.ConceptExpr, error) {
	l, err := e.Concept(left)
	if err != nil {
		return nil, nil, err
	}
	r, err := e.Concept(right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func (e *Extension) restriction(rel bol.RelationExpr, c bol.ConceptExpr) (bol.RelationExpr, bol.ConceptExpr, error) {
	r, err := e.Relation(rel)
	if err != nil {
		return nil, nil, err
	}
	sub, err := e.Concept(c)
	if err != nil {
		return nil, nil, err
	}
	return r, sub, nil
}

// Relation translates r.
func (e *Extension) Relation(r bol.RelationExpr) (bol.RelationExpr, error) {
	switch r := r.(type) {
	case *bol.RelationRef:
		if img, ok := e.relations[r.ID]; ok {
			return img, nil
		}
		return nil, missing(bol.KindRelation, r.ID)

	case *bol.RelationUnion:
		l, rr, err := e.relationPair(r.Left, r.Right)
		if err != nil {
			return nil, err
		}
		return &bol.RelationUnion{Left: l, Right: rr}, nil

	case *bol.RelationIntersect:
		l, rr, err := e.relationPair(r.Left, r.Right)
		if err != nil {
			return nil, err
		}
		return &bol.RelationIntersect{Left: l, Right: rr}, nil

	case *bol.Composition:
		first, second, err := e.relationPair(r.First, r.Second)
		if err != nil {
			return nil, err
		}
		return &bol.Composition{First: first, Second: second}, nil

	case *bol.TransitiveClosure:
		sub, err := e.Relation(r.Relation)
		if err != nil {
			return nil, err
		}
		return &bol.TransitiveClosure{Relation: sub}, nil

	case *bol.Dual:
		sub, err := e.Relation(r.Relation)
		if err != nil {
			return nil, err
		}
		return &bol.Dual{Relation: sub}, nil

	case *bol.IdentityOverConcept:
		c, err := e.Concept(r.Concept)
		if err != nil {
			return nil, err
		}
		return &bol.IdentityOverConcept{Concept: c}, nil

	default:
		return nil, core.Unsupported(core.StageMorphism, r)
	}
}

func (e *Extension) relationPair(left, right bol.RelationExpr) (bol.RelationExpr, bol.RelationExpr, error) {
	l, err := e.Relation(left)
	if err != nil {
		return nil, nil, err
	}
	r, err := e.Relation(right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}
