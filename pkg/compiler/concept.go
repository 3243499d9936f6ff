package compiler

import (
	"github.com/leapstack-labs/leapfol/pkg/bol"
	"github.com/leapstack-labs/leapfol/pkg/core"
	"github.com/leapstack-labs/leapfol/pkg/sfol"
)

// Concept elaborates membership of x in ce.
func (c *Compiler) Concept(ce bol.ConceptExpr, x sfol.Term) (sfol.Formula, error) {
	switch ce := ce.(type) {
	case *bol.ConceptRef:
		return &sfol.Pred{ID: ce.ID, Args: []sfol.Term{x}}, nil

	case *bol.Universal:
		return &sfol.Truth{}, nil

	case *bol.Empty:
		return &sfol.Falsity{}, nil

	case *bol.Union:
		l, r, err := c.conceptPair(ce.Left, ce.Right, x)
		if err != nil {
			return nil, err
		}
		return &sfol.Or{Left: l, Right: r}, nil

	case *bol.Intersect:
		l, r, err := c.conceptPair(ce.Left, ce.Right, x)
		if err != nil {
			return nil, err
		}
		return &sfol.And{Left: l, Right: r}, nil

	case *bol.UniversalRestriction:
		name := c.Fresh(prefixRestriction)
		y := &sfol.Var{ID: name}
		rel, err := c.Relation(ce.Relation, x, y)
		if err != nil {
			return nil, err
		}
		sub, err := c.Concept(ce.Concept, y)
		if err != nil {
			return nil, err
		}
		return &sfol.ForAll{Var: name, Sort: sfol.Individual, Body: &sfol.Implies{Left: rel, Right: sub}}, nil

	case *bol.ExistentialRestriction:
		name := c.Fresh(prefixRestriction)
		y := &sfol.Var{ID: name}
		rel, err := c.Relation(ce.Relation, x, y)
		if err != nil {
			return nil, err
		}
		sub, err := c.Concept(ce.Concept, y)
		if err != nil {
			return nil, err
		}
		return &sfol.Exists{Var: name, Sort: sfol.Individual, Body: &sfol.And{Left: rel, Right: sub}}, nil

	case *bol.Domain:
		name := c.Fresh(prefixRestriction)
		rel, err := c.Relation(ce.Relation, x, &sfol.Var{ID: name})
		if err != nil {
			return nil, err
		}
		return &sfol.Exists{Var: name, Sort: sfol.Individual, Body: rel}, nil

	case *bol.Range:
		name := c.Fresh(prefixRestriction)
		rel, err := c.Relation(ce.Relation, &sfol.Var{ID: name}, x)
		if err != nil {
			return nil, err
		}
		return &sfol.Exists{Var: name, Sort: sfol.Individual, Body: rel}, nil

	case *bol.PropertyDomain:
		ref, ok := ce.Property.(*bol.PropertyRef)
		if !ok {
			return nil, core.Unsupported(core.StageCompile, ce.Property)
		}
		decl := c.source.Property(ref.ID)
		if decl == nil {
			return nil, &core.LookupError{Kind: bol.KindProperty, ID: ref.ID, Where: "source vocabulary"}
		}
		name := c.Fresh(prefixRestriction)
		prop, err := c.Property(ref, x, &sfol.Var{ID: name})
		if err != nil {
			return nil, err
		}
		return &sfol.Exists{Var: name, Sort: SortOf(decl.Type), Body: prop}, nil

	default:
		return nil, core.Unsupported(core.StageCompile, ce)
	}
}

func (c *Compiler) conceptPair(left, right bol.ConceptExpr, x sfol.Term) (sfol.Formula, sfol.Formula, error) {
	l, err := c.Concept(left, x)
	if err != nil {
		return nil, nil, err
	}
	r, err := c.Concept(right, x)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

// Relation elaborates the assertion that (x, y) is in re.
func (c *Compiler) Relation(re bol.RelationExpr, x, y sfol.Term) (sfol.Formula, error) {
	switch re := re.(type) {
	case *bol.RelationRef:
		return &sfol.Pred{ID: re.ID, Args: []sfol.Term{x, y}}, nil

	case *bol.RelationUnion:
		l, r, err := c.relationPair(re.Left, re.Right, x, y)
		if err != nil {
			return nil, err
		}
		return &sfol.Or{Left: l, Right: r}, nil

	case *bol.RelationIntersect:
		l, r, err := c.relationPair(re.Left, re.Right, x, y)
		if err != nil {
			return nil, err
		}
		return &sfol.And{Left: l, Right: r}, nil

	case *bol.Composition:
		name := c.Fresh(prefixComposition)
		m := &sfol.Var{ID: name}
		first, err := c.Relation(re.First, x, m)
		if err != nil {
			return nil, err
		}
		second, err := c.Relation(re.Second, m, y)
		if err != nil {
			return nil, err
		}
		return &sfol.Exists{Var: name, Sort: sfol.Individual, Body: &sfol.And{Left: first, Right: second}}, nil

	case *bol.Dual:
		return c.Relation(re.Relation, y, x)

	case *bol.IdentityOverConcept:
		member, err := c.Concept(re.Concept, x)
		if err != nil {
			return nil, err
		}
		return &sfol.And{Left: &sfol.Eq{Left: x, Right: y}, Right: member}, nil

	case *bol.TransitiveClosure:
		// not first-order definable
		return nil, core.Unsupported(core.StageCompile, re)

	default:
		return nil, core.Unsupported(core.StageCompile, re)
	}
}

func (c *Compiler) relationPair(left, right bol.RelationExpr, x, y sfol.Term) (sfol.Formula, sfol.Formula, error) {
	l, err := c.Relation(left, x, y)
	if err != nil {
		return nil, nil, err
	}
	r, err := c.Relation(right, x, y)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}
