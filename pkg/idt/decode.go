package idt

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/leapstack-labs/leapfol/pkg/bol"
	"github.com/leapstack-labs/leapfol/pkg/morphism"
)

// DecodeVocabulary reads a vocabulary document.
func DecodeVocabulary(r io.Reader) (*bol.Vocabulary, error) {
	root, err := decodeRoot(r, RootVocabulary)
	if err != nil {
		return nil, err
	}
	v := &bol.Vocabulary{}
	for i, c := range root.Children {
		d, err := declaration(c)
		if err != nil {
			return nil, fmt.Errorf("declaration #%d: %w", i, err)
		}
		v.Decls = append(v.Decls, d)
	}
	return v, nil
}

// DecodeMorphism reads a morphism document.
func DecodeMorphism(r io.Reader) (*morphism.Morphism, error) {
	root, err := decodeRoot(r, RootMorphism)
	if err != nil {
		return nil, err
	}
	m := &morphism.Morphism{}
	for i, c := range root.Children {
		a, err := assignment(c)
		if err != nil {
			return nil, fmt.Errorf("assignment #%d: %w", i, err)
		}
		m.Assignments = append(m.Assignments, a)
	}
	return m, nil
}

func decodeRoot(r io.Reader, want string) (*node, error) {
	var root node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("idt: decode: %w", err)
	}
	if root.name() != want {
		return nil, fmt.Errorf("idt: root element is <%s>, want <%s>", root.name(), want)
	}
	return &root, nil
}

func declaration(n *node) (bol.Declaration, error) {
	switch n.name() {
	case "inddecl", "concdecl", "reldecl":
		id, err := n.required("name")
		if err != nil {
			return nil, err
		}
		switch n.name() {
		case "inddecl":
			return &bol.IndividualDecl{ID: id}, nil
		case "concdecl":
			return &bol.ConceptDecl{ID: id}, nil
		default:
			return &bol.RelationDecl{ID: id}, nil
		}

	case "propdecl":
		id, err := n.required("name")
		if err != nil {
			return nil, err
		}
		c, err := n.children(1)
		if err != nil {
			return nil, err
		}
		t, err := baseType(c[0])
		if err != nil {
			return nil, err
		}
		return &bol.PropertyDecl{ID: id, Type: t}, nil

	case "axiom":
		c, err := n.children(1)
		if err != nil {
			return nil, err
		}
		f, err := formula(c[0])
		if err != nil {
			return nil, err
		}
		id, _ := n.attr("name")
		return &bol.Axiom{ID: id, Formula: f}, nil

	default:
		return nil, unknown("declaration", n)
	}
}

func formula(n *node) (bol.Formula, error) {
	switch n.name() {
	case "concassert":
		c, err := n.children(2)
		if err != nil {
			return nil, err
		}
		i, err := individual(c[0])
		if err != nil {
			return nil, err
		}
		ce, err := concept(c[1])
		if err != nil {
			return nil, err
		}
		return &bol.Isa{Individual: i, Concept: ce}, nil

	case "relassert":
		c, err := n.children(3)
		if err != nil {
			return nil, err
		}
		subj, err := individual(c[0])
		if err != nil {
			return nil, err
		}
		r, err := relation(c[1])
		if err != nil {
			return nil, err
		}
		obj, err := individual(c[2])
		if err != nil {
			return nil, err
		}
		return &bol.RelationAssertion{Subject: subj, Relation: r, Object: obj}, nil

	case "propassert":
		c, err := n.children(3)
		if err != nil {
			return nil, err
		}
		i, err := individual(c[0])
		if err != nil {
			return nil, err
		}
		p, err := property(c[1])
		if err != nil {
			return nil, err
		}
		v, err := value(c[2])
		if err != nil {
			return nil, err
		}
		return &bol.PropertyAssertion{Individual: i, Property: p, Value: v}, nil

	case "concsubs", "conceq":
		l, r, err := conceptPair(n)
		if err != nil {
			return nil, err
		}
		if n.name() == "concsubs" {
			return &bol.Subset{Left: l, Right: r}, nil
		}
		return &bol.Equal{Left: l, Right: r}, nil

	default:
		return nil, unknown("formula", n)
	}
}

func conceptPair(n *node) (bol.ConceptExpr, bol.ConceptExpr, error) {
	c, err := n.children(2)
	if err != nil {
		return nil, nil, err
	}
	l, err := concept(c[0])
	if err != nil {
		return nil, nil, err
	}
	r, err := concept(c[1])
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func concept(n *node) (bol.ConceptExpr, error) {
	switch n.name() {
	case "concref":
		id, err := n.required("name")
		if err != nil {
			return nil, err
		}
		return bol.Concept(id), nil
	case "concuniversal":
		return &bol.Universal{}, nil
	case "concempty":
		return &bol.Empty{}, nil
	case "concunion":
		l, r, err := conceptPair(n)
		if err != nil {
			return nil, err
		}
		return &bol.Union{Left: l, Right: r}, nil
	case "concintersec":
		l, r, err := conceptPair(n)
		if err != nil {
			return nil, err
		}
		return &bol.Intersect{Left: l, Right: r}, nil
	case "concuniversalrel", "concexistlrel":
		c, err := n.children(2)
		if err != nil {
			return nil, err
		}
		r, err := relation(c[0])
		if err != nil {
			return nil, err
		}
		sub, err := concept(c[1])
		if err != nil {
			return nil, err
		}
		if n.name() == "concuniversalrel" {
			return &bol.UniversalRestriction{Relation: r, Concept: sub}, nil
		}
		return &bol.ExistentialRestriction{Relation: r, Concept: sub}, nil
	case "concdomainrel", "concrangerel":
		r, err := singleRelation(n)
		if err != nil {
			return nil, err
		}
		if n.name() == "concdomainrel" {
			return &bol.Domain{Relation: r}, nil
		}
		return &bol.Range{Relation: r}, nil
	case "concdomainprop":
		c, err := n.children(1)
		if err != nil {
			return nil, err
		}
		p, err := property(c[0])
		if err != nil {
			return nil, err
		}
		return &bol.PropertyDomain{Property: p}, nil
	default:
		return nil, unknown("concept", n)
	}
}

func singleRelation(n *node) (bol.RelationExpr, error) {
	c, err := n.children(1)
	if err != nil {
		return nil, err
	}
	return relation(c[0])
}

func relationPair(n *node) (bol.RelationExpr, bol.RelationExpr, error) {
	c, err := n.children(2)
	if err != nil {
		return nil, nil, err
	}
	l, err := relation(c[0])
	if err != nil {
		return nil, nil, err
	}
	r, err := relation(c[1])
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func relation(n *node) (bol.RelationExpr, error) {
	switch n.name() {
	case "relref":
		id, err := n.required("name")
		if err != nil {
			return nil, err
		}
		return bol.Relation(id), nil
	case "relunion":
		l, r, err := relationPair(n)
		if err != nil {
			return nil, err
		}
		return &bol.RelationUnion{Left: l, Right: r}, nil
	case "relintersec":
		l, r, err := relationPair(n)
		if err != nil {
			return nil, err
		}
		return &bol.RelationIntersect{Left: l, Right: r}, nil
	case "relcomp":
		l, r, err := relationPair(n)
		if err != nil {
			return nil, err
		}
		return &bol.Composition{First: l, Second: r}, nil
	case "reltrans":
		r, err := singleRelation(n)
		if err != nil {
			return nil, err
		}
		return &bol.TransitiveClosure{Relation: r}, nil
	case "relinv":
		r, err := singleRelation(n)
		if err != nil {
			return nil, err
		}
		return &bol.Dual{Relation: r}, nil
	case "relident":
		c, err := n.children(1)
		if err != nil {
			return nil, err
		}
		ce, err := concept(c[0])
		if err != nil {
			return nil, err
		}
		return &bol.IdentityOverConcept{Concept: ce}, nil
	default:
		return nil, unknown("relation", n)
	}
}

func individual(n *node) (bol.IndividualExpr, error) {
	if n.name() != "indref" {
		return nil, unknown("individual", n)
	}
	id, err := n.required("name")
	if err != nil {
		return nil, err
	}
	return bol.Individual(id), nil
}

func property(n *node) (bol.PropertyExpr, error) {
	if n.name() != "propref" {
		return nil, unknown("property", n)
	}
	id, err := n.required("name")
	if err != nil {
		return nil, err
	}
	return bol.Property(id), nil
}

func baseType(n *node) (bol.Type, error) {
	if n.name() != "basetype" {
		return 0, unknown("type", n)
	}
	name, err := n.required("name")
	if err != nil {
		return 0, err
	}
	return typeName(name)
}

func typeName(name string) (bol.Type, error) {
	t, ok := bol.ParseType(name)
	if !ok {
		return 0, fmt.Errorf("idt: unknown type name %q", name)
	}
	return t, nil
}

func value(n *node) (bol.Value, error) {
	if n.name() != "basevalue" {
		return nil, unknown("value", n)
	}
	literal, err := n.required("value")
	if err != nil {
		return nil, err
	}
	name, err := n.required("typename")
	if err != nil {
		return nil, err
	}
	t, err := typeName(name)
	if err != nil {
		return nil, err
	}
	v, err := bol.ParseValue(t, literal)
	if err != nil {
		return nil, fmt.Errorf("idt: %w", err)
	}
	return v, nil
}

func assignment(n *node) (morphism.Assignment, error) {
	switch n.name() {
	case "indassign", "concassign", "relassign", "propassign", "axiomassign":
	default:
		return nil, unknown("assignment", n)
	}

	id, err := n.required("name")
	if err != nil {
		return nil, err
	}
	if n.name() == "axiomassign" {
		return &morphism.AxiomAssignment{ID: id}, nil
	}
	if n.name() == "propassign" {
		c, err := n.children(2)
		if err != nil {
			return nil, err
		}
		t, err := baseType(c[0])
		if err != nil {
			return nil, err
		}
		p, err := property(c[1])
		if err != nil {
			return nil, err
		}
		return &morphism.PropertyAssignment{ID: id, Type: t, Property: p}, nil
	}

	c, err := n.children(1)
	if err != nil {
		return nil, err
	}
	switch n.name() {
	case "indassign":
		i, err := individual(c[0])
		if err != nil {
			return nil, err
		}
		return &morphism.IndividualAssignment{ID: id, Individual: i}, nil
	case "concassign":
		ce, err := concept(c[0])
		if err != nil {
			return nil, err
		}
		return &morphism.ConceptAssignment{ID: id, Concept: ce}, nil
	default:
		r, err := relation(c[0])
		if err != nil {
			return nil, err
		}
		return &morphism.RelationAssignment{ID: id, Relation: r}, nil
	}
}
