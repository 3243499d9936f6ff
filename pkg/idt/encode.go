package idt

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/leapstack-labs/leapfol/pkg/bol"
	"github.com/leapstack-labs/leapfol/pkg/core"
	"github.com/leapstack-labs/leapfol/pkg/morphism"
)

// EncodeVocabulary writes v as an indented vocabulary document.
func EncodeVocabulary(w io.Writer, v *bol.Vocabulary) error {
	root := elem(RootVocabulary)
	for i, d := range v.Decls {
		n, err := encodeDeclaration(d)
		if err != nil {
			return fmt.Errorf("declaration #%d: %w", i, err)
		}
		root.Children = append(root.Children, n)
	}
	return write(w, root)
}

// EncodeMorphism writes m as an indented morphism document.
func EncodeMorphism(w io.Writer, m *morphism.Morphism) error {
	root := elem(RootMorphism)
	for i, a := range m.Assignments {
		n, err := encodeAssignment(a)
		if err != nil {
			return fmt.Errorf("assignment #%d: %w", i, err)
		}
		root.Children = append(root.Children, n)
	}
	return write(w, root)
}

func write(w io.Writer, root *node) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("idt: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("idt: encode: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func unsupported(v any) error {
	return core.Unsupported(core.StageEncode, v)
}

func encodeDeclaration(d bol.Declaration) (*node, error) {
	switch d := d.(type) {
	case *bol.IndividualDecl:
		return elem("inddecl").with("name", d.ID), nil
	case *bol.ConceptDecl:
		return elem("concdecl").with("name", d.ID), nil
	case *bol.RelationDecl:
		return elem("reldecl").with("name", d.ID), nil
	case *bol.PropertyDecl:
		return elem("propdecl", encodeType(d.Type)).with("name", d.ID), nil
	case *bol.Axiom:
		f, err := encodeFormula(d.Formula)
		if err != nil {
			return nil, err
		}
		n := elem("axiom", f)
		if d.ID != "" {
			n.with("name", d.ID)
		}
		return n, nil
	default:
		return nil, unsupported(d)
	}
}

func encodeType(t bol.Type) *node {
	return elem("basetype").with("name", t.String())
}

func encodeFormula(f bol.Formula) (*node, error) {
	switch f := f.(type) {
	case *bol.Isa:
		return encodeAll("concassert", func() (*node, error) { return encodeIndividual(f.Individual) },
			func() (*node, error) { return encodeConcept(f.Concept) })
	case *bol.RelationAssertion:
		return encodeAll("relassert", func() (*node, error) { return encodeIndividual(f.Subject) },
			func() (*node, error) { return encodeRelation(f.Relation) },
			func() (*node, error) { return encodeIndividual(f.Object) })
	case *bol.PropertyAssertion:
		return encodeAll("propassert", func() (*node, error) { return encodeIndividual(f.Individual) },
			func() (*node, error) { return encodeProperty(f.Property) },
			func() (*node, error) { return encodeValue(f.Value) })
	case *bol.Subset:
		return encodeConcepts("concsubs", f.Left, f.Right)
	case *bol.Equal:
		return encodeConcepts("conceq", f.Left, f.Right)
	default:
		return nil, unsupported(f)
	}
}

// encodeAll builds an element whose children are produced in order.
func encodeAll(name string, parts ...func() (*node, error)) (*node, error) {
	n := elem(name)
	for _, part := range parts {
		c, err := part()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, c)
	}
	return n, nil
}

func encodeConcepts(name string, concepts ...bol.ConceptExpr) (*node, error) {
	n := elem(name)
	for _, ce := range concepts {
		c, err := encodeConcept(ce)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, c)
	}
	return n, nil
}

func encodeRelations(name string, relations ...bol.RelationExpr) (*node, error) {
	n := elem(name)
	for _, re := range relations {
		c, err := encodeRelation(re)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, c)
	}
	return n, nil
}

func encodeConcept(c bol.ConceptExpr) (*node, error) {
	switch c := c.(type) {
	case *bol.ConceptRef:
		return elem("concref").with("name", c.ID), nil
	case *bol.Universal:
		return elem("concuniversal"), nil
	case *bol.Empty:
		return elem("concempty"), nil
	case *bol.Union:
		return encodeConcepts("concunion", c.Left, c.Right)
	case *bol.Intersect:
		return encodeConcepts("concintersec", c.Left, c.Right)
	case *bol.UniversalRestriction:
		return encodeAll("concuniversalrel", func() (*node, error) { return encodeRelation(c.Relation) },
			func() (*node, error) { return encodeConcept(c.Concept) })
	case *bol.ExistentialRestriction:
		return encodeAll("concexistlrel", func() (*node, error) { return encodeRelation(c.Relation) },
			func() (*node, error) { return encodeConcept(c.Concept) })
	case *bol.Domain:
		return encodeRelations("concdomainrel", c.Relation)
	case *bol.Range:
		return encodeRelations("concrangerel", c.Relation)
	case *bol.PropertyDomain:
		return encodeAll("concdomainprop", func() (*node, error) { return encodeProperty(c.Property) })
	default:
		return nil, unsupported(c)
	}
}

func encodeRelation(r bol.RelationExpr) (*node, error) {
	switch r := r.(type) {
	case *bol.RelationRef:
		return elem("relref").with("name", r.ID), nil
	case *bol.RelationUnion:
		return encodeRelations("relunion", r.Left, r.Right)
	case *bol.RelationIntersect:
		return encodeRelations("relintersec", r.Left, r.Right)
	case *bol.Composition:
		return encodeRelations("relcomp", r.First, r.Second)
	case *bol.TransitiveClosure:
		return encodeRelations("reltrans", r.Relation)
	case *bol.Dual:
		return encodeRelations("relinv", r.Relation)
	case *bol.IdentityOverConcept:
		return encodeConcepts("relident", r.Concept)
	default:
		return nil, unsupported(r)
	}
}

func encodeIndividual(i bol.IndividualExpr) (*node, error) {
	ref, ok := i.(*bol.IndividualRef)
	if !ok {
		return nil, unsupported(i)
	}
	return elem("indref").with("name", ref.ID), nil
}

func encodeProperty(p bol.PropertyExpr) (*node, error) {
	ref, ok := p.(*bol.PropertyRef)
	if !ok {
		return nil, unsupported(p)
	}
	return elem("propref").with("name", ref.ID), nil
}

func encodeValue(v bol.Value) (*node, error) {
	if v == nil {
		return nil, unsupported(v)
	}
	if s, ok := v.(*bol.SemesterValue); ok && (s.Year < 0 || s.Year > 99) {
		return nil, fmt.Errorf("semester year %d does not fit two digits", s.Year)
	}
	return elem("basevalue").with("value", v.Literal()).with("typename", v.Type().String()), nil
}

func encodeAssignment(a morphism.Assignment) (*node, error) {
	switch a := a.(type) {
	case *morphism.IndividualAssignment:
		i, err := encodeIndividual(a.Individual)
		if err != nil {
			return nil, err
		}
		return elem("indassign", i).with("name", a.ID), nil
	case *morphism.ConceptAssignment:
		c, err := encodeConcept(a.Concept)
		if err != nil {
			return nil, err
		}
		return elem("concassign", c).with("name", a.ID), nil
	case *morphism.RelationAssignment:
		r, err := encodeRelation(a.Relation)
		if err != nil {
			return nil, err
		}
		return elem("relassign", r).with("name", a.ID), nil
	case *morphism.PropertyAssignment:
		p, err := encodeProperty(a.Property)
		if err != nil {
			return nil, err
		}
		return elem("propassign", encodeType(a.Type), p).with("name", a.ID), nil
	case *morphism.AxiomAssignment:
		return elem("axiomassign").with("name", a.ID), nil
	default:
		return nil, unsupported(a)
	}
}
