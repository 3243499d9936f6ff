package bol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func university() *Vocabulary {
	return NewVocabulary(
		&IndividualDecl{ID: "Tu"},
		&ConceptDecl{ID: "Student"},
		&RelationDecl{ID: "Study"},
		&PropertyDecl{ID: "Age", Type: TypeInteger},
		&Axiom{ID: "a1", Formula: &Isa{Individual: Individual("Tu"), Concept: Concept("Student")}},
		&Axiom{ID: "a1", Formula: &Subset{Left: Concept("Student"), Right: &Universal{}}},
	)
}

func TestVocabularyLookup(t *testing.T) {
	v := university()

	assert.Equal(t, KindIndividual, v.Symbol("Tu").Kind())
	assert.Equal(t, KindRelation, v.Symbol("Study").Kind())
	assert.Nil(t, v.Symbol("Lecturer"))

	assert.Equal(t, TypeInteger, v.Property("Age").Type)
	assert.Nil(t, v.Property("Student"), "a concept is not a property")

	// first match wins for duplicate axiom ids
	ax := v.Axiom("a1")
	if assert.NotNil(t, ax) {
		assert.IsType(t, &Isa{}, ax.Formula)
	}
	assert.Nil(t, v.Axiom("missing"))
	assert.Len(t, v.Axioms(), 2)
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{"isa", &Isa{Individual: Individual("Tu"), Concept: Concept("Student")}, "Individual Tu is a Concept Student"},
		{"union", &Union{Left: Concept("a"), Right: Concept("b")}, "(Concept a U Concept b)"},
		{"closure", &TransitiveClosure{Relation: Relation("r")}, "relation r*"},
		{"dual", &Dual{Relation: Relation("r")}, "relation r^-1"},
		{"composition", &Composition{First: Relation("r"), Second: Relation("s")}, "relation r;relation s"},
		{"property decl", &PropertyDecl{ID: "Sem", Type: TypeSemester}, "Property Sem Semester"},
		{"named axiom", &Axiom{ID: "x", Formula: &Equal{Left: &Empty{}, Right: &Universal{}}}, "Axiom x: Empty Concept == Any Concept"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.node.String())
		})
	}
}
