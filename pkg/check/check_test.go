package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapfol/pkg/bol"
	"github.com/leapstack-labs/leapfol/pkg/core"
)

func isa(ind, concept string) *bol.Axiom {
	return &bol.Axiom{Formula: &bol.Isa{Individual: bol.Individual(ind), Concept: bol.Concept(concept)}}
}

func TestVocabulary(t *testing.T) {
	tests := []struct {
		name    string
		decls   []bol.Declaration
		wantOK  bool
		wantIdx int
	}{
		{
			name:   "empty",
			wantOK: true,
		},
		{
			name: "declared before use",
			decls: []bol.Declaration{
				&bol.IndividualDecl{ID: "Tu"},
				&bol.ConceptDecl{ID: "Student"},
				isa("Tu", "Student"),
			},
			wantOK: true,
		},
		{
			name: "used before declared",
			decls: []bol.Declaration{
				&bol.IndividualDecl{ID: "Tu"},
				isa("Tu", "Student"),
				&bol.ConceptDecl{ID: "Student"},
			},
			wantIdx: 1,
		},
		{
			name: "duplicate identifier across kinds",
			decls: []bol.Declaration{
				&bol.ConceptDecl{ID: "X"},
				&bol.RelationDecl{ID: "X"},
			},
			wantIdx: 1,
		},
		{
			name: "wrong kind",
			decls: []bol.Declaration{
				&bol.RelationDecl{ID: "Student"},
				&bol.IndividualDecl{ID: "Tu"},
				isa("Tu", "Student"),
			},
			wantIdx: 2,
		},
		{
			name: "duplicate axiom ids are allowed",
			decls: []bol.Declaration{
				&bol.Axiom{ID: "a", Formula: &bol.Equal{Left: &bol.Empty{}, Right: &bol.Empty{}}},
				&bol.Axiom{ID: "a", Formula: &bol.Subset{Left: &bol.Empty{}, Right: &bol.Universal{}}},
			},
			wantOK: true,
		},
		{
			name: "property value matches declared type",
			decls: []bol.Declaration{
				&bol.IndividualDecl{ID: "Tu"},
				&bol.PropertyDecl{ID: "Age", Type: bol.TypeInteger},
				&bol.Axiom{Formula: &bol.PropertyAssertion{
					Individual: bol.Individual("Tu"), Property: bol.Property("Age"), Value: &bol.IntValue{V: 21},
				}},
			},
			wantOK: true,
		},
		{
			name: "property value type mismatch",
			decls: []bol.Declaration{
				&bol.IndividualDecl{ID: "Tu"},
				&bol.PropertyDecl{ID: "Age", Type: bol.TypeInteger},
				&bol.Axiom{Formula: &bol.PropertyAssertion{
					Individual: bol.Individual("Tu"), Property: bol.Property("Age"), Value: &bol.StringValue{V: "21"},
				}},
			},
			wantIdx: 2,
		},
		{
			name: "int value for semester property",
			decls: []bol.Declaration{
				&bol.IndividualDecl{ID: "Tu"},
				&bol.PropertyDecl{ID: "Term", Type: bol.TypeSemester},
				&bol.Axiom{Formula: &bol.PropertyAssertion{
					Individual: bol.Individual("Tu"), Property: bol.Property("Term"), Value: &bol.IntValue{V: 22},
				}},
			},
			wantIdx: 2,
		},
		{
			name: "semester year must be two digits",
			decls: []bol.Declaration{
				&bol.IndividualDecl{ID: "Tu"},
				&bol.PropertyDecl{ID: "Term", Type: bol.TypeSemester},
				&bol.Axiom{Formula: &bol.PropertyAssertion{
					Individual: bol.Individual("Tu"), Property: bol.Property("Term"), Value: &bol.SemesterValue{Year: 123, Winter: true},
				}},
			},
			wantIdx: 2,
		},
		{
			name: "semester year 99 is accepted",
			decls: []bol.Declaration{
				&bol.IndividualDecl{ID: "Tu"},
				&bol.PropertyDecl{ID: "Term", Type: bol.TypeSemester},
				&bol.Axiom{Formula: &bol.PropertyAssertion{
					Individual: bol.Individual("Tu"), Property: bol.Property("Term"), Value: &bol.SemesterValue{Year: 99, Winter: true},
				}},
			},
			wantOK: true,
		},
		{
			name: "nested combinators",
			decls: []bol.Declaration{
				&bol.ConceptDecl{ID: "A"},
				&bol.RelationDecl{ID: "r"},
				&bol.PropertyDecl{ID: "p", Type: bol.TypeString},
				&bol.Axiom{Formula: &bol.Subset{
					Left: &bol.ExistentialRestriction{
						Relation: &bol.Composition{
							First:  &bol.Dual{Relation: bol.Relation("r")},
							Second: &bol.IdentityOverConcept{Concept: bol.Concept("A")},
						},
						Concept: &bol.Intersect{Left: bol.Concept("A"), Right: &bol.PropertyDomain{Property: bol.Property("p")}},
					},
					Right: &bol.Range{Relation: &bol.TransitiveClosure{Relation: bol.Relation("r")}},
				}},
			},
			wantOK: true,
		},
		{
			name: "undeclared relation deep inside",
			decls: []bol.Declaration{
				&bol.ConceptDecl{ID: "A"},
				&bol.Axiom{Formula: &bol.Equal{
					Left:  bol.Concept("A"),
					Right: &bol.UniversalRestriction{Relation: bol.Relation("r"), Concept: bol.Concept("A")},
				}},
			},
			wantIdx: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := bol.NewVocabulary(tt.decls...)
			err := Vocabulary(v)

			ok, boolErr := IsWellFormed(v)
			require.NoError(t, boolErr)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrNotWellFormed)
			var wf *core.WellFormednessError
			require.ErrorAs(t, err, &wf)
			assert.Equal(t, tt.wantIdx, wf.Index)
		})
	}
}

func TestVocabularyUnsupported(t *testing.T) {
	v := bol.NewVocabulary(
		&bol.ConceptDecl{ID: "A"},
		&bol.Axiom{Formula: &bol.Isa{Individual: nil, Concept: bol.Concept("A")}},
	)

	err := Vocabulary(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnsupported)
	assert.NotErrorIs(t, err, core.ErrNotWellFormed)

	ok, err := IsWellFormed(v)
	assert.False(t, ok)
	assert.ErrorIs(t, err, core.ErrUnsupported)
}

func TestScope(t *testing.T) {
	s := NewScope(&bol.ConceptDecl{ID: "A"}, &bol.RelationDecl{ID: "A"}, isa("x", "A"))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, bol.KindConcept, s.Lookup("A").Kind(), "first declaration wins")
	assert.Nil(t, s.Lookup("x"))

	assert.NoError(t, ConceptExpr(bol.Concept("A"), s))
	assert.ErrorIs(t, RelationExpr(bol.Relation("A"), s), core.ErrNotWellFormed)
}

func TestPropertyExpr(t *testing.T) {
	s := NewScope(&bol.PropertyDecl{ID: "Sem", Type: bol.TypeSemester})

	decl, err := PropertyExpr(bol.Property("Sem"), s)
	require.NoError(t, err)
	assert.Equal(t, bol.TypeSemester, decl.Type)

	_, err = PropertyExpr(bol.Property("Grade"), s)
	assert.ErrorIs(t, err, core.ErrNotWellFormed)
}
