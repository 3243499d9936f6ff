package tptp

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapfol/pkg/bol"
	"github.com/leapstack-labs/leapfol/pkg/check"
	"github.com/leapstack-labs/leapfol/pkg/compiler"
	"github.com/leapstack-labs/leapfol/pkg/core"
	"github.com/leapstack-labs/leapfol/pkg/sfol"
)

func TestFormula(t *testing.T) {
	x := &sfol.Var{ID: "X_0"}
	a := sfol.Const("a")

	tests := []struct {
		name     string
		formula  sfol.Formula
		expected string
	}{
		{"unary predicate", &sfol.Pred{ID: "Student", Args: []sfol.Term{sfol.Const("Tu")}}, "Student(Tu)"},
		{"nullary predicate", &sfol.Pred{ID: "raining"}, "raining"},
		{"function application", &sfol.Pred{ID: "p", Args: []sfol.Term{&sfol.Apply{ID: "g", Args: []sfol.Term{a, x}}}}, "p(f_g(a,X_0))"},
		{"equality", &sfol.Eq{Left: x, Right: a}, "X_0 = a"},
		{"truth", &sfol.Truth{}, "1=1"},
		{"falsity", &sfol.Falsity{}, "~1=1"},
		{"and", &sfol.And{Left: &sfol.Truth{}, Right: &sfol.Falsity{}}, "(1=1 & ~1=1)"},
		{"or", &sfol.Or{Left: &sfol.Truth{}, Right: &sfol.Truth{}}, "(1=1 | 1=1)"},
		{"implies", &sfol.Implies{Left: &sfol.Truth{}, Right: &sfol.Truth{}}, "(1=1 => 1=1)"},
		{"iff", &sfol.Iff{Left: &sfol.Truth{}, Right: &sfol.Truth{}}, "(1=1 <=> 1=1)"},
		{"not", &sfol.Not{Formula: &sfol.Pred{ID: "C", Args: []sfol.Term{a}}}, "~(C(a))"},
		{"forall", &sfol.ForAll{Var: "X_0", Sort: sfol.Individual, Body: &sfol.Pred{ID: "C", Args: []sfol.Term{x}}}, "! [X_0]:(C(X_0))"},
		{"exists", &sfol.Exists{Var: "X_0", Sort: sfol.Individual, Body: &sfol.Pred{ID: "C", Args: []sfol.Term{x}}}, "? [X_0]:(C(X_0))"},
		{"quoted constant", &sfol.Pred{ID: "Grade", Args: []sfol.Term{a, sfol.Const("1.30")}}, "Grade(a,'1.30')"},
		{"escaped quote", &sfol.Pred{ID: "Name", Args: []sfol.Term{a, sfol.Const("O'Neil")}}, `Name(a,'O\'Neil')`},
		{"numeric literal", &sfol.Pred{ID: "age", Args: []sfol.Term{a, &sfol.Literal{Text: "-3", Numeric: true}}}, "age(a,-3)"},
		{"distinct object", &sfol.Pred{ID: "sem", Args: []sfol.Term{a, &sfol.Literal{Text: "22/23WS"}}}, `sem(a,"22/23WS")`},
		{"distinct object escapes", &sfol.Pred{ID: "nick", Args: []sfol.Term{a, &sfol.Literal{Text: `say "hi" \o`}}}, `nick(a,"say \"hi\" \\o")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Formula(tt.formula)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestVocabularyDropsDeclarations(t *testing.T) {
	v := &sfol.Vocabulary{Decls: []sfol.Declaration{
		&sfol.TypeDecl{ID: "Int"},
		&sfol.FunctionDecl{ID: "Tu", Result: sfol.Individual},
		&sfol.PredicateDecl{ID: "Student", Params: []sfol.Sort{sfol.Individual}},
		&sfol.Axiom{Formula: &sfol.Pred{ID: "Student", Args: []sfol.Term{sfol.Const("Tu")}}},
		&sfol.Axiom{Formula: &sfol.Truth{}},
	}}

	out, err := Print(v)
	require.NoError(t, err)
	assert.Equal(t, "tff(axiom_0,axiom,Student(Tu)).\ntff(axiom_1,axiom,1=1).", out)
}

func TestLabelCounterIsPerPrinter(t *testing.T) {
	f := &sfol.Truth{}

	p := NewPrinter(WithLabelPrefix("obligation"))
	require.NoError(t, p.Statement(RoleConjecture, f))
	require.NoError(t, p.Statement(RoleConjecture, f))
	assert.Equal(t, 2, p.Count())
	assert.Equal(t, "tff(obligation_0,conjecture,1=1).\ntff(obligation_1,conjecture,1=1).", p.String())

	q := NewPrinter()
	require.NoError(t, q.Statement(RoleAxiom, f))
	assert.Equal(t, "tff(axiom_0,axiom,1=1).", q.String())
}

func TestUnsupportedNode(t *testing.T) {
	p := NewPrinter()
	err := p.Statement(RoleAxiom, &sfol.Not{})
	assert.ErrorIs(t, err, core.ErrUnsupported)
	assert.Equal(t, 0, p.Count())
	assert.Empty(t, p.String())
}

func TestEndToEnd(t *testing.T) {
	v := bol.NewVocabulary(
		&bol.ConceptDecl{ID: "Student"},
		&bol.ConceptDecl{ID: "Lecturer"},
		&bol.IndividualDecl{ID: "Tu"},
		&bol.Axiom{Formula: &bol.Isa{Individual: bol.Individual("Tu"), Concept: bol.Concept("Student")}},
	)

	ok, err := check.IsWellFormed(v)
	require.NoError(t, err)
	require.True(t, ok)

	target, err := compiler.Compile(v)
	require.NoError(t, err)

	out, err := Print(target)
	require.NoError(t, err)
	assert.Equal(t, "tff(axiom_0,axiom,Student(Tu)).", out)
}

func TestSubsetWithRestriction(t *testing.T) {
	v := bol.NewVocabulary(
		&bol.ConceptDecl{ID: "Student"},
		&bol.ConceptDecl{ID: "Course"},
		&bol.RelationDecl{ID: "attends"},
		&bol.Axiom{Formula: &bol.Subset{
			Left:  bol.Concept("Student"),
			Right: &bol.ExistentialRestriction{Relation: bol.Relation("attends"), Concept: bol.Concept("Course")},
		}},
	)

	target, err := compiler.Compile(v)
	require.NoError(t, err)
	out, err := Print(target)
	require.NoError(t, err)
	assert.Equal(t,
		"tff(axiom_0,axiom,! [X_0]:((Student(X_0) => ? [Y_1]:((attends(X_0,Y_1) & Course(Y_1)))))).",
		out)
}

func TestValuesNeverShareIndividualSymbols(t *testing.T) {
	has := func(ind, prop string, val bol.Value) *bol.Axiom {
		return &bol.Axiom{Formula: &bol.PropertyAssertion{Individual: bol.Individual(ind), Property: bol.Property(prop), Value: val}}
	}
	v := bol.NewVocabulary(
		&bol.IndividualDecl{ID: "Tu"},
		&bol.PropertyDecl{ID: "nick", Type: bol.TypeString},
		&bol.PropertyDecl{ID: "age", Type: bol.TypeInteger},
		&bol.PropertyDecl{ID: "sem", Type: bol.TypeSemester},
		&bol.PropertyDecl{ID: "grade", Type: bol.TypeGrade},
		&bol.PropertyDecl{ID: "id", Type: bol.TypeBigInteger},
		has("Tu", "nick", &bol.StringValue{V: "Tu"}),
		has("Tu", "age", &bol.IntValue{V: -3}),
		has("Tu", "sem", &bol.SemesterValue{Year: 22, Winter: true}),
		has("Tu", "grade", &bol.GradeValue{Hundredths: 130}),
		has("Tu", "id", &bol.BigIntValue{V: big.NewInt(12345678901)}),
	)

	ok, err := check.IsWellFormed(v)
	require.NoError(t, err)
	require.True(t, ok)

	target, err := compiler.Compile(v)
	require.NoError(t, err)
	out, err := Print(target)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		`tff(axiom_0,axiom,nick(Tu,"Tu")).`,
		`tff(axiom_1,axiom,age(Tu,-3)).`,
		`tff(axiom_2,axiom,sem(Tu,"22/23WS")).`,
		`tff(axiom_3,axiom,grade(Tu,"1.30")).`,
		`tff(axiom_4,axiom,id(Tu,12345678901)).`,
	}, "\n"), out)
}

func TestInvalidNumeral(t *testing.T) {
	_, err := Formula(&sfol.Pred{ID: "age", Args: []sfol.Term{&sfol.Literal{Text: "3.5", Numeric: true}}})
	assert.Error(t, err)
}
