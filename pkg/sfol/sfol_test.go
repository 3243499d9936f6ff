package sfol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	x := &Var{ID: "X_0"}
	f := &ForAll{Var: "X_0", Sort: Individual, Body: &Implies{
		Left:  &Pred{ID: "Student", Args: []Term{x}},
		Right: &Exists{Var: "Y_1", Sort: AtomicSort{ID: "Int"}, Body: &Pred{ID: "Age", Args: []Term{x, &Var{ID: "Y_1"}}}},
	}}
	assert.Equal(t, "∀X_0:Individual (Student(X_0) ⇒ ∃Y_1:Int Age(X_0,Y_1))", f.String())

	v := &Vocabulary{Decls: []Declaration{
		&TypeDecl{ID: "Int"},
		&FunctionDecl{ID: "Tu", Result: Individual},
		&PredicateDecl{ID: "Age", Params: []Sort{Individual, AtomicSort{ID: "Int"}}},
		&Axiom{Formula: &Truth{}},
	}}
	assert.Equal(t, "type Int\nfun Tu () -> Individual\npred Age (Individual,Int)\naxiom ⊤", v.String())
	assert.Equal(t, []Formula{&Truth{}}, v.Axioms())
}

func TestBoundVars(t *testing.T) {
	f := &And{
		Left: &ForAll{Var: "X_0", Sort: Individual, Body: &Not{Formula: &Exists{Var: "Y_1", Sort: Individual, Body: &Truth{}}}},
		Right: &Or{
			Left:  &Exists{Var: "M_2", Sort: Individual, Body: &Falsity{}},
			Right: &Eq{Left: Const("a"), Right: Const("b")},
		},
	}
	assert.Equal(t, []string{"X_0", "Y_1", "M_2"}, BoundVars(f))
	assert.Empty(t, BoundVars(&Pred{ID: "Student", Args: []Term{Const("Tu")}}))
}
