package sfol

import "fmt"

// Formula is a marker interface for formulas.
type Formula interface {
	Node
	formulaNode()
}

// Pred is a predicate application.
type Pred struct {
	ID   string
	Args []Term
}

func (*Pred) formulaNode() {}

func (f *Pred) String() string { return fmt.Sprintf("%s(%s)", f.ID, joinTerms(f.Args)) }

// Eq is term equality.
type Eq struct {
	Left  Term
	Right Term
}

func (*Eq) formulaNode() {}

func (f *Eq) String() string { return fmt.Sprintf("%s = %s", f.Left, f.Right) }

// Truth is the true formula.
type Truth struct{}

func (*Truth) formulaNode() {}

func (*Truth) String() string { return "⊤" }

// Falsity is the false formula.
type Falsity struct{}

func (*Falsity) formulaNode() {}

func (*Falsity) String() string { return "⊥" }

// And is conjunction.
type And struct {
	Left  Formula
	Right Formula
}

func (*And) formulaNode() {}

func (f *And) String() string { return fmt.Sprintf("(%s ∧ %s)", f.Left, f.Right) }

// Or is disjunction.
type Or struct {
	Left  Formula
	Right Formula
}

func (*Or) formulaNode() {}

func (f *Or) String() string { return fmt.Sprintf("(%s ∨ %s)", f.Left, f.Right) }

// Implies is implication.
type Implies struct {
	Left  Formula
	Right Formula
}

func (*Implies) formulaNode() {}

func (f *Implies) String() string { return fmt.Sprintf("(%s ⇒ %s)", f.Left, f.Right) }

// Iff is equivalence.
type Iff struct {
	Left  Formula
	Right Formula
}

func (*Iff) formulaNode() {}

func (f *Iff) String() string { return fmt.Sprintf("(%s ⇔ %s)", f.Left, f.Right) }

// Not is negation.
type Not struct {
	Formula Formula
}

func (*Not) formulaNode() {}

func (f *Not) String() string { return fmt.Sprintf("¬%s", f.Formula) }

// ForAll binds Var of sort Sort universally in Body.
type ForAll struct {
	Var  string
	Sort Sort
	Body Formula
}

func (*ForAll) formulaNode() {}

func (f *ForAll) String() string { return fmt.Sprintf("∀%s:%s %s", f.Var, f.Sort, f.Body) }

// Exists binds Var of sort Sort existentially in Body.
type Exists struct {
	Var  string
	Sort Sort
	Body Formula
}

func (*Exists) formulaNode() {}

func (f *Exists) String() string { return fmt.Sprintf("∃%s:%s %s", f.Var, f.Sort, f.Body) }
