// Package sfol defines the abstract syntax of the target logic: many-sorted
// first-order logic with a distinguished Individual sort and atomic data sorts.
package sfol

import (
	"fmt"
	"strings"
)

// Node is the base interface for all target-logic nodes.
type Node interface {
	fmt.Stringer
}

// Vocabulary is an ordered sequence of sorted declarations.
type Vocabulary struct {
	Decls []Declaration
}

func (v *Vocabulary) String() string {
	lines := make([]string, len(v.Decls))
	for i, d := range v.Decls {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

// Axioms returns the axiom formulas in declaration order.
func (v *Vocabulary) Axioms() []Formula {
	var out []Formula
	for _, d := range v.Decls {
		if a, ok := d.(*Axiom); ok {
			out = append(out, a.Formula)
		}
	}
	return out
}

// ---------- Sorts ----------

// Sort is a type expression.
type Sort interface {
	Node
	sortNode()
}

// IndividualSort is the distinguished sort of individuals.
type IndividualSort struct{}

func (IndividualSort) sortNode() {}

func (IndividualSort) String() string { return "Individual" }

// AtomicSort is a named data sort.
type AtomicSort struct {
	ID string
}

func (AtomicSort) sortNode() {}

func (s AtomicSort) String() string { return s.ID }

// Individual is the individual sort.
var Individual Sort = IndividualSort{}

// ---------- Declarations ----------

// Declaration is a marker interface for target vocabulary members.
type Declaration interface {
	Node
	declNode()
}

// TypeDecl declares a data sort.
type TypeDecl struct {
	ID string
}

func (*TypeDecl) declNode() {}

func (d *TypeDecl) String() string { return "type " + d.ID }

// FunctionDecl declares a function symbol.
type FunctionDecl struct {
	ID     string
	Params []Sort
	Result Sort
}

func (*FunctionDecl) declNode() {}

func (d *FunctionDecl) String() string {
	return fmt.Sprintf("fun %s (%s) -> %s", d.ID, joinSorts(d.Params), d.Result)
}

// PredicateDecl declares a predicate symbol.
type PredicateDecl struct {
	ID     string
	Params []Sort
}

func (*PredicateDecl) declNode() {}

func (d *PredicateDecl) String() string {
	return fmt.Sprintf("pred %s (%s)", d.ID, joinSorts(d.Params))
}

// Axiom asserts a closed formula.
type Axiom struct {
	Formula Formula
}

func (*Axiom) declNode() {}

func (a *Axiom) String() string { return "axiom " + a.Formula.String() }

func joinSorts(sorts []Sort) string {
	parts := make([]string, len(sorts))
	for i, s := range sorts {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}
