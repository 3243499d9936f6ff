package sfol

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is a marker interface for terms.
type Term interface {
	Node
	termNode()
}

// Apply is a function application. A 0-ary application is a constant.
type Apply struct {
	ID   string
	Args []Term
}

func (*Apply) termNode() {}

func (t *Apply) String() string {
	if len(t.Args) == 0 {
		return t.ID
	}
	return fmt.Sprintf("%s(%s)", t.ID, joinTerms(t.Args))
}

// Var is a bound variable.
type Var struct {
	ID string
}

func (*Var) termNode() {}

func (t *Var) String() string { return t.ID }

// Literal is a data value of an atomic sort. Numeric literals are integer
// numerals; every other literal is a distinct object, never equal to a
// constant or to another literal with different text.
type Literal struct {
	Text    string
	Sort    Sort
	Numeric bool
}

func (*Literal) termNode() {}

func (t *Literal) String() string {
	if t.Numeric {
		return t.Text
	}
	return strconv.Quote(t.Text)
}

// Const returns the 0-ary application id.
func Const(id string) *Apply { return &Apply{ID: id} }

func joinTerms(terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}
