// Package tptp serializes target-logic formulas into the TFF exchange syntax
// read by automated theorem provers.
package tptp

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapfol/pkg/core"
	"github.com/leapstack-labs/leapfol/pkg/sfol"
)

// Statement roles.
const (
	RoleAxiom      = "axiom"
	RoleConjecture = "conjecture"
)

// DefaultLabelPrefix is the label prefix used when none is configured.
const DefaultLabelPrefix = "axiom"

// Printer emits one statement per formula, labelled <prefix>_<n> with n
// counting statements printed by this Printer.
type Printer struct {
	statements []string
	prefix     string
}

// Option configures a Printer.
type Option func(*Printer)

// WithLabelPrefix sets the statement label prefix.
func WithLabelPrefix(prefix string) Option {
	return func(p *Printer) {
		if prefix != "" {
			p.prefix = prefix
		}
	}
}

// NewPrinter returns a printer with a zeroed label counter.
func NewPrinter(opts ...Option) *Printer {
	p := &Printer{prefix: DefaultLabelPrefix}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print emits the axioms of v with a fresh printer.
func Print(v *sfol.Vocabulary, opts ...Option) (string, error) {
	p := NewPrinter(opts...)
	if err := p.Vocabulary(v); err != nil {
		return "", err
	}
	return p.String(), nil
}

// String returns the statements printed so far, newline-joined.
func (p *Printer) String() string {
	return strings.Join(p.statements, "\n")
}

// Statements returns the statements printed so far.
func (p *Printer) Statements() []string { return p.statements }

// Count returns the number of statements printed.
func (p *Printer) Count() int { return len(p.statements) }

// Vocabulary emits every axiom of v. Type, function and predicate
// declarations are dropped.
func (p *Printer) Vocabulary(v *sfol.Vocabulary) error {
	for _, d := range v.Decls {
		switch d := d.(type) {
		case *sfol.Axiom:
			if err := p.Statement(RoleAxiom, d.Formula); err != nil {
				return err
			}
		case *sfol.TypeDecl, *sfol.FunctionDecl, *sfol.PredicateDecl:
		default:
			return core.Unsupported(core.StageEmit, d)
		}
	}
	return nil
}

// Statement emits f with the given role. Nothing is written when f contains
// an unsupported node.
func (p *Printer) Statement(role string, f sfol.Formula) error {
	body, err := Formula(f)
	if err != nil {
		return err
	}
	p.statements = append(p.statements, fmt.Sprintf("tff(%s_%d,%s,%s).", p.prefix, len(p.statements), role, body))
	return nil
}

// Formula renders a single formula body.
func Formula(f sfol.Formula) (string, error) {
	var b strings.Builder
	if err := writeFormula(&b, f); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeFormula(b *strings.Builder, f sfol.Formula) error {
	switch f := f.(type) {
	case *sfol.Pred:
		b.WriteString(ident(f.ID))
		if len(f.Args) > 0 {
			return writeArgs(b, f.Args)
		}
		return nil
	case *sfol.Eq:
		if err := writeTerm(b, f.Left); err != nil {
			return err
		}
		b.WriteString(" = ")
		return writeTerm(b, f.Right)
	case *sfol.Truth:
		b.WriteString("1=1")
		return nil
	case *sfol.Falsity:
		b.WriteString("~1=1")
		return nil
	case *sfol.And:
		return writeBinary(b, f.Left, "&", f.Right)
	case *sfol.Or:
		return writeBinary(b, f.Left, "|", f.Right)
	case *sfol.Implies:
		return writeBinary(b, f.Left, "=>", f.Right)
	case *sfol.Iff:
		return writeBinary(b, f.Left, "<=>", f.Right)
	case *sfol.Not:
		b.WriteString("~(")
		if err := writeFormula(b, f.Formula); err != nil {
			return err
		}
		b.WriteString(")")
		return nil
	case *sfol.ForAll:
		return writeQuantifier(b, "!", f.Var, f.Body)
	case *sfol.Exists:
		return writeQuantifier(b, "?", f.Var, f.Body)
	default:
		return core.Unsupported(core.StageEmit, f)
	}
}

func writeBinary(b *strings.Builder, left sfol.Formula, op string, right sfol.Formula) error {
	b.WriteString("(")
	if err := writeFormula(b, left); err != nil {
		return err
	}
	b.WriteString(" " + op + " ")
	if err := writeFormula(b, right); err != nil {
		return err
	}
	b.WriteString(")")
	return nil
}

func writeQuantifier(b *strings.Builder, q, v string, body sfol.Formula) error {
	fmt.Fprintf(b, "%s [%s]:(", q, v)
	if err := writeFormula(b, body); err != nil {
		return err
	}
	b.WriteString(")")
	return nil
}

func writeTerm(b *strings.Builder, t sfol.Term) error {
	switch t := t.(type) {
	case *sfol.Var:
		b.WriteString(t.ID)
		return nil
	case *sfol.Apply:
		if len(t.Args) == 0 {
			b.WriteString(ident(t.ID))
			return nil
		}
		b.WriteString(ident("f_" + t.ID))
		return writeArgs(b, t.Args)
	case *sfol.Literal:
		if t.Numeric {
			if !isNumeral(t.Text) {
				return fmt.Errorf("invalid numeral %q", t.Text)
			}
			b.WriteString(t.Text)
			return nil
		}
		b.WriteString(distinctObject(t.Text))
		return nil
	default:
		return core.Unsupported(core.StageEmit, t)
	}
}

func writeArgs(b *strings.Builder, args []sfol.Term) error {
	b.WriteString("(")
	for i, a := range args {
		if i > 0 {
			b.WriteString(",")
		}
		if err := writeTerm(b, a); err != nil {
			return err
		}
	}
	b.WriteString(")")
	return nil
}

// ident returns id unchanged when it is a plain word and single-quoted
// otherwise.
func ident(id string) string {
	if id != "" && strings.IndexFunc(id, notWordRune) < 0 {
		return id
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(id) + "'"
}

func notWordRune(r rune) bool {
	return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
}

// distinctObject quotes s as a TPTP distinct object.
func distinctObject(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

func isNumeral(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return s != "" && strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0
}
