package bol

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Type is one of the atomic data sorts a property can range over.
type Type int

// Atomic types.
const (
	TypeInteger Type = iota
	TypeString
	TypeBigInteger
	TypeBoolean
	TypeDate
	TypeGrade
	TypeSemester
)

// Types lists every atomic type in declaration order.
var Types = []Type{TypeInteger, TypeString, TypeBigInteger, TypeBoolean, TypeDate, TypeGrade, TypeSemester}

// String returns the interchange name of the type.
func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "Int"
	case TypeString:
		return "String"
	case TypeBigInteger:
		return "BigInt"
	case TypeBoolean:
		return "Bool"
	case TypeDate:
		return "Date"
	case TypeGrade:
		return "Grade"
	case TypeSemester:
		return "Semester"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType converts an interchange type name to a Type, ignoring case.
func ParseType(s string) (Type, bool) {
	switch strings.ToUpper(s) {
	case "INT":
		return TypeInteger, true
	case "STRING":
		return TypeString, true
	case "BIGINT":
		return TypeBigInteger, true
	case "BOOL":
		return TypeBoolean, true
	case "DATE":
		return TypeDate, true
	case "GRADE":
		return TypeGrade, true
	case "SEMESTER":
		return TypeSemester, true
	default:
		return 0, false
	}
}

// Value is a typed data literal. Type reports the tag, which must equal the
// declared type of the property it is asserted for.
type Value interface {
	Node
	Type() Type
	// Literal returns the interchange encoding of the value.
	Literal() string
	valueNode()
}

// IntValue is a machine integer.
type IntValue struct {
	V int
}

func (*IntValue) valueNode() {}

// Type implements Value.
func (*IntValue) Type() Type { return TypeInteger }

// Literal implements Value.
func (v *IntValue) Literal() string { return strconv.Itoa(v.V) }

func (v *IntValue) String() string { return v.Literal() }

// StringValue is a string.
type StringValue struct {
	V string
}

func (*StringValue) valueNode() {}

// Type implements Value.
func (*StringValue) Type() Type { return TypeString }

// Literal implements Value.
func (v *StringValue) Literal() string { return v.V }

func (v *StringValue) String() string { return v.V }

// BigIntValue is an arbitrary-precision integer.
type BigIntValue struct {
	V *big.Int
}

func (*BigIntValue) valueNode() {}

// Type implements Value.
func (*BigIntValue) Type() Type { return TypeBigInteger }

// Literal implements Value.
func (v *BigIntValue) Literal() string {
	if v.V == nil {
		return "0"
	}
	return v.V.String()
}

func (v *BigIntValue) String() string { return v.Literal() }

// BoolValue is a boolean.
type BoolValue struct {
	V bool
}

func (*BoolValue) valueNode() {}

// Type implements Value.
func (*BoolValue) Type() Type { return TypeBoolean }

// Literal implements Value.
func (v *BoolValue) Literal() string { return strconv.FormatBool(v.V) }

func (v *BoolValue) String() string { return v.Literal() }

// DateValue is a timestamp kept in its textual form.
type DateValue struct {
	Timestamp string
}

func (*DateValue) valueNode() {}

// Type implements Value.
func (*DateValue) Type() Type { return TypeDate }

// Literal implements Value.
func (v *DateValue) Literal() string { return v.Timestamp }

func (v *DateValue) String() string { return v.Timestamp }

// GradeValue is a fixed-point grade with two decimal places.
type GradeValue struct {
	Hundredths int64
}

func (*GradeValue) valueNode() {}

// Type implements Value.
func (*GradeValue) Type() Type { return TypeGrade }

// Literal implements Value.
func (v *GradeValue) Literal() string {
	n := v.Hundredths
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%d.%02d", sign, n/100, n%100)
}

func (v *GradeValue) String() string { return v.Literal() }

// SemesterValue is an academic semester. Year is the two-digit start year,
// 0 through 99; the checker rejects anything else.
type SemesterValue struct {
	Year   int
	Winter bool
}

func (*SemesterValue) valueNode() {}

// Type implements Value.
func (*SemesterValue) Type() Type { return TypeSemester }

// Literal implements Value.
func (v *SemesterValue) Literal() string {
	if v.Winter {
		return fmt.Sprintf("%02d/%02dWS", v.Year, (v.Year+1)%100)
	}
	return fmt.Sprintf("%02dSS", v.Year)
}

func (v *SemesterValue) String() string { return v.Literal() }

// ParseValue decodes an interchange literal of type t.
func ParseValue(t Type, literal string) (Value, error) {
	switch t {
	case TypeInteger:
		n, err := strconv.Atoi(literal)
		if err != nil {
			return nil, fmt.Errorf("invalid Int literal %q: %w", literal, err)
		}
		return &IntValue{V: n}, nil
	case TypeString:
		return &StringValue{V: literal}, nil
	case TypeBigInteger:
		n, ok := new(big.Int).SetString(literal, 10)
		if !ok {
			return nil, fmt.Errorf("invalid BigInt literal %q", literal)
		}
		return &BigIntValue{V: n}, nil
	case TypeBoolean:
		b, err := strconv.ParseBool(literal)
		if err != nil {
			return nil, fmt.Errorf("invalid Bool literal %q: %w", literal, err)
		}
		return &BoolValue{V: b}, nil
	case TypeDate:
		return &DateValue{Timestamp: literal}, nil
	case TypeGrade:
		return parseGrade(literal)
	case TypeSemester:
		return parseSemester(literal)
	default:
		return nil, fmt.Errorf("unknown type %s", t)
	}
}

// parseGrade accepts a decimal with at most two significant fractional digits.
func parseGrade(literal string) (*GradeValue, error) {
	s := strings.TrimSpace(literal)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("invalid Grade literal %q", literal)
	}
	if whole == "" {
		whole = "0"
	}
	frac = strings.TrimRight(frac, "0")
	if len(frac) > 2 {
		return nil, fmt.Errorf("invalid Grade literal %q", literal)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid Grade literal %q: %w", literal, err)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid Grade literal %q: %w", literal, err)
	}

	n := w*100 + f
	if neg {
		n = -n
	}
	return &GradeValue{Hundredths: n}, nil
}

// parseSemester reads a two-digit year; a '/' right after it marks winter.
func parseSemester(literal string) (*SemesterValue, error) {
	if len(literal) < 3 {
		return nil, fmt.Errorf("invalid Semester literal %q", literal)
	}
	year, err := strconv.Atoi(literal[:2])
	if err != nil {
		return nil, fmt.Errorf("invalid Semester literal %q: %w", literal, err)
	}
	return &SemesterValue{Year: year, Winter: literal[2] == '/'}, nil
}
