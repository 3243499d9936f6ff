package bol

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	for _, typ := range Types {
		got, ok := ParseType(typ.String())
		require.True(t, ok, typ.String())
		assert.Equal(t, typ, got)
	}

	got, ok := ParseType("bigint")
	assert.True(t, ok)
	assert.Equal(t, TypeBigInteger, got)

	_, ok = ParseType("Float")
	assert.False(t, ok)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		literal  string
		expected Value
	}{
		{"int", TypeInteger, "22", &IntValue{V: 22}},
		{"negative int", TypeInteger, "-7", &IntValue{V: -7}},
		{"string", TypeString, "Tu", &StringValue{V: "Tu"}},
		{"bigint", TypeBigInteger, "123456789012345678901234567890", &BigIntValue{V: mustBig("123456789012345678901234567890")}},
		{"bool true", TypeBoolean, "true", &BoolValue{V: true}},
		{"bool false", TypeBoolean, "false", &BoolValue{V: false}},
		{"date", TypeDate, "2022-10-01", &DateValue{Timestamp: "2022-10-01"}},
		{"grade", TypeGrade, "1.30", &GradeValue{Hundredths: 130}},
		{"grade short", TypeGrade, "2.7", &GradeValue{Hundredths: 270}},
		{"grade whole", TypeGrade, "4", &GradeValue{Hundredths: 400}},
		{"grade without whole part", TypeGrade, ".5", &GradeValue{Hundredths: 50}},
		{"negative grade without whole part", TypeGrade, "-.25", &GradeValue{Hundredths: -25}},
		{"winter semester", TypeSemester, "22/23WS", &SemesterValue{Year: 22, Winter: true}},
		{"summer semester", TypeSemester, "23SS", &SemesterValue{Year: 23, Winter: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(tt.typ, tt.literal)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
			assert.Equal(t, tt.typ, v.Type())
		})
	}
}

func TestParseValue_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		literal string
	}{
		{"int", TypeInteger, "twelve"},
		{"bigint", TypeBigInteger, "1e9"},
		{"bool", TypeBoolean, "yes"},
		{"grade precision", TypeGrade, "1.234"},
		{"grade empty", TypeGrade, ""},
		{"grade point only", TypeGrade, "."},
		{"grade sign only", TypeGrade, "-"},
		{"semester short", TypeSemester, "22"},
		{"semester year", TypeSemester, "ab/cdWS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseValue(tt.typ, tt.literal)
			assert.Error(t, err)
		})
	}
}

func TestValueLiteral(t *testing.T) {
	assert.Equal(t, "1.30", (&GradeValue{Hundredths: 130}).Literal())
	assert.Equal(t, "-0.05", (&GradeValue{Hundredths: -5}).Literal())
	assert.Equal(t, "22/23WS", (&SemesterValue{Year: 22, Winter: true}).Literal())
	assert.Equal(t, "09SS", (&SemesterValue{Year: 9}).Literal())
	assert.Equal(t, "false", (&BoolValue{}).Literal())
	assert.Equal(t, "0", (&BigIntValue{}).Literal())
}

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	return n
}
