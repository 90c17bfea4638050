package sqlmatrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Literal(t *testing.T) {
	tests := []struct {
		value   Value
		literal string
	}{
		{Null(), "NULL"},
		{Integer(7), "7"},
		{Real(2), "2.0"},
		{Real(0.1), "0.1"},
		{Real(1e21), "1e+21"},
		{Real(math.Inf(1)), "9e999"},
		{Real(math.Inf(-1)), "-9e999"},
		{Real(math.NaN()), "NULL"},
		{Text("it's"), "'it''s'"},
		{Blob([]byte{0xde, 0xad}), "X'DEAD'"},
	}

	for _, test := range tests {
		assert.Equal(t, test.literal, test.value.Literal())
	}
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		literal string
		value   Value
	}{
		{"NULL", Null()},
		{"null", Null()},
		{" 42 ", Integer(42)},
		{"-9223372036854775808", Integer(math.MinInt64)},
		{"1.5", Real(1.5)},
		{"1e3", Real(1000)},
		{"9e999", Real(math.Inf(1))},
		{"'alice'", Text("alice")},
		{"'it''s'", Text("it's")},
		{"''", Null()},
		{"x'00ff'", Blob([]byte{0, 255})},
		{"X''", Blob([]byte{})},
	}

	for _, test := range tests {
		v, err := ParseLiteral(test.literal)
		require.NoError(t, err, test.literal)
		assert.True(t, test.value.Equal(v), "%s: got %s %s", test.literal, v.TypeName(), v)
	}
}

func TestParseLiteral_Invalid(t *testing.T) {
	for _, literal := range []string{
		"",
		"'open",
		"'a'b'",
		"X'0'",
		"X'zz'",
		"X'00",
		"abc",
		"inf",
		"0x10",
		"1..2",
		"-",
	} {
		_, err := ParseLiteral(literal)
		assert.ErrorIs(t, err, ErrInvalidLiteral, literal)
	}
}

func TestLiteral_RoundTrip(t *testing.T) {
	values := []Value{
		Null(),
		Integer(math.MaxInt64),
		Integer(math.MinInt64),
		Real(3.141592653589793),
		Real(-0.000001),
		Real(math.Inf(-1)),
		Real(100),
		Text("multi\nline 'quoted'"),
		Text("with\x00zero"),
		Blob([]byte{0, 1, 2, 3}),
	}

	for _, v := range values {
		got, err := ParseLiteral(v.Literal())
		require.NoError(t, err, v.Literal())
		assert.True(t, v.Equal(got), "%s: got %s", v.Literal(), got.Literal())
	}
}
