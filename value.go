// Package sqlmatrix is a typed value and row-major table store used to stage
// result sets coming from, and rows going to, a relational engine.
package sqlmatrix

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the storage class of a Value
type Kind uint8

const (
	// KindNull is the zero Kind so that the zero Value is NULL
	KindNull Kind = iota
	KindInteger
	KindReal
	KindText
	KindBinary
)

// String returns the type affinity keyword used in DDL.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "INTEGER"
	case KindReal:
		return "REAL"
	case KindText:
		return "TEXT"
	case KindBinary:
		return "BLOB"
	default:
		return "NULL"
	}
}

// Value holds exactly one of NULL, a 64-bit integer, a 64-bit float, text or
// binary data. Payloads are never mutated after construction, so assigning a
// Value copies it safely.
type Value struct {
	kind Kind
	i64  int64
	f64  float64
	buf  string // Text and Binary
}

// Null returns a NULL Value.
func Null() Value { return Value{} }

// Integer returns an INTEGER Value.
func Integer(i int64) Value { return Value{kind: KindInteger, i64: i} }

// Real returns a REAL Value.
func Real(f float64) Value { return Value{kind: KindReal, f64: f} }

// Text returns a TEXT Value. Empty text yields NULL.
func Text(s string) Value {
	if s == "" {
		return Value{}
	}

	return Value{kind: KindText, buf: s}
}

// Blob returns a BLOB Value holding a copy of b. A nil slice yields NULL,
// an empty non-nil slice a zero-length BLOB.
func Blob(b []byte) Value {
	if b == nil {
		return Value{}
	}

	return Value{kind: KindBinary, buf: string(b)}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Size is the payload length in bytes for TEXT and BLOB and 0 otherwise.
func (v Value) Size() int {
	if v.kind == KindText || v.kind == KindBinary {
		return len(v.buf)
	}

	return 0
}

func (v Value) TypeName() string { return v.kind.String() }

func (v Value) mismatch(want Kind) error {
	return fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, v.kind, want)
}

func (v Value) AsInteger() (int64, error) {
	if v.kind != KindInteger {
		return 0, v.mismatch(KindInteger)
	}

	return v.i64, nil
}

func (v Value) AsReal() (float64, error) {
	if v.kind != KindReal {
		return 0, v.mismatch(KindReal)
	}

	return v.f64, nil
}

func (v Value) AsText() (string, error) {
	if v.kind != KindText {
		return "", v.mismatch(KindText)
	}

	return v.buf, nil
}

// AsBlob returns a copy of the binary payload.
func (v Value) AsBlob() ([]byte, error) {
	if v.kind != KindBinary {
		return nil, v.mismatch(KindBinary)
	}

	return []byte(v.buf), nil
}

// String renders the value for display: NULL, a decimal integer, a real with
// three decimal places, or the raw text or binary content.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i64, 10)
	case KindReal:
		return strconv.FormatFloat(v.f64, 'f', 3, 64)
	case KindText, KindBinary:
		return v.buf
	default:
		return "NULL"
	}
}

// Equal reports whether both values have the same kind and payload. NULL
// equals NULL.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindInteger:
		return v.i64 == o.i64
	case KindReal:
		return v.f64 == o.f64
	case KindText, KindBinary:
		return v.buf == o.buf
	}

	return true
}

// Less is a partial order. NULL sorts before everything else, INTEGER and
// REAL compare numerically, TEXT and BLOB compare bytewise with a shorter
// common prefix first. Any other pairing is not less.
func (v Value) Less(o Value) bool {
	if v.kind == KindNull {
		return o.kind != KindNull
	}
	if o.kind == KindNull {
		return false
	}

	if n, ok := v.number(); ok {
		if m, ok := o.number(); ok {
			switch {
			case v.kind == KindInteger && o.kind == KindInteger:
				return v.i64 < o.i64
			case v.kind == KindInteger && !math.IsNaN(m):
				return compareIntReal(v.i64, m) < 0
			case o.kind == KindInteger && !math.IsNaN(n):
				return compareIntReal(o.i64, n) > 0
			}

			return n < m
		}

		return false
	}

	if v.kind == o.kind && (v.kind == KindText || v.kind == KindBinary) {
		return v.buf < o.buf
	}

	return false
}

// compareIntReal compares i with f without rounding i to a float64, which
// loses precision past 2^53. f must not be NaN.
func compareIntReal(i int64, f float64) int {
	switch {
	case f < math.MinInt64:
		return 1
	case f >= math.MaxInt64:
		return -1
	}

	t := math.Trunc(f)
	switch ti := int64(t); {
	case i < ti:
		return -1
	case i > ti:
		return 1
	case f > t:
		return -1
	case f < t:
		return 1
	}

	return 0
}

func (v Value) number() (float64, bool) {
	switch v.kind {
	case KindInteger:
		return float64(v.i64), true
	case KindReal:
		return v.f64, true
	}

	return 0, false
}

// Clone returns an independent copy of v.
func (v Value) Clone() Value { return v }

// Take moves the value out of v, leaving v NULL with size 0.
func (v *Value) Take() Value {
	out := *v
	*v = Value{}
	return out
}
