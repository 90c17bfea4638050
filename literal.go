package sqlmatrix

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Literal renders v as an SQL literal that ParseLiteral reads back to an
// equal Value. Reals keep full precision, NaN has no literal and becomes
// NULL, infinities use the out-of-range 9e999 form.
func (v Value) Literal() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i64, 10)
	case KindReal:
		switch {
		case math.IsNaN(v.f64):
			return "NULL"
		case math.IsInf(v.f64, 1):
			return "9e999"
		case math.IsInf(v.f64, -1):
			return "-9e999"
		}

		s := strconv.FormatFloat(v.f64, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s
	case KindText:
		return "'" + strings.ReplaceAll(v.buf, "'", "''") + "'"
	case KindBinary:
		return "X'" + strings.ToUpper(hex.EncodeToString([]byte(v.buf))) + "'"
	default:
		return "NULL"
	}
}

// ParseLiteral parses a single SQL literal: NULL, an integer, a real, a
// single-quoted string or an X'..' hex blob. An empty string literal yields
// NULL, matching Text.
func ParseLiteral(s string) (Value, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Value{}, fmt.Errorf("%w: empty input", ErrInvalidLiteral)
	}

	if strings.EqualFold(t, "null") {
		return Null(), nil
	}

	if t[0] == '\'' {
		text, err := unquote(t)
		if err != nil {
			return Value{}, err
		}
		return Text(text), nil
	}

	if len(t) >= 3 && (t[0] == 'x' || t[0] == 'X') && t[1] == '\'' {
		if t[len(t)-1] != '\'' {
			return Value{}, fmt.Errorf("%w: unterminated blob %q", ErrInvalidLiteral, t)
		}

		b, err := hex.DecodeString(t[2 : len(t)-1])
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s", ErrInvalidLiteral, err)
		}
		return Blob(b), nil
	}

	if !isNumeric(t) {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidLiteral, t)
	}

	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return Integer(i), nil
	}

	f, err := strconv.ParseFloat(t, 64)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0)) {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidLiteral, t)
	}

	return Real(f), nil
}

func unquote(t string) (string, error) {
	if len(t) < 2 || t[len(t)-1] != '\'' {
		return "", fmt.Errorf("%w: unterminated string %q", ErrInvalidLiteral, t)
	}

	inner := t[1 : len(t)-1]
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '\'' {
			if i+1 >= len(inner) || inner[i+1] != '\'' {
				return "", fmt.Errorf("%w: unescaped quote in %q", ErrInvalidLiteral, t)
			}
			i++
		}
		b.WriteByte(c)
	}

	return b.String(), nil
}

func isNumeric(t string) bool {
	digits := false
	for i := 0; i < len(t); i++ {
		switch c := t[i]; {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.' || c == '+' || c == '-' || c == 'e' || c == 'E':
		default:
			return false
		}
	}

	return digits
}
