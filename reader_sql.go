package sqlmatrix

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"math"
	"time"
)

// Value implements driver.Valuer so it can be bound as a statement argument.
func (v Value) Value() (driver.Value, error) {
	switch v.kind {
	case KindInteger:
		return v.i64, nil
	case KindReal:
		return v.f64, nil
	case KindText:
		return v.buf, nil
	case KindBinary:
		return []byte(v.buf), nil
	}

	return nil, nil
}

// Scan implements sql.Scanner.
func (v *Value) Scan(src any) error {
	val, err := valueOf(src)
	if err != nil {
		return err
	}

	*v = val
	return nil
}

// valueOf converts the Go values drivers hand back. Booleans become 0 or 1
// and times become RFC 3339 text, as sqlite stores them.
func valueOf(src any) (Value, error) {
	switch s := src.(type) {
	case nil:
		return Null(), nil
	case Value:
		return s, nil
	case int64:
		return Integer(s), nil
	case int:
		return Integer(int64(s)), nil
	case int32:
		return Integer(int64(s)), nil
	case int16:
		return Integer(int64(s)), nil
	case int8:
		return Integer(int64(s)), nil
	case uint32:
		return Integer(int64(s)), nil
	case uint16:
		return Integer(int64(s)), nil
	case uint8:
		return Integer(int64(s)), nil
	case uint64:
		if s > math.MaxInt64 {
			return Real(float64(s)), nil
		}
		return Integer(int64(s)), nil
	case float64:
		return Real(s), nil
	case float32:
		return Real(float64(s)), nil
	case bool:
		if s {
			return Integer(1), nil
		}
		return Integer(0), nil
	case string:
		return Text(s), nil
	case []byte:
		if s == nil {
			return Null(), nil
		}
		return Blob(s), nil
	case time.Time:
		return Text(s.Format(time.RFC3339Nano)), nil
	}

	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, src)
}

// valueCells serves CellReader cell reads from the current row's values.
type valueCells struct {
	names []string
	cur   []Value
}

func (c *valueCells) ColumnCount() int { return len(c.names) }

func (c *valueCells) ColumnName(i int) string {
	if i < 0 || i >= len(c.names) {
		return ""
	}

	return c.names[i]
}

func (c *valueCells) at(i int) Value {
	if i < 0 || i >= len(c.cur) {
		return Null()
	}

	return c.cur[i]
}

func (c *valueCells) CellKind(i int) Kind { return c.at(i).kind }

func (c *valueCells) CellInt(i int) int64 { return c.at(i).i64 }

func (c *valueCells) CellReal(i int) float64 { return c.at(i).f64 }

func (c *valueCells) CellBytes(i int) []byte {
	v := c.at(i)
	if v.kind != KindText && v.kind != KindBinary {
		return nil
	}

	return []byte(v.buf)
}

// set stores the current row, turning unsupported values into NULL.
func (c *valueCells) set(values []any) {
	for i := range c.cur {
		c.cur[i] = Null()
		if i < len(values) {
			if v, err := valueOf(values[i]); err == nil {
				c.cur[i] = v
			}
		}
	}
}

// SQLReader reads a database/sql result set as a CellReader.
type SQLReader struct {
	valueCells
	rows *sql.Rows
	dest []any
	err  error
}

// NewSQLReader wraps rows. The caller still owns rows and must close them.
func NewSQLReader(rows *sql.Rows) (*SQLReader, error) {
	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	return &SQLReader{
		valueCells: valueCells{names: names, cur: make([]Value, len(names))},
		rows:       rows,
		dest:       make([]any, len(names)),
	}, nil
}

func (r *SQLReader) Next() bool {
	if r.err != nil || !r.rows.Next() {
		return false
	}

	ptrs := make([]any, len(r.dest))
	for i := range r.dest {
		r.dest[i] = nil
		ptrs[i] = &r.dest[i]
	}
	if err := r.rows.Scan(ptrs...); err != nil {
		r.err = err
		return false
	}

	r.set(r.dest)
	return true
}

// Err returns the first scan or iteration error.
func (r *SQLReader) Err() error {
	if r.err != nil {
		return r.err
	}

	return r.rows.Err()
}

// LoadSQL drains rows into a matrix and closes them.
func LoadSQL(rows *sql.Rows, opts ...LoadOption) (*Matrix, error) {
	defer rows.Close()

	r, err := NewSQLReader(rows)
	if err != nil {
		return nil, err
	}

	return Load(r, opts...)
}
