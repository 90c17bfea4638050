package sqlmatrix

import (
	"github.com/jackc/pgx/v5"
)

// PgxReader reads a pgx result set as a CellReader. Values pgx decodes to
// types Value has no case for, such as numerics or UUIDs, read as NULL.
type PgxReader struct {
	valueCells
	rows pgx.Rows
	err  error
}

// NewPgxReader wraps rows. The caller still owns rows and must close them.
func NewPgxReader(rows pgx.Rows) *PgxReader {
	fields := rows.FieldDescriptions()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}

	return &PgxReader{
		valueCells: valueCells{names: names, cur: make([]Value, len(names))},
		rows:       rows,
	}
}

func (r *PgxReader) Next() bool {
	if r.err != nil || !r.rows.Next() {
		return false
	}

	values, err := r.rows.Values()
	if err != nil {
		r.err = err
		return false
	}

	r.set(values)
	return true
}

func (r *PgxReader) Err() error {
	if r.err != nil {
		return r.err
	}

	return r.rows.Err()
}

// LoadPgx drains rows into a matrix and closes them.
func LoadPgx(rows pgx.Rows, opts ...LoadOption) (*Matrix, error) {
	defer rows.Close()

	return Load(NewPgxReader(rows), opts...)
}
