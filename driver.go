package sqlmatrix

import (
	"database/sql/driver"
	"io"
)

// Rows serves a matrix through the database/sql driver interface so a driver
// can return staged results to database/sql callers.
type Rows struct {
	m     *Matrix
	index int
}

// DriverRows returns a cursor over the rows of m as they are now.
func (m *Matrix) DriverRows() *Rows {
	return &Rows{m: m.Clone()}
}

func (r *Rows) Columns() []string {
	return r.m.ColumnNames()
}

// ColumnTypeDatabaseTypeName reports the kind shared by the column's
// non-NULL cells, or "" when kinds are mixed.
func (r *Rows) ColumnTypeDatabaseTypeName(index int) string {
	kind, ok := r.m.Column(index).Kind()
	if !ok {
		return ""
	}

	return kind.String()
}

func (r *Rows) Close() error {
	r.index = r.m.RowCount()
	return nil
}

func (r *Rows) Next(dest []driver.Value) error {
	if r.index >= r.m.RowCount() {
		return io.EOF
	}

	for i := range dest {
		v, err := r.m.At(r.index, i).Value()
		if err != nil {
			return err
		}
		dest[i] = v
	}

	r.index++
	return nil
}

var (
	_ driver.Rows                           = (*Rows)(nil)
	_ driver.RowsColumnTypeDatabaseTypeName = (*Rows)(nil)
)
