package sqlmatrix

import (
	"log/slog"
)

// CellReader is the cursor an engine adapter exposes over a result set.
// Cell methods read column i of the current row; Next advances to the next
// row and reports false once the results are exhausted. Next must be called
// before the first row is read.
type CellReader interface {
	ColumnCount() int
	ColumnName(i int) string
	CellKind(i int) Kind
	CellInt(i int) int64
	CellReal(i int) float64
	CellBytes(i int) []byte
	Next() bool
}

// FromCell reads column i of the reader's current row. Kinds the reader
// reports but Value does not know become NULL.
func FromCell(r CellReader, i int) Value {
	switch r.CellKind(i) {
	case KindNull:
		return Null()
	case KindInteger:
		return Integer(r.CellInt(i))
	case KindReal:
		return Real(r.CellReal(i))
	case KindText:
		return Text(string(r.CellBytes(i)))
	case KindBinary:
		b := r.CellBytes(i)
		if b == nil {
			b = []byte{}
		}
		return Blob(b)
	}

	return Null()
}

type loadOptions struct {
	logger *slog.Logger
	matrix []Option
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithLoadLogger logs a summary of each load at debug level.
func WithLoadLogger(logger *slog.Logger) LoadOption {
	return func(o *loadOptions) {
		o.logger = logger
	}
}

// WithMatrixOptions passes options to the matrix Load builds. Column names
// always come from the reader.
func WithMatrixOptions(opts ...Option) LoadOption {
	return func(o *loadOptions) {
		o.matrix = append(o.matrix, opts...)
	}
}

// Load drains r into a new matrix, one row per call to Next. If r also has
// an Err() error method its error is returned after the last row.
func Load(r CellReader, opts ...LoadOption) (*Matrix, error) {
	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	cols := r.ColumnCount()
	m, err := New(cols, o.matrix...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < cols; i++ {
		m.SetColumnName(i, r.ColumnName(i))
	}

	row := NewRow(cols)
	for r.Next() {
		for i := 0; i < cols; i++ {
			row.Set(i, FromCell(r, i))
		}
		if _, err := m.AppendRow(row); err != nil {
			return nil, err
		}
	}

	if e, ok := r.(interface{ Err() error }); ok {
		if err := e.Err(); err != nil {
			return nil, err
		}
	}

	if o.logger != nil {
		o.logger.Debug("result set loaded",
			"table", m.Name(),
			"columns", cols,
			"rows", m.RowCount(),
			"capacity", m.Capacity(),
		)
	}

	return m, nil
}
