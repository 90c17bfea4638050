package sqlmatrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Matrix is a growable row-major table of Values. Cell (r, c) lives at flat
// index r*ColumnCount()+c of a buffer holding Capacity() rows. Every slot in
// the buffer is a valid Value, NULL until written.
//
// A Matrix is not safe for concurrent use. Readers may share one only while
// no AppendRow or SetColumnName is running.
type Matrix struct {
	name     string
	colCount int
	rowCount int
	capacity int
	maxCells int
	cells    []Value
	names    *NameTable
}

// New returns an empty matrix with colCount columns. The only error is
// ErrAllocation when the initial capacity cannot be allocated.
func New(colCount int, opts ...Option) (*Matrix, error) {
	if colCount < 0 {
		colCount = 0
	}
	o := newOptions(opts)

	n, err := cellCount(o.capacity, colCount, o.maxCells)
	if err != nil {
		return nil, err
	}
	cells, err := allocCells(n)
	if err != nil {
		return nil, err
	}

	names := NewNameTable(colCount, o.maxNameLength)
	for i, name := range o.columnNames {
		names.SetName(i, name)
	}

	return &Matrix{
		name:     truncate(o.name, o.maxNameLength),
		colCount: colCount,
		capacity: o.capacity,
		maxCells: o.maxCells,
		cells:    cells,
		names:    names,
	}, nil
}

func (m *Matrix) Name() string { return m.name }

func (m *Matrix) SetName(name string) {
	m.name = truncate(name, m.names.MaxLength())
}

func (m *Matrix) ColumnCount() int { return m.colCount }

func (m *Matrix) RowCount() int { return m.rowCount }

func (m *Matrix) Capacity() int { return m.capacity }

// ColumnName returns "" when i is out of range.
func (m *Matrix) ColumnName(i int) string { return m.names.Name(i) }

// SetColumnName is a no-op when i is out of range.
func (m *Matrix) SetColumnName(i int, name string) { m.names.SetName(i, name) }

func (m *Matrix) ColumnNames() []string { return m.names.Names() }

// ColumnIndex returns the index of the first column called name, or -1.
func (m *Matrix) ColumnIndex(name string) int {
	for i := 0; i < m.colCount; i++ {
		if m.names.Name(i) == name {
			return i
		}
	}

	return -1
}

// At returns cell (r, c), or NULL when either index is out of range.
func (m *Matrix) At(r, c int) Value {
	if r < 0 || r >= m.rowCount || c < 0 || c >= m.colCount {
		return Null()
	}

	return m.cells[r*m.colCount+c]
}

// AppendRow copies r into the next row slot, doubling the capacity first
// when the matrix is full. A row of the wrong width is rejected with
// (false, nil) and nothing changes. On ErrAllocation the matrix is left as
// it was.
func (m *Matrix) AppendRow(r Row) (bool, error) {
	if r.Width() != m.colCount {
		return false, nil
	}

	if m.rowCount == m.capacity {
		if err := m.grow(); err != nil {
			return false, err
		}
	}

	start := m.rowCount * m.colCount
	copy(m.cells[start:start+m.colCount], r.cells)
	m.rowCount++

	return true, nil
}

// grow doubles the capacity. The new buffer is fully built before it
// replaces the old one. Column names do not depend on the row count and are
// kept as they are.
func (m *Matrix) grow() error {
	if m.capacity > math.MaxInt/2 {
		return fmt.Errorf("%w: capacity %d cannot double", ErrAllocation, m.capacity)
	}
	capacity := m.capacity * 2

	n, err := cellCount(capacity, m.colCount, m.maxCells)
	if err != nil {
		return err
	}
	cells, err := allocCells(n)
	if err != nil {
		return err
	}

	copy(cells, m.cells[:m.rowCount*m.colCount])
	m.cells = cells
	m.capacity = capacity

	return nil
}

func cellCount(rows, cols, limit int) (int, error) {
	if cols > 0 && rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%w: %d rows of %d columns overflows", ErrAllocation, rows, cols)
	}

	n := rows * cols
	if limit > 0 && n > limit {
		return 0, fmt.Errorf("%w: %d cells exceeds limit of %d", ErrAllocation, n, limit)
	}

	return n, nil
}

func allocCells(n int) (cells []Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			cells, err = nil, fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()

	return make([]Value, n), nil
}

// Row returns a copy of row i, or a width 0 row when i is out of range.
func (m *Matrix) Row(i int) Row {
	if i < 0 || i >= m.rowCount {
		return Row{}
	}

	start := i * m.colCount
	return Row{cells: append([]Value(nil), m.cells[start:start+m.colCount]...)}
}

// Column returns a copy of column i across every populated row, or a length
// 0 column when i is out of range.
func (m *Matrix) Column(i int) Column {
	if i < 0 || i >= m.colCount {
		return Column{}
	}

	cells := make([]Value, m.rowCount)
	for r := range cells {
		cells[r] = m.cells[r*m.colCount+i]
	}

	return Column{cells: cells}
}

// Each calls fn with every populated row in order until fn returns false.
func (m *Matrix) Each(fn func(i int, r Row) bool) {
	for i := 0; i < m.rowCount; i++ {
		if !fn(i, m.Row(i)) {
			return
		}
	}
}

// Clone deep-copies cells and names, keeping the current capacity.
func (m *Matrix) Clone() *Matrix {
	cells := make([]Value, len(m.cells))
	copy(cells, m.cells)

	return &Matrix{
		name:     m.name,
		colCount: m.colCount,
		rowCount: m.rowCount,
		capacity: m.capacity,
		maxCells: m.maxCells,
		cells:    cells,
		names:    m.names.Clone(),
	}
}

// String renders the name, the shape as (columns, rows), the column names
// and one line per row, cells separated by DisplayDelimiter.
func (m *Matrix) String() string {
	var b strings.Builder

	b.WriteString(m.name)
	b.WriteString("\n(")
	b.WriteString(strconv.Itoa(m.colCount))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(m.rowCount))
	b.WriteString(")\n")
	b.WriteString(strings.Join(m.names.Names(), DisplayDelimiter))
	b.WriteString("\n")

	m.Each(func(_ int, r Row) bool {
		b.WriteString(r.Join(DisplayDelimiter))
		b.WriteString("\n")
		return true
	})

	return b.String()
}
