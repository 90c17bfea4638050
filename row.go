package sqlmatrix

import "strings"

// DisplayDelimiter separates cells in rendered rows.
const DisplayDelimiter = ", "

// Row is one tuple of a fixed width. The zero Row has width 0 and is what
// out of range lookups return. Assigning a Row shares its cells, use Clone
// for an independent copy.
type Row struct {
	cells []Value
}

// NewRow returns a row of width NULL cells.
func NewRow(width int) Row {
	if width < 0 {
		width = 0
	}

	return Row{cells: make([]Value, width)}
}

// RowOf builds a row from the given values.
func RowOf(values ...Value) Row {
	return Row{cells: append([]Value(nil), values...)}
}

func (r Row) Width() int { return len(r.cells) }

// Set writes v at column i. Out of range columns are ignored.
func (r Row) Set(i int, v Value) {
	if i < 0 || i >= len(r.cells) {
		return
	}

	r.cells[i] = v
}

// At returns the cell at column i, or NULL when i is out of range.
func (r Row) At(i int) Value {
	if i < 0 || i >= len(r.cells) {
		return Null()
	}

	return r.cells[i]
}

// Values returns a copy of the cells.
func (r Row) Values() []Value {
	return append([]Value(nil), r.cells...)
}

// Join renders every cell with Value.String, separated by sep.
func (r Row) Join(sep string) string {
	var b strings.Builder
	for i, v := range r.cells {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(v.String())
	}

	return b.String()
}

func (r Row) String() string { return r.Join(DisplayDelimiter) }

func (r Row) Equal(o Row) bool {
	return equalCells(r.cells, o.cells)
}

// Clone returns a row that shares no storage with r.
func (r Row) Clone() Row {
	return Row{cells: r.Values()}
}

// Take moves the cells out of r. Afterwards r has width 0.
func (r *Row) Take() Row {
	out := Row{cells: r.cells}
	r.cells = nil
	return out
}

func equalCells(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
