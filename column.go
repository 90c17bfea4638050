package sqlmatrix

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Column is one field across every populated row of a matrix.
type Column struct {
	cells []Value
}

func (c Column) Len() int { return len(c.cells) }

// At returns the cell at row i, or NULL when i is out of range.
func (c Column) At(i int) Value {
	if i < 0 || i >= len(c.cells) {
		return Null()
	}

	return c.cells[i]
}

func (c Column) Values() []Value {
	return append([]Value(nil), c.cells...)
}

// Nulls returns the row offsets holding NULL.
func (c Column) Nulls() *roaring.Bitmap {
	bm := roaring.New()
	for i, v := range c.cells {
		if v.IsNull() {
			bm.Add(uint32(i))
		}
	}

	return bm
}

// Kind returns the kind shared by every non-NULL cell, KindNull when the
// column is entirely NULL, and false when kinds differ.
func (c Column) Kind() (Kind, bool) {
	kind := KindNull
	for _, v := range c.cells {
		if v.IsNull() {
			continue
		}
		if kind != KindNull && v.kind != kind {
			return KindNull, false
		}
		kind = v.kind
	}

	return kind, true
}

func (c Column) Equal(o Column) bool {
	return equalCells(c.cells, o.cells)
}

func (c Column) Clone() Column {
	return Column{cells: c.Values()}
}

// Take moves the cells out of c. Afterwards c has length 0.
func (c *Column) Take() Column {
	out := Column{cells: c.cells}
	c.cells = nil
	return out
}
