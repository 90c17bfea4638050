package sqlmatrix

import (
	"github.com/petar/GoLLRB/llrb"
)

// indexKey orders cells for the tree. Value.Less is only a partial order, so
// keys of unrelated kinds are ranked NULL, numbers, text, blobs first, and
// equal cells fall back to their row.
type indexKey struct {
	v   Value
	row int
}

func kindRank(k Kind) int {
	switch k {
	case KindInteger, KindReal:
		return 1
	case KindText:
		return 2
	case KindBinary:
		return 3
	}

	return 0
}

func (k indexKey) Less(than llrb.Item) bool {
	o := than.(indexKey)

	if ra, rb := kindRank(k.v.kind), kindRank(o.v.kind); ra != rb {
		return ra < rb
	}
	if k.v.Less(o.v) {
		return true
	}
	if o.v.Less(k.v) {
		return false
	}

	return k.row < o.row
}

// Index is an ordered view of one column of a matrix, taken when the index
// is built. Later appends are not reflected.
type Index struct {
	col  int
	tree *llrb.LLRB
}

// NewIndex orders the rows of m by column col. An out of range column gives
// an empty index.
func NewIndex(m *Matrix, col int) *Index {
	idx := &Index{col: col, tree: llrb.New()}
	if col < 0 || col >= m.ColumnCount() {
		return idx
	}

	for r := 0; r < m.RowCount(); r++ {
		idx.tree.ReplaceOrInsert(indexKey{v: m.At(r, col), row: r})
	}

	return idx
}

func (idx *Index) Column() int { return idx.col }

func (idx *Index) Len() int { return idx.tree.Len() }

// Ascend calls fn with row offsets in column order until fn returns false.
// Rows holding equal cells keep their insertion order.
func (idx *Index) Ascend(fn func(row int, v Value) bool) {
	first := idx.tree.Min()
	if first == nil {
		return
	}

	idx.tree.AscendGreaterOrEqual(first, func(i llrb.Item) bool {
		k := i.(indexKey)
		return fn(k.row, k.v)
	})
}

// Lookup returns the rows whose cell equals v, in insertion order.
func (idx *Index) Lookup(v Value) []int {
	var rows []int
	idx.tree.AscendGreaterOrEqual(indexKey{v: v, row: -1}, func(i llrb.Item) bool {
		k := i.(indexKey)
		if kindRank(k.v.kind) != kindRank(v.kind) || v.Less(k.v) {
			return false
		}
		// INTEGER 1 and REAL 1.0 sort together but are not equal
		if k.v.Equal(v) {
			rows = append(rows, k.row)
		}
		return true
	})

	return rows
}

// Rows returns every row offset in column order.
func (idx *Index) Rows() []int {
	rows := make([]int, 0, idx.Len())
	idx.Ascend(func(row int, _ Value) bool {
		rows = append(rows, row)
		return true
	})

	return rows
}

// SortedBy returns a copy of m with its rows ordered by column col. An out
// of range column returns an unordered copy.
func (m *Matrix) SortedBy(col int) (*Matrix, error) {
	if col < 0 || col >= m.colCount {
		return m.Clone(), nil
	}

	out, err := New(m.colCount,
		WithName(m.name),
		WithColumnNames(m.names.Names()...),
		WithCapacity(m.capacity),
		WithMaxNameLength(m.names.MaxLength()),
		WithMaxCells(m.maxCells),
	)
	if err != nil {
		return nil, err
	}

	for _, r := range NewIndex(m, col).Rows() {
		if _, err := out.AppendRow(m.Row(r)); err != nil {
			return nil, err
		}
	}

	return out, nil
}
