package sqlmatrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedMatrix(t *testing.T) *Matrix {
	t.Helper()

	m, err := New(2, WithName("mixed"), WithColumnNames("key", "row"))
	require.NoError(t, err)

	keys := []Value{
		Text("b"),
		Integer(3),
		Null(),
		Real(1.5),
		Blob([]byte{1}),
		Text("a"),
		Integer(1),
		Real(1),
		Integer(3),
	}
	for i, k := range keys {
		_, err := m.AppendRow(RowOf(k, Integer(int64(i))))
		require.NoError(t, err)
	}

	return m
}

func TestIndex_Ascend(t *testing.T) {
	m := mixedMatrix(t)
	idx := NewIndex(m, 0)

	assert.Equal(t, 0, idx.Column())
	assert.Equal(t, m.RowCount(), idx.Len())
	assert.Equal(t, []int{2, 6, 7, 3, 1, 8, 5, 0, 4}, idx.Rows())

	var first []int
	idx.Ascend(func(row int, v Value) bool {
		first = append(first, row)
		return len(first) < 2
	})
	assert.Equal(t, []int{2, 6}, first)
}

func TestIndex_Lookup(t *testing.T) {
	idx := NewIndex(mixedMatrix(t), 0)

	assert.Equal(t, []int{1, 8}, idx.Lookup(Integer(3)))
	assert.Equal(t, []int{6}, idx.Lookup(Integer(1)))
	assert.Equal(t, []int{7}, idx.Lookup(Real(1)))
	assert.Equal(t, []int{2}, idx.Lookup(Null()))
	assert.Equal(t, []int{5}, idx.Lookup(Text("a")))
	assert.Empty(t, idx.Lookup(Text("zzz")))
	assert.Empty(t, idx.Lookup(Integer(2)))
}

func TestIndex_OutOfRange(t *testing.T) {
	m := mixedMatrix(t)
	idx := NewIndex(m, 7)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Rows())
	assert.Empty(t, idx.Lookup(Integer(3)))
}

func TestMatrix_SortedBy(t *testing.T) {
	m := scenarioMatrix(t)
	_, err := m.AppendRow(RowOf(Text("aaron"), Integer(0)))
	require.NoError(t, err)

	sorted, err := m.SortedBy(0)
	require.NoError(t, err)
	assert.Equal(t, "t\n(2, 3)\nname, value\naaron, 0\nalice, 1\nbob, 2\n", sorted.String())
	assert.Equal(t, m.Capacity(), sorted.Capacity())

	// the source keeps insertion order
	assert.Equal(t, "alice", m.At(0, 0).String())

	same, err := m.SortedBy(9)
	require.NoError(t, err)
	assert.Equal(t, m.String(), same.String())
}

func TestIndex_LargeIntegers(t *testing.T) {
	const big = 1 << 53

	m, err := New(1, WithColumnNames("n"))
	require.NoError(t, err)
	for _, v := range []Value{Integer(big + 1), Real(big), Integer(big), Integer(big + 1), Real(big + 2)} {
		_, err := m.AppendRow(RowOf(v))
		require.NoError(t, err)
	}

	idx := NewIndex(m, 0)
	assert.Equal(t, []int{1, 2, 0, 3, 4}, idx.Rows())
	assert.Equal(t, []int{0, 3}, idx.Lookup(Integer(big+1)))
	assert.Equal(t, []int{2}, idx.Lookup(Integer(big)))
	assert.Equal(t, []int{1}, idx.Lookup(Real(big)))
	assert.Equal(t, []int{4}, idx.Lookup(Real(big+2)))
}
