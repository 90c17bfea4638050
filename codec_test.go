package sqlmatrix

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Binary(t *testing.T) {
	tests := []struct {
		name string
		val  Value
	}{
		{"Null", Null()},
		{"IntMin", Integer(math.MinInt64)},
		{"IntMax", Integer(math.MaxInt64)},
		{"Real", Real(3.14159)},
		{"RealInf", Real(math.Inf(1))},
		{"Text", Text("hello world")},
		{"TextNonAscii", Text("こんにちは")},
		{"Blob", Blob([]byte{0, 1, 0})},
		{"BlobEmpty", Blob([]byte{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.val.MarshalBinary()
			require.NoError(t, err)

			var got Value
			require.NoError(t, got.UnmarshalBinary(b))
			assert.True(t, tt.val.Equal(got))
			assert.Equal(t, tt.val.Kind(), got.Kind())
		})
	}
}

func TestValue_BinaryInvalid(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":     {},
		"kind":      {9},
		"int":       {byte(KindInteger)},
		"real":      {byte(KindReal), 1, 2},
		"text":      {byte(KindText), 5, 'a'},
		"trailing":  {byte(KindNull), 0},
		"badlength": {byte(KindBinary)},
	} {
		var v Value
		assert.ErrorIs(t, v.UnmarshalBinary(data), ErrInvalidEncoding, name)
	}
}

func TestMatrix_Binary(t *testing.T) {
	m := scenarioMatrix(t)
	_, err := m.AppendRow(RowOf(Null(), Real(-1.25)))
	require.NoError(t, err)
	_, err = m.AppendRow(RowOf(Blob([]byte{7}), Integer(9)))
	require.NoError(t, err)

	b, err := m.MarshalBinary()
	require.NoError(t, err)

	var got Matrix
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, m.String(), got.String())
	assert.Equal(t, m.RowCount(), got.RowCount())
	for i := 0; i < m.RowCount(); i++ {
		assert.True(t, m.Row(i).Equal(got.Row(i)), "row %d", i)
	}
	assert.Equal(t, m.ColumnNames(), got.ColumnNames())

	// appends keep working on a decoded matrix
	ok, err := got.AppendRow(RowOf(Text("dave"), Integer(4)))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatrix_BinaryInvalid(t *testing.T) {
	m := scenarioMatrix(t)
	b, err := m.MarshalBinary()
	require.NoError(t, err)

	target := scenarioMatrix(t)
	before := target.String()

	for name, data := range map[string][]byte{
		"empty":     nil,
		"magic":     []byte("NOPE\x01"),
		"version":   append([]byte("SQLM"), 9),
		"truncated": b[:len(b)-2],
		"trailing":  append(append([]byte{}, b...), 0),
		"columns":   matrixHeader(31, math.MaxInt32, 0),
		"cells":     matrixHeader(31, 1, math.MaxInt32),
	} {
		assert.ErrorIs(t, target.UnmarshalBinary(data), ErrInvalidEncoding, name)
		assert.Equal(t, before, target.String(), name)
	}
}

// matrixHeader encodes a header for an unnamed matrix with no column names
// or cells after it.
func matrixHeader(maxName, cols, rows uint64) []byte {
	b := append([]byte(matrixMagic), matrixVersion)
	b = binary.AppendUvarint(b, maxName)
	b = binary.AppendUvarint(b, cols)
	b = binary.AppendUvarint(b, rows)
	return append(b, 0)
}

func TestMatrix_BinaryZeroWidth(t *testing.T) {
	m, err := New(0, WithName("empty"))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		ok, err := m.AppendRow(NewRow(0))
		require.NoError(t, err)
		require.True(t, ok)
	}

	b, err := m.MarshalBinary()
	require.NoError(t, err)

	var got Matrix
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, "empty", got.Name())
	assert.Equal(t, 0, got.ColumnCount())
	assert.Equal(t, 3, got.RowCount())

	// row counts of zero width matrices are taken from the header as is
	require.NoError(t, got.UnmarshalBinary(matrixHeader(31, 0, math.MaxInt32)))
	assert.Equal(t, math.MaxInt32, got.RowCount())
	assert.Equal(t, math.MaxInt32, got.Capacity())

	ok, err := got.AppendRow(NewRow(0))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatrix_Compressed(t *testing.T) {
	m, err := New(2, WithName("big"), WithColumnNames("id", "payload"))
	require.NoError(t, err)
	for i := 0; i < 500; i++ {
		_, err := m.AppendRow(RowOf(Integer(int64(i)), Text("the same payload over and over")))
		require.NoError(t, err)
	}

	raw, err := m.MarshalBinary()
	require.NoError(t, err)
	data, err := EncodeCompressed(m)
	require.NoError(t, err)
	assert.Less(t, len(data), len(raw))

	got, err := DecodeCompressed(data)
	require.NoError(t, err)
	assert.Equal(t, m.String(), got.String())

	_, err = DecodeCompressed([]byte("not zstd"))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}
