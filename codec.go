package sqlmatrix

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/klauspost/compress/zstd"
)

// Wire format.
//
//	value:  kind byte, then varint (INTEGER), 8 byte little endian bits
//	        (REAL) or uvarint length + bytes (TEXT, BLOB)
//	matrix: "SQLM", version byte, uvarint max name length, uvarint columns,
//	        uvarint rows, name, column names, rows*columns values row-major
const (
	matrixMagic   = "SQLM"
	matrixVersion = 1
)

// AppendBinary appends the wire encoding of v to buf.
func (v Value) AppendBinary(buf []byte) []byte {
	buf = append(buf, byte(v.kind))

	switch v.kind {
	case KindInteger:
		buf = binary.AppendVarint(buf, v.i64)
	case KindReal:
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v.f64))
	case KindText, KindBinary:
		buf = appendString(buf, v.buf)
	}

	return buf
}

func (v Value) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(nil), nil
}

func (v *Value) UnmarshalBinary(data []byte) error {
	val, rest, err := DecodeValue(data)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidEncoding, len(rest))
	}

	*v = val
	return nil
}

// DecodeValue reads one value from the front of data and returns the rest.
func DecodeValue(data []byte) (Value, []byte, error) {
	if len(data) == 0 {
		return Value{}, nil, fmt.Errorf("%w: short buffer for value kind", ErrInvalidEncoding)
	}
	kind := Kind(data[0])
	data = data[1:]

	switch kind {
	case KindNull:
		return Null(), data, nil
	case KindInteger:
		i, n := binary.Varint(data)
		if n <= 0 {
			return Value{}, nil, fmt.Errorf("%w: invalid integer", ErrInvalidEncoding)
		}
		return Integer(i), data[n:], nil
	case KindReal:
		if len(data) < 8 {
			return Value{}, nil, fmt.Errorf("%w: short buffer for real", ErrInvalidEncoding)
		}
		return Real(math.Float64frombits(binary.LittleEndian.Uint64(data))), data[8:], nil
	case KindText, KindBinary:
		s, rest, err := readString(data)
		if err != nil {
			return Value{}, nil, err
		}
		if kind == KindText {
			return Text(s), rest, nil
		}
		return Value{kind: KindBinary, buf: s}, rest, nil
	}

	return Value{}, nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidEncoding, kind)
}

// MarshalBinary encodes the populated rows, names and name bound of m.
// Spare capacity is not encoded.
func (m *Matrix) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 16+m.rowCount*m.colCount*4)
	buf = append(buf, matrixMagic...)
	buf = append(buf, matrixVersion)
	buf = binary.AppendUvarint(buf, uint64(m.names.MaxLength()))
	buf = binary.AppendUvarint(buf, uint64(m.colCount))
	buf = binary.AppendUvarint(buf, uint64(m.rowCount))
	buf = appendString(buf, m.name)
	for i := 0; i < m.colCount; i++ {
		buf = appendString(buf, m.names.Name(i))
	}
	for _, v := range m.cells[:m.rowCount*m.colCount] {
		buf = v.AppendBinary(buf)
	}

	return buf, nil
}

// UnmarshalBinary replaces m with the decoded matrix. m is untouched on error.
func (m *Matrix) UnmarshalBinary(data []byte) error {
	if len(data) < len(matrixMagic)+1 || string(data[:len(matrixMagic)]) != matrixMagic {
		return fmt.Errorf("%w: missing matrix header", ErrInvalidEncoding)
	}
	if v := data[len(matrixMagic)]; v != matrixVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidEncoding, v)
	}
	data = data[len(matrixMagic)+1:]

	var header [3]uint64
	for i := range header {
		u, n := binary.Uvarint(data)
		if n <= 0 || u > math.MaxInt32 {
			return fmt.Errorf("%w: invalid matrix header", ErrInvalidEncoding)
		}
		header[i] = u
		data = data[n:]
	}
	maxName, cols, rows := int(header[0]), int(header[1]), int(header[2])

	// every encoded name and value takes at least one byte
	if cols > len(data) {
		return fmt.Errorf("%w: %d column names in %d bytes", ErrInvalidEncoding, cols, len(data))
	}
	if cols > 0 && rows > len(data)/cols {
		return fmt.Errorf("%w: %d rows of %d columns in %d bytes", ErrInvalidEncoding, rows, cols, len(data))
	}

	name, data, err := readString(data)
	if err != nil {
		return err
	}
	var names []string
	for i := 0; i < cols; i++ {
		var n string
		if n, data, err = readString(data); err != nil {
			return err
		}
		names = append(names, n)
	}

	out, err := New(cols,
		WithName(name),
		WithColumnNames(names...),
		WithCapacity(rows),
		WithMaxNameLength(maxName),
		WithMaxCells(m.maxCells),
	)
	if err != nil {
		return err
	}

	// zero width rows carry no cells to decode
	if cols == 0 {
		out.rowCount = rows
	}

	row := NewRow(cols)
	for r := 0; cols > 0 && r < rows; r++ {
		for c := 0; c < cols; c++ {
			var v Value
			if v, data, err = DecodeValue(data); err != nil {
				return err
			}
			row.Set(c, v)
		}
		if _, err := out.AppendRow(row); err != nil {
			return err
		}
	}
	if len(data) != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidEncoding, len(data))
	}

	*m = *out
	return nil
}

// EncodeCompressed returns the zstd-compressed binary encoding of m.
func EncodeCompressed(m *Matrix) ([]byte, error) {
	raw, err := m.MarshalBinary()
	if err != nil {
		return nil, err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.EncodeAll(raw, nil), nil
}

// DecodeCompressed reverses EncodeCompressed.
func DecodeCompressed(data []byte) (*Matrix, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, err)
	}

	m := &Matrix{}
	if err := m.UnmarshalBinary(raw); err != nil {
		return nil, err
	}

	return m, nil
}

func appendString(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

func readString(data []byte) (string, []byte, error) {
	l, n := binary.Uvarint(data)
	if n <= 0 {
		return "", nil, fmt.Errorf("%w: invalid length", ErrInvalidEncoding)
	}
	data = data[n:]
	if uint64(len(data)) < l {
		return "", nil, fmt.Errorf("%w: short buffer for %d bytes", ErrInvalidEncoding, l)
	}

	return string(data[:l]), data[l:], nil
}
