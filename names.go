package sqlmatrix

// DefaultMaxNameLength is the number of usable bytes in a column or table name.
const DefaultMaxNameLength = 31

// NameTable maps column indexes to bounded names.
type NameTable struct {
	maxLen int
	names  []string
}

// NewNameTable returns a table of count empty names, each limited to maxLen
// bytes. A maxLen below 1 uses DefaultMaxNameLength.
func NewNameTable(count, maxLen int) *NameTable {
	if count < 0 {
		count = 0
	}
	if maxLen < 1 {
		maxLen = DefaultMaxNameLength
	}

	return &NameTable{
		maxLen: maxLen,
		names:  make([]string, count),
	}
}

func (nt *NameTable) Len() int { return len(nt.names) }

func (nt *NameTable) MaxLength() int { return nt.maxLen }

// Name returns the name at i, or "" when i is out of range.
func (nt *NameTable) Name(i int) string {
	if i < 0 || i >= len(nt.names) {
		return ""
	}

	return nt.names[i]
}

// SetName stores the first MaxLength bytes of name at i. Out of range
// indexes are ignored.
func (nt *NameTable) SetName(i int, name string) {
	if i < 0 || i >= len(nt.names) {
		return
	}

	nt.names[i] = truncate(name, nt.maxLen)
}

// Names returns a copy of all names in column order.
func (nt *NameTable) Names() []string {
	return append([]string(nil), nt.names...)
}

func (nt *NameTable) Clone() *NameTable {
	return &NameTable{
		maxLen: nt.maxLen,
		names:  nt.Names(),
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}

	return s
}
