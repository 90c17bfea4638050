package sqlmatrix

// DefaultCapacity is the number of row slots a new matrix starts with.
const DefaultCapacity = 1

type options struct {
	name          string
	columnNames   []string
	capacity      int
	maxNameLength int
	maxCells      int
}

// Option configures a Matrix at construction.
type Option func(*options)

// WithName sets the display name. It is bounded like column names.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithColumnNames names the columns in order. Extra names are dropped and
// missing ones stay empty.
func WithColumnNames(names ...string) Option {
	return func(o *options) {
		o.columnNames = names
	}
}

// WithCapacity sets the initial number of row slots. Values below 1 use
// DefaultCapacity.
func WithCapacity(rows int) Option {
	return func(o *options) {
		o.capacity = rows
	}
}

// WithMaxNameLength bounds column and table names to n bytes.
func WithMaxNameLength(n int) Option {
	return func(o *options) {
		o.maxNameLength = n
	}
}

// WithMaxCells caps capacity*columns. Growth past the cap fails with
// ErrAllocation. Zero means no cap beyond what the runtime can allocate.
func WithMaxCells(n int) Option {
	return func(o *options) {
		o.maxCells = n
	}
}

func newOptions(opts []Option) options {
	o := options{
		capacity:      DefaultCapacity,
		maxNameLength: DefaultMaxNameLength,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.capacity < 1 {
		o.capacity = DefaultCapacity
	}
	if o.maxNameLength < 1 {
		o.maxNameLength = DefaultMaxNameLength
	}
	if o.maxCells < 0 {
		o.maxCells = 0
	}

	return o
}
