package sqlmatrix

import "errors"

var (
	// ErrTypeMismatch is returned when a typed accessor is called on a value of another kind
	ErrTypeMismatch     = errors.New("Value type mismatch")
	// ErrAllocation is returned when the backing storage of a matrix cannot be allocated
	ErrAllocation       = errors.New("Cannot allocate cell storage")
	ErrInvalidLiteral   = errors.New("Invalid literal")
	ErrInvalidEncoding  = errors.New("Invalid encoding")
	ErrUnsupportedValue = errors.New("Unsupported value")
)
