package boundedpq

import "errors"

// Sentinel errors for queue construction.
var (
	// ErrInvalidSize is returned when the capacity is not positive.
	ErrInvalidSize = errors.New("boundedpq: max size must be positive")

	// ErrNilLess is returned when no comparator is supplied.
	ErrNilLess = errors.New("boundedpq: less function is nil")
)
