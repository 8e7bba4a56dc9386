package fastreader

import "errors"

// Sentinel errors for token reading.
var (
	// ErrEndOfInput is returned when no token is left in the stream.
	ErrEndOfInput = errors.New("fastreader: end of input")

	// ErrMalformedToken is returned when a token does not parse as the
	// requested type.
	ErrMalformedToken = errors.New("fastreader: malformed token")
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20
