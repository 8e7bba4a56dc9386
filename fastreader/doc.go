// Package fastreader reads whitespace-separated tokens from an io.Reader,
// one buffered line at a time, with typed parse helpers for the numeric
// shapes puzzle inputs are made of.
//
// Typical use:
//
//	r := fastreader.New(os.Stdin)
//	n, err := r.NextInt()
//	name, err := r.Next()
//
// Tokens are read lazily: a new line is pulled from the underlying reader
// only when the current one is exhausted, so CanReadMore and Next may block
// on I/O.
//
// # Errors
//
//	ErrEndOfInput     - the stream ended before a token was found.
//	ErrMalformedToken - a token could not be parsed as the requested type.
//
// Read failures of the underlying reader are returned as-is.
//
// A Reader is not safe for concurrent use.
package fastreader
