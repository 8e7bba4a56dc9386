package fastreader

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// Reader hands out whitespace-separated tokens line by line.
type Reader struct {
	src     io.Reader
	scanner *bufio.Scanner
	tokens  []string // unread tokens of the current line
	err     error    // first read failure, sticky
}

// New returns a Reader that tokenizes r.
func New(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{src: r, scanner: sc}
}

// tokenize pulls lines until one carries a token. Returns false at end of
// stream or on read failure.
func (r *Reader) tokenize() bool {
	for len(r.tokens) == 0 {
		if r.err != nil {
			return false
		}
		if !r.scanner.Scan() {
			r.err = r.scanner.Err()
			return false
		}
		r.tokens = strings.Fields(r.scanner.Text())
	}
	return true
}

// CanReadMore reports whether another token is available. It may read
// (and block on) the underlying stream. A read failure yields false; see Err.
func (r *Reader) CanReadMore() bool {
	return r.tokenize()
}

// Err returns the first non-EOF read failure, if any.
func (r *Reader) Err() error {
	return r.err
}

// Next returns the next token.
func (r *Reader) Next() (string, error) {
	if !r.tokenize() {
		if r.err != nil {
			return "", fmt.Errorf("fastreader: read: %w", r.err)
		}
		return "", ErrEndOfInput
	}
	tok := r.tokens[0]
	r.tokens = r.tokens[1:]
	return tok, nil
}

// NextInt parses the next token as a base-10 int.
func (r *Reader) NextInt() (int, error) {
	tok, err := r.Next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as int: %v", ErrMalformedToken, tok, err)
	}
	return n, nil
}

// NextInt64 parses the next token as a base-10 int64.
func (r *Reader) NextInt64() (int64, error) {
	tok, err := r.Next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as int64: %v", ErrMalformedToken, tok, err)
	}
	return n, nil
}

// NextFloat64 parses the next token as a float64.
func (r *Reader) NextFloat64() (float64, error) {
	tok, err := r.Next()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as float64: %v", ErrMalformedToken, tok, err)
	}
	return f, nil
}

// NextBigInt parses the next token as an arbitrary-precision integer.
func (r *Reader) NextBigInt() (*big.Int, error) {
	tok, err := r.Next()
	if err != nil {
		return nil, err
	}
	n, ok := new(big.Int).SetString(tok, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q as big.Int", ErrMalformedToken, tok)
	}
	return n, nil
}

// NextBigFloat parses the next token as an arbitrary-precision decimal.
func (r *Reader) NextBigFloat() (*big.Float, error) {
	tok, err := r.Next()
	if err != nil {
		return nil, err
	}
	f, ok := new(big.Float).SetString(tok)
	if !ok {
		return nil, fmt.Errorf("%w: %q as big.Float", ErrMalformedToken, tok)
	}
	return f, nil
}

// Close closes the underlying reader when it is an io.Closer.
func (r *Reader) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
