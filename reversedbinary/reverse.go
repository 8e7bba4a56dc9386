package reversedbinary

import (
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/katalvlaran/puzzles/fastreader"
)

// Input domain bounds.
const (
	MinValue = 1
	MaxValue = 1_000_000_000
)

// ErrOutOfRange is returned for inputs outside [MinValue, MaxValue].
var ErrOutOfRange = errors.New("reversedbinary: value out of range")

// Reverse returns x with its significant binary digits in reverse order.
func Reverse(x int) (int, error) {
	if x < MinValue || x > MaxValue {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, x, MinValue, MaxValue)
	}
	r := bits.Reverse32(uint32(x))
	return int(r >> bits.TrailingZeros32(r)), nil
}

// Solve reads one integer from r and writes its reversal to w.
func Solve(r *fastreader.Reader, w io.Writer) error {
	x, err := r.NextInt()
	if err != nil {
		return fmt.Errorf("reversedbinary: %w", err)
	}
	rev, err := Reverse(x)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, rev)
	return err
}
