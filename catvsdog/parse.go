package catvsdog

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/puzzles/fastreader"
)

// ParseVote builds a Vote from its two input tokens, e.g. "C1" "D2".
// The first token's letter decides the class; only the character at index
// 1 of each token is read as the item number.
func ParseVote(keep, throwout string) (Vote, error) {
	if len(keep) < 2 || len(throwout) < 2 {
		return Vote{}, fmt.Errorf("%w: %q %q: token too short", ErrMalformedVote, keep, throwout)
	}

	var v Vote
	switch keep[0] {
	case 'C':
		v.CatLover = true
	case 'D':
	default:
		return Vote{}, fmt.Errorf("%w: %q: class must be C or D", ErrMalformedVote, keep)
	}

	var ok bool
	if v.Keep, ok = digit(keep[1]); !ok {
		return Vote{}, fmt.Errorf("%w: %q: no digit at index 1", ErrMalformedVote, keep)
	}
	if v.Throwout, ok = digit(throwout[1]); !ok {
		return Vote{}, fmt.Errorf("%w: %q: no digit at index 1", ErrMalformedVote, throwout)
	}

	return v, nil
}

func digit(c byte) (int, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

// ReadTestCase reads one "c d v" header followed by v vote lines.
// All vote lines are consumed, including when v == 1.
func ReadTestCase(r *fastreader.Reader) (TestCase, error) {
	var (
		tc  TestCase
		v   int
		err error
	)
	if tc.Cats, err = r.NextInt(); err != nil {
		return TestCase{}, fmt.Errorf("cats: %w", err)
	}
	if tc.Dogs, err = r.NextInt(); err != nil {
		return TestCase{}, fmt.Errorf("dogs: %w", err)
	}
	if v, err = r.NextInt(); err != nil {
		return TestCase{}, fmt.Errorf("votes: %w", err)
	}
	if v < 0 {
		return TestCase{}, fmt.Errorf("%w: negative vote count %d", ErrMalformedVote, v)
	}

	tc.Votes = make([]Vote, 0, v)
	for i := 1; i <= v; i++ {
		keep, err := r.Next()
		if err != nil {
			return TestCase{}, fmt.Errorf("vote %d: %w", i, err)
		}
		throwout, err := r.Next()
		if err != nil {
			return TestCase{}, fmt.Errorf("vote %d: %w", i, err)
		}
		vote, err := ParseVote(keep, throwout)
		if err != nil {
			return TestCase{}, fmt.Errorf("vote %d: %w", i, err)
		}
		tc.Votes = append(tc.Votes, vote)
	}

	return tc, nil
}

// Solve reads the test-case count and answers every case on its own line.
// Results computed before a read failure are still written.
func Solve(r *fastreader.Reader, w io.Writer, opts ...Option) error {
	bw := bufio.NewWriter(w)

	t, err := r.NextInt()
	if err != nil {
		return fmt.Errorf("catvsdog: test case count: %w", err)
	}
	for i := 1; i <= t; i++ {
		tc, err := ReadTestCase(r)
		if err != nil {
			_ = bw.Flush()
			return fmt.Errorf("catvsdog: test case %d: %w", i, err)
		}
		if _, err := fmt.Fprintln(bw, DiscardCount(tc.Votes, opts...)); err != nil {
			return fmt.Errorf("catvsdog: write: %w", err)
		}
	}

	return bw.Flush()
}
