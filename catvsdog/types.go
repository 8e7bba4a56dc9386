package catvsdog

import (
	"errors"
	"fmt"
)

// ErrMalformedVote is returned when a vote token cannot be parsed.
var ErrMalformedVote = errors.New("catvsdog: malformed vote")

// Vote is a single voter's preference. The zero value is a dog lover's
// vote keeping item 0 and throwing out item 0.
type Vote struct {
	CatLover bool
	Keep     int
	Throwout int
}

// ConflictsWith reports whether v and o belong to opposite classes and one
// keeps what the other throws out.
func (v Vote) ConflictsWith(o Vote) bool {
	return v.CatLover != o.CatLover && (v.Keep == o.Throwout || v.Throwout == o.Keep)
}

// String renders the vote the way it appears in the input, e.g. "C1 D2".
func (v Vote) String() string {
	keep, throw := 'D', 'C'
	if v.CatLover {
		keep, throw = 'C', 'D'
	}
	return fmt.Sprintf("%c%d %c%d", keep, v.Keep, throw, v.Throwout)
}

// TestCase is one parsed input block.
type TestCase struct {
	Cats  int // declared number of cats; not used by the matcher
	Dogs  int // declared number of dogs; not used by the matcher
	Votes []Vote
}

// Option configures DiscardCount and Solve via functional arguments.
type Option func(*Options)

// Options holds the matcher's knobs.
type Options struct {
	// OnMatch is called for every cat/dog pair the greedy matcher assigns.
	OnMatch func(cat, dog Vote)

	// Exact answers with a maximum matching instead of the greedy one.
	Exact bool
}

// DefaultOptions returns the greedy matcher with a no-op OnMatch hook.
func DefaultOptions() Options {
	return Options{
		OnMatch: func(Vote, Vote) {},
		Exact:   false,
	}
}

// WithOnMatch registers a callback fired for each greedy match.
func WithOnMatch(fn func(cat, dog Vote)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMatch = fn
		}
	}
}

// WithExact makes DiscardCount use MaxMatching.
func WithExact() Option {
	return func(o *Options) {
		o.Exact = true
	}
}
