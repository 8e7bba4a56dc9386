package braces

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("braces: invalid option supplied")

// Defaults used by DefaultOptions.
const (
	DefaultLimit = 5
	indent       = "    "
)

// DefaultExtensions are the file extensions analyzed when none are given.
var DefaultExtensions = []string{"java", "cpp", "c", "h"}

// Analysis is the brace profile of one source.
type Analysis struct {
	Path     string
	MaxDepth int
	Depths   []int  // Depths[i] counts the blocks opened at depth i+1
	Pretty   string // braces only, one per line; empty in quiet mode
}

// Option configures Ugliest via functional arguments.
type Option func(*Options)

// Options holds the directory scan parameters.
type Options struct {
	// Recursive descends into subdirectories.
	Recursive bool

	// Extensions lists accepted file extensions, without the dot,
	// compared case-insensitively.
	Extensions []string

	// Limit is the number of files reported.
	Limit int

	// Quiet skips building the pretty outline.
	Quiet bool

	err error
}

// DefaultOptions returns a recursive scan of DefaultExtensions reporting
// DefaultLimit files with outlines.
func DefaultOptions() Options {
	return Options{
		Recursive:  true,
		Extensions: append([]string(nil), DefaultExtensions...),
		Limit:      DefaultLimit,
		Quiet:      false,
	}
}

// WithRecursive toggles descending into subdirectories.
func WithRecursive(recursive bool) Option {
	return func(o *Options) {
		o.Recursive = recursive
	}
}

// WithExtensions replaces the accepted extensions. Leading dots and
// surrounding blanks are ignored; an empty set is a violation.
func WithExtensions(exts ...string) Option {
	return func(o *Options) {
		var clean []string
		for _, e := range exts {
			e = strings.TrimPrefix(strings.TrimSpace(e), ".")
			if e != "" {
				clean = append(clean, e)
			}
		}
		if len(clean) == 0 {
			o.err = fmt.Errorf("%w: no file extensions given", ErrOptionViolation)
			return
		}
		o.Extensions = clean
	}
}

// WithLimit sets how many files are reported.
//
//	n ≥ 1: keep the n deepest files
//	n < 1: invalid option → ErrOptionViolation
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: limit must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithQuiet skips the pretty outline.
func WithQuiet() Option {
	return func(o *Options) {
		o.Quiet = true
	}
}
