package zipfsong

import (
	"errors"
	"fmt"
)

// ErrInvalidSong is returned when a Song's fields are out of range.
var ErrInvalidSong = errors.New("zipfsong: invalid song")

// Song is one album track with its computed quality.
type Song struct {
	Quality int64
	Order   int // 1-based position on the album
	Name    string
}

// NewSong validates and builds a Song.
func NewSong(quality int64, order int, name string) (Song, error) {
	switch {
	case quality < 0:
		return Song{}, fmt.Errorf("%w: quality %d is negative", ErrInvalidSong, quality)
	case order < 1:
		return Song{}, fmt.Errorf("%w: order %d is not positive", ErrInvalidSong, order)
	case name == "":
		return Song{}, fmt.Errorf("%w: empty name", ErrInvalidSong)
	}
	return Song{Quality: quality, Order: order, Name: name}, nil
}

// Less orders songs from worst to best: lower quality first, and on equal
// quality the later track first.
func Less(a, b Song) bool {
	if a.Quality == b.Quality {
		return a.Order > b.Order
	}
	return a.Quality < b.Quality
}
