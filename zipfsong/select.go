package zipfsong

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/puzzles/boundedpq"
	"github.com/katalvlaran/puzzles/fastreader"
)

// Select reads an album and returns the names of its m best songs, best
// first. Fewer names are returned when the album has fewer than m songs.
func Select(r *fastreader.Reader) ([]string, error) {
	n, err := r.NextInt()
	if err != nil {
		return nil, fmt.Errorf("zipfsong: song count: %w", err)
	}
	m, err := r.NextInt()
	if err != nil {
		return nil, fmt.Errorf("zipfsong: selection size: %w", err)
	}

	q, err := boundedpq.New(m, Less)
	if err != nil {
		return nil, fmt.Errorf("zipfsong: %w", err)
	}
	for i := 1; i <= n; i++ {
		plays, err := r.NextInt64()
		if err != nil {
			return nil, fmt.Errorf("zipfsong: song %d plays: %w", i, err)
		}
		name, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("zipfsong: song %d name: %w", i, err)
		}
		song, err := NewSong(plays*int64(i), i, name)
		if err != nil {
			return nil, fmt.Errorf("zipfsong: song %d: %w", i, err)
		}
		q.Add(song)
	}

	// Drain is worst first
	songs := q.Drain()
	names := make([]string, len(songs))
	for i, s := range songs {
		names[len(songs)-1-i] = s.Name
	}
	return names, nil
}

// Solve writes the selected names to w, one per line.
func Solve(r *fastreader.Reader, w io.Writer) error {
	names, err := Select(r)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, name := range names {
		if _, err := fmt.Fprintln(bw, name); err != nil {
			return fmt.Errorf("zipfsong: write: %w", err)
		}
	}
	return bw.Flush()
}
