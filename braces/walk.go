package braces

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/puzzles/boundedpq"
)

// shallower orders analyses by depth; on equal depth the lexically later
// path ranks lower, so earlier paths win ties.
func shallower(a, b Analysis) bool {
	if a.MaxDepth != b.MaxDepth {
		return a.MaxDepth < b.MaxDepth
	}
	return a.Path > b.Path
}

// Ugliest analyzes the files under root and returns the Limit deepest,
// shallowest first.
func Ugliest(root string, opts ...Option) ([]Analysis, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	q, err := boundedpq.New(o.Limit, shallower)
	if err != nil {
		return nil, fmt.Errorf("braces: %w", err)
	}

	visit := func(path string) error {
		a, err := AnalyzeFile(path, o.Quiet)
		if err != nil {
			return err
		}
		q.Add(a)
		return nil
	}

	if o.Recursive {
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("braces: %w", err)
			}
			if d.IsDir() || !accepts(o.Extensions, d.Name()) {
				return nil
			}
			return visit(path)
		})
	} else {
		err = scanFlat(root, o.Extensions, visit)
	}
	if err != nil {
		return nil, err
	}

	return q.Drain(), nil
}

// scanFlat visits the accepted regular files directly inside root.
func scanFlat(root string, exts []string, visit func(string) error) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("braces: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !accepts(exts, e.Name()) {
			continue
		}
		if err := visit(filepath.Join(root, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// accepts reports whether name has a non-empty stem and one of exts.
func accepts(exts []string, name string) bool {
	ext := filepath.Ext(name)
	if ext == "" || len(ext) == len(name) {
		return false
	}
	ext = ext[1:]
	for _, e := range exts {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
