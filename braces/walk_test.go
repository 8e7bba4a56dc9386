package braces_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzles/braces"
)

// nest returns a source whose braces nest d levels deep.
func nest(d int) string {
	return strings.Repeat("{", d) + strings.Repeat("}", d)
}

// writeTree creates files (relative path → content) under a temp root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

func baseNames(as []braces.Analysis) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = filepath.ToSlash(a.Path)
	}
	return out
}

// TestUgliest_Recursive keeps the deepest files, shallowest first.
func TestUgliest_Recursive(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.java":        nest(1),
		"b.cpp":         nest(4),
		"sub/c.c":       nest(2),
		"sub/deep/d.h":  nest(5),
		"sub/notes.txt": nest(9),
		".java":         nest(9),
	})

	got, err := braces.Ugliest(root, braces.WithLimit(3), braces.WithQuiet())
	require.NoError(t, err)

	var depths []int
	for _, a := range got {
		depths = append(depths, a.MaxDepth)
		assert.Empty(t, a.Pretty)
	}
	if diff := cmp.Diff([]int{2, 4, 5}, depths); diff != "" {
		t.Errorf("depths mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, strings.HasSuffix(baseNames(got)[2], "sub/deep/d.h"))
}

// TestUgliest_NonRecursive ignores subdirectories.
func TestUgliest_NonRecursive(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.java":       nest(1),
		"b.JAVA":       nest(2),
		"sub/deep.c":   nest(7),
		"dir.java/x.c": nest(8),
	})

	got, err := braces.Ugliest(root, braces.WithRecursive(false))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].MaxDepth)
	assert.Equal(t, 2, got[1].MaxDepth)
	assert.NotEmpty(t, got[1].Pretty)
}

// TestUgliest_Extensions narrows the accepted files.
func TestUgliest_Extensions(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.go":   nest(3),
		"b.java": nest(6),
		"c.rs":   nest(1),
	})

	got, err := braces.Ugliest(root, braces.WithExtensions(".go", " rs "))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []int{1, 3}, []int{got[0].MaxDepth, got[1].MaxDepth})
}

// TestUgliest_TieBreak prefers lexically earlier paths on equal depth.
func TestUgliest_TieBreak(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.c": nest(2),
		"b.c": nest(2),
		"c.c": nest(2),
	})

	got, err := braces.Ugliest(root, braces.WithLimit(2))
	require.NoError(t, err)
	names := baseNames(got)
	require.Len(t, names, 2)
	assert.True(t, strings.HasSuffix(names[0], "/b.c"), names[0])
	assert.True(t, strings.HasSuffix(names[1], "/a.c"), names[1])
}

// TestUgliest_Errors covers option violations and a missing root.
func TestUgliest_Errors(t *testing.T) {
	_, err := braces.Ugliest(t.TempDir(), braces.WithLimit(0))
	assert.ErrorIs(t, err, braces.ErrOptionViolation)

	_, err = braces.Ugliest(t.TempDir(), braces.WithExtensions(" ", "."))
	assert.ErrorIs(t, err, braces.ErrOptionViolation)

	missing := filepath.Join(t.TempDir(), "nope")
	_, err = braces.Ugliest(missing)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = braces.Ugliest(missing, braces.WithRecursive(false))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
