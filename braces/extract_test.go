package braces_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzles/braces"
)

// TestExtract_Nested checks counts, depth and outline of a nested source.
func TestExtract_Nested(t *testing.T) {
	a := braces.Extract("A.java", []byte("class A { void m() { if (x) { return; } } }"), false)

	assert.Equal(t, "A.java", a.Path)
	assert.Equal(t, 3, a.MaxDepth)
	if diff := cmp.Diff([]int{1, 1, 1}, a.Depths); diff != "" {
		t.Errorf("Depths mismatch (-want +got):\n%s", diff)
	}
	want := "{\n    {\n        {\n        }\n    }\n}"
	assert.Equal(t, want, a.Pretty)
}

// TestExtract_Siblings counts several blocks at the same level.
func TestExtract_Siblings(t *testing.T) {
	a := braces.Extract("s", []byte("{ {} {} { {} } }"), true)
	assert.Equal(t, 3, a.MaxDepth)
	assert.Equal(t, []int{1, 3, 1}, a.Depths)
	assert.Empty(t, a.Pretty, "quiet mode builds no outline")
}

// TestExtract_NoBraces yields an empty profile.
func TestExtract_NoBraces(t *testing.T) {
	a := braces.Extract("plain", []byte("no blocks here"), false)
	assert.Zero(t, a.MaxDepth)
	assert.Empty(t, a.Depths)
	assert.Empty(t, a.Pretty)
}

// TestExtract_Unbalanced keeps depth non-negative on stray closers.
func TestExtract_Unbalanced(t *testing.T) {
	a := braces.Extract("u", []byte("} } { }"), false)
	assert.Equal(t, 1, a.MaxDepth)
	assert.Equal(t, []int{1}, a.Depths)
	assert.Equal(t, "}\n}\n{\n}", a.Pretty)
}

// TestExtract_CountsInsideStrings documents that literals are not skipped.
func TestExtract_CountsInsideStrings(t *testing.T) {
	a := braces.Extract("s", []byte(`x = "{{"; // }`), true)
	assert.Equal(t, 2, a.MaxDepth)
}

// TestAnalyzeFile reads a fixture from disk.
func TestAnalyzeFile(t *testing.T) {
	a, err := braces.AnalyzeFile("testdata/SomeJavaClass.java", false)
	require.NoError(t, err)
	assert.Equal(t, 3, a.MaxDepth)
	assert.Equal(t, []int{1, 1, 1}, a.Depths)

	_, err = braces.AnalyzeFile("testdata/missing.java", false)
	assert.Error(t, err)
}

// TestFormat checks both report shapes.
func TestFormat(t *testing.T) {
	a := braces.Extract("A.java", []byte("{{}}"), false)
	var buf bytes.Buffer
	require.NoError(t, a.Format(&buf))
	assert.Equal(t, "A.java\n{\n    {\n    }\n}\nDepths: [1, 1]\nMax depth: 2\n", buf.String())

	buf.Reset()
	require.NoError(t, braces.Extract("B.c", nil, true).Format(&buf))
	assert.Equal(t, "B.c\nDepths: []\nMax depth: 0\n", buf.String())
}
