package reversedbinary_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzles/fastreader"
	"github.com/katalvlaran/puzzles/reversedbinary"
)

// reverseByString is a slow reference built on the textual binary form.
func reverseByString(x int) int {
	s := []byte(strconv.FormatInt(int64(x), 2))
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	n, _ := strconv.ParseInt(string(s), 2, 64)
	return int(n)
}

// TestReverse_Known covers hand-checked values.
func TestReverse_Known(t *testing.T) {
	cases := map[int]int{
		1:       1,
		2:       1,
		3:       3,
		6:       3,
		11:      13,
		13:      11,
		47:      61,
		1 << 29: 1,
	}
	cases[reversedbinary.MaxValue] = reverseByString(reversedbinary.MaxValue)
	for in, want := range cases {
		got, err := reversedbinary.Reverse(in)
		require.NoError(t, err, "x=%d", in)
		assert.Equal(t, want, got, "x=%d", in)
	}
}

// TestReverse_MatchesReference compares against the string-based reference.
func TestReverse_MatchesReference(t *testing.T) {
	for x := 1; x <= 5000; x++ {
		got, err := reversedbinary.Reverse(x)
		require.NoError(t, err)
		require.Equal(t, reverseByString(x), got, "x=%d", x)
	}
}

// TestReverse_Involution checks that reversing twice restores odd inputs.
func TestReverse_Involution(t *testing.T) {
	for x := 1; x < 4096; x += 2 {
		once, err := reversedbinary.Reverse(x)
		require.NoError(t, err)
		twice, err := reversedbinary.Reverse(once)
		require.NoError(t, err)
		require.Equal(t, x, twice)
	}
}

// TestReverse_OutOfRange rejects values outside the domain.
func TestReverse_OutOfRange(t *testing.T) {
	for _, x := range []int{0, -1, reversedbinary.MaxValue + 1} {
		_, err := reversedbinary.Reverse(x)
		assert.ErrorIs(t, err, reversedbinary.ErrOutOfRange, "x=%d", x)
	}
}

// TestSolve checks the text round trip and its failures.
func TestSolve(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, reversedbinary.Solve(fastreader.New(strings.NewReader("13\n")), &out))
	assert.Equal(t, "11\n", out.String())

	err := reversedbinary.Solve(fastreader.New(strings.NewReader("")), &bytes.Buffer{})
	assert.ErrorIs(t, err, fastreader.ErrEndOfInput)

	err = reversedbinary.Solve(fastreader.New(strings.NewReader("0")), &bytes.Buffer{})
	assert.ErrorIs(t, err, reversedbinary.ErrOutOfRange)
}
