package zipfsong_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/puzzles/fastreader"
	"github.com/katalvlaran/puzzles/zipfsong"
)

// BenchmarkSelect measures picking 50 of 50_000 tracks.
func BenchmarkSelect(b *testing.B) {
	const n, m = 50000, 50
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d\n", n, m)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "%d track_%d\n", (i*7919)%100000, i)
	}
	input := sb.String()

	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := zipfsong.Select(fastreader.New(strings.NewReader(input))); err != nil {
			b.Fatal(err)
		}
	}
}
