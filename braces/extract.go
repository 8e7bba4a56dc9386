package braces

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Extract profiles the braces of src. name is recorded as the Analysis path.
//
// Complexity: O(len(src)) time; O(depth) memory, plus the outline when
// quiet is false.
func Extract(name string, src []byte, quiet bool) Analysis {
	var (
		depth  int
		depths []int
		lines  []string
	)
	for _, c := range src {
		switch c {
		case '{':
			if !quiet {
				lines = append(lines, strings.Repeat(indent, depth)+"{")
			}
			depth++
			if depth > len(depths) {
				depths = append(depths, 0)
			}
			depths[depth-1]++
		case '}':
			if depth > 0 {
				depth--
			}
			if !quiet {
				lines = append(lines, strings.Repeat(indent, depth)+"}")
			}
		}
	}

	return Analysis{
		Path:     name,
		MaxDepth: len(depths),
		Depths:   depths,
		Pretty:   strings.Join(lines, "\n"),
	}
}

// AnalyzeFile reads and profiles the file at path.
func AnalyzeFile(path string, quiet bool) (Analysis, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Analysis{}, fmt.Errorf("braces: %w", err)
	}
	return Extract(path, src, quiet), nil
}

// Format writes the report: path, outline (if any), per-depth counts and
// the maximum depth.
func (a Analysis) Format(w io.Writer) error {
	counts := make([]string, len(a.Depths))
	for i, n := range a.Depths {
		counts[i] = strconv.Itoa(n)
	}

	var sb strings.Builder
	sb.WriteString(a.Path)
	sb.WriteByte('\n')
	if a.Pretty != "" {
		sb.WriteString(a.Pretty)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Depths: [%s]\n", strings.Join(counts, ", "))
	fmt.Fprintf(&sb, "Max depth: %d\n", a.MaxDepth)

	_, err := io.WriteString(w, sb.String())
	return err
}
