package tagtext

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Text run offsets count grapheme clusters, so a caret never lands inside a
// multi-rune character such as an emoji sequence or an accented letter.

func graphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

func graphemes(s string) []string {
	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		out = append(out, cluster)
	}
	return out
}

// splitGraphemes splits s before the n-th grapheme cluster.
func splitGraphemes(s string, n int) (string, string) {
	if n <= 0 {
		return "", s
	}
	parts := graphemes(s)
	if n >= len(parts) {
		return s, ""
	}
	return strings.Join(parts[:n], ""), strings.Join(parts[n:], "")
}
