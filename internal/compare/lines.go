package compare

import (
	"runtime"
	"strings"
	"unicode"
)

// LineEnding is the sequence file content is split on.
var LineEnding = lineEnding(runtime.GOOS)

func lineEnding(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// SplitLines splits content into lines, dropping empty and whitespace-only
// ones. Kept lines are returned as read.
func SplitLines(content []byte) []string {
	return splitOn(string(content), LineEnding)
}

func splitOn(content, sep string) []string {
	lines := []string{}
	for _, line := range strings.Split(content, sep) {
		if trimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// trimSpace strips white space and byte order marks, so the first line of a
// file saved with a BOM still matches once trimmed.
func trimSpace(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
