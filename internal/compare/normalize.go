package compare

import "strings"

// Normalize applies the configured transforms to every line. Trim runs
// before case folding. With no transform enabled the input is returned as is.
func Normalize(lines []string, opts *Options) []string {
	if !opts.normalizes() {
		return lines
	}

	normalized := make([]string, len(lines))
	for i, line := range lines {
		if opts.Trim {
			line = trimSpace(line)
		}
		if opts.IgnoreCase {
			line = strings.ToLower(line)
		}
		normalized[i] = line
	}
	return normalized
}
