package compare

import (
	"slices"
	"strings"
)

// Result holds the outcome of a comparison. Every list is sorted ascending.
//
// Common is filled from the second file only: a line of B lands in Common
// when some line of A matches it. Lines of A are only ever tested, so a
// matched line of A does not show up in Common a second time.
type Result struct {
	Common []string `json:"common"`
	DiffA  []string `json:"diffA"`
	DiffB  []string `json:"diffB"`
}

// Equal reports whether two normalized lines match.
func Equal(x, y string, opts *Options) bool {
	if x == y {
		return true
	}
	if opts.containment() {
		return strings.Contains(y, x) || strings.Contains(x, y)
	}
	return false
}

// Partition classifies every line of a and b as common or unique to its side.
// Duplicates keep their multiplicity.
func Partition(a, b []string, opts *Options) Result {
	inA := matcher(a, opts)
	inB := matcher(b, opts)

	res := Result{
		Common: []string{},
		DiffA:  []string{},
		DiffB:  []string{},
	}

	for _, line := range b {
		if inA(line) {
			res.Common = append(res.Common, line)
		} else {
			res.DiffB = append(res.DiffB, line)
		}
	}
	for _, line := range a {
		if !inB(line) {
			res.DiffA = append(res.DiffA, line)
		}
	}

	slices.Sort(res.Common)
	slices.Sort(res.DiffA)
	slices.Sort(res.DiffB)
	return res
}

// matcher returns a membership test against lines. Exact matching goes
// through a set; containment has to scan.
func matcher(lines []string, opts *Options) func(string) bool {
	if opts.containment() {
		return func(line string) bool {
			return slices.ContainsFunc(lines, func(other string) bool {
				return Equal(other, line, opts)
			})
		}
	}

	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		set[line] = struct{}{}
	}
	return func(line string) bool {
		_, ok := set[line]
		return ok
	}
}
