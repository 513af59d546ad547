package compare

// Options controls how lines are normalized and matched. The zero value
// compares lines strictly, case-sensitive and by exact match.
type Options struct {
	Trim       bool // strip leading and trailing whitespace
	IgnoreCase bool // lowercase before comparing
	Contains   bool // match when either line contains the other
}

func (o *Options) normalizes() bool {
	return o != nil && (o.Trim || o.IgnoreCase)
}

func (o *Options) containment() bool {
	return o != nil && o.Contains
}
