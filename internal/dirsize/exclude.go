package dirsize

// Patterns is a set of exact entry names to leave out of a scan.
type Patterns map[string]struct{}

// NewPatterns builds a pattern set, ignoring empty names.
func NewPatterns(names []string) Patterns {
	patterns := make(Patterns, len(names))

	for _, name := range names {
		if name == "" {
			continue
		}

		patterns[name] = struct{}{}
	}

	return patterns
}

// Excluded reports whether name equals one of the patterns.
// With rootOnly set, only entries at depth 0 (the direct children of the
// scan root) can be excluded.
func (p Patterns) Excluded(depth int, name string, rootOnly bool) bool {
	if rootOnly && depth > 0 {
		return false
	}

	_, ok := p[name]

	return ok
}
