package violation

import "slices"

// has reports whether vs holds a violation of the given kind.
func has(vs []Violation, kind Kind) bool {
	return slices.ContainsFunc(vs, func(v Violation) bool { return v.Name == kind })
}

// without returns a copy of vs with every violation of the given kinds removed.
func without(vs []Violation, kinds ...Kind) []Violation {
	out := make([]Violation, 0, len(vs))

	for _, v := range vs {
		if slices.Contains(kinds, v.Name) {
			continue
		}

		out = append(out, v)
	}

	return out
}
