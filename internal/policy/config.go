package policy

import (
	"fmt"
	"slices"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/sahilm/fuzzy"
)

// Fingerprint hashes the parts of the configuration that violations depend
// on. Two configs with the same fingerprint produce the same violations.
func (c *Config) Fingerprint() (uint64, error) {
	h, err := hashstructure.Hash(c, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("hashing policy config: %w", err)
	}

	return h, nil
}

// Enabled returns the names of the enabled categories in alphabetical order.
func (c Categories) Enabled() []string {
	names := make([]string, 0, len(c))
	for name, cat := range c {
		if cat.Enabled {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names
}

// Search ranks the enabled categories by how well they match query, best
// first. An empty query returns every enabled category.
func (c Categories) Search(query string) []string {
	names := c.Enabled()
	if query == "" {
		return names
	}

	matches := fuzzy.Find(query, names)

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}

	return out
}
