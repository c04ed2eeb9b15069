package transaction

import "strings"

const (
	tagSeparator = ':'
	tagEscape    = '\\'
)

// TagLevels splits a multi-level tag into one value per level. Levels are
// separated by ':'; an escaped "\:" is kept as a literal colon inside a level.
// An empty tag yields a single empty level.
func TagLevels(tag string) []string {
	var (
		levels []string
		sb     strings.Builder
	)

	for i := 0; i < len(tag); i++ {
		c := tag[i]

		if c == tagEscape && i+1 < len(tag) && tag[i+1] == tagSeparator {
			sb.WriteByte(tagSeparator)
			i++

			continue
		}

		if c == tagSeparator {
			levels = append(levels, sb.String())
			sb.Reset()

			continue
		}

		sb.WriteByte(c)
	}

	return append(levels, sb.String())
}

// JoinTagLevels is the inverse of TagLevels.
func JoinTagLevels(levels []string) string {
	escaped := make([]string, len(levels))
	for i, l := range levels {
		escaped[i] = strings.ReplaceAll(l, string(tagSeparator), `\:`)
	}

	return strings.Join(escaped, string(tagSeparator))
}
