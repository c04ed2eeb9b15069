package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/MrJamesThe3rd/finnypolicy/internal/encoding"
	"github.com/MrJamesThe3rd/finnypolicy/internal/policy"
)

const sniffLines = 10

// colIndex maps a role to its column in the matched header.
type colIndex map[role]int

type table struct {
	profile   *Profile
	cols      colIndex
	rows      [][]string
	headerRow int
}

// rowNum is the 1-based file row of data row i.
func (t *table) rowNum(i int) int {
	return t.headerRow + i + 2
}

func (t *table) cell(row []string, r role) string {
	idx, ok := t.cols[r]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// readTable decodes r, guesses its delimiter and locates the header of a
// profile of the given kind.
func readTable(r io.Reader, kind Kind) (*table, string, error) {
	decoded, err := encoding.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, "", fmt.Errorf("read csv: %w", err)
	}

	for rowIdx, row := range rows {
		header := make(map[string]int)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if _, seen := header[name]; name != "" && !seen {
				header[name] = i
			}
		}

		for i := range profiles {
			p := &profiles[i]
			if p.Kind != kind {
				continue
			}

			if cols, ok := matchProfile(p, header); ok {
				return &table{profile: p, cols: cols, rows: rows[rowIdx+1:], headerRow: rowIdx}, decoded.Charset, nil
			}
		}
	}

	return nil, "", fmt.Errorf("%w for %s", ErrNoHeader, kind)
}

func matchProfile(p *Profile, header map[string]int) (colIndex, bool) {
	cols := make(colIndex)

	for r, names := range p.Columns {
		for _, name := range names {
			if idx, ok := header[name]; ok {
				cols[r] = idx
				break
			}
		}
	}

	for _, r := range p.Required {
		if _, ok := cols[r]; !ok {
			return nil, false
		}
	}

	return cols, true
}

// sniffDelimiter picks the separator that occurs most on the first lines.
func sniffDelimiter(data []byte) rune {
	lines := bytes.SplitN(data, []byte("\n"), sniffLines+1)
	if len(lines) > sniffLines {
		lines = lines[:sniffLines]
	}

	best, bestCount := ',', 0

	for _, d := range []rune{',', ';', '\t', '|'} {
		n := 0
		for _, line := range lines {
			n += bytes.Count(line, []byte(string(d)))
		}

		if n > bestCount {
			best, bestCount = d, n
		}
	}

	return best
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// parseBool reads a yes/no cell. Empty cells take the fallback.
func parseBool(s string, fallback bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return fallback, nil
	case "true", "yes", "y", "1", "x", "enabled", "active", "sí", "si":
		return true, nil
	case "false", "no", "n", "0", "disabled", "inactive":
		return false, nil
	}

	return false, fmt.Errorf("%w %q", ErrInvalidBool, s)
}

func parseCategories(t *table) (policy.Categories, error) {
	categories := make(policy.Categories)

	for i, row := range t.rows {
		if isBlank(row) {
			continue
		}

		name := t.cell(row, roleName)
		if name == "" {
			return nil, &RowError{Row: t.rowNum(i), Err: ErrMissingName}
		}

		enabled, err := parseBool(t.cell(row, roleEnabled), true)
		if err != nil {
			return nil, &RowError{Row: t.rowNum(i), Err: err}
		}

		categories[name] = policy.Category{Name: name, Enabled: enabled}
	}

	return categories, nil
}

// parseTagLists groups tags by list. Lists are weighted in order of first
// appearance.
func parseTagLists(t *table) (policy.TagLists, error) {
	var lists policy.TagLists

	index := make(map[string]int)

	for i, row := range t.rows {
		if isBlank(row) {
			continue
		}

		listName := defaultTagList
		if _, ok := t.cols[roleList]; ok {
			listName = t.cell(row, roleList)
		}

		name := t.cell(row, roleName)
		if listName == "" || name == "" {
			return nil, &RowError{Row: t.rowNum(i), Err: ErrMissingName}
		}

		enabled, err := parseBool(t.cell(row, roleEnabled), true)
		if err != nil {
			return nil, &RowError{Row: t.rowNum(i), Err: err}
		}

		idx, ok := index[listName]
		if !ok {
			idx = len(lists)
			index[listName] = idx
			lists = append(lists, policy.TagList{
				Name:        listName,
				OrderWeight: idx,
				Tags:        make(map[string]policy.Tag),
			})
		}

		if s := t.cell(row, roleRequired); s != "" {
			required, err := parseBool(s, true)
			if err != nil {
				return nil, &RowError{Row: t.rowNum(i), Err: err}
			}

			lists[idx].Required = &required
		}

		lists[idx].Tags[name] = policy.Tag{Name: name, Enabled: enabled}
	}

	return lists, nil
}
