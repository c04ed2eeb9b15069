package importer

import (
	"fmt"
	"io"
	"log/slog"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Import parses a CSV file configuring the given kind of policy data.
func (s *Service) Import(kind Kind, r io.Reader) (*Result, error) {
	if kind != KindCategories && kind != KindTags {
		return nil, fmt.Errorf("unknown import kind: %s", kind)
	}

	t, charset, err := readTable(r, kind)
	if err != nil {
		return nil, err
	}

	result := &Result{Profile: t.profile.Name, Charset: charset}

	switch kind {
	case KindCategories:
		result.Categories, err = parseCategories(t)
	case KindTags:
		result.TagLists, err = parseTagLists(t)
	}

	if err != nil {
		return nil, err
	}

	slog.Debug("parsed policy import", "kind", kind, "profile", t.profile.Name, "charset", charset, "rows", len(t.rows))

	return result, nil
}
