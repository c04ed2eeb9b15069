// Package importer reads policy categories and tag lists from CSV exports.
package importer

import (
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/finnypolicy/internal/policy"
)

// Kind is what an import file configures.
type Kind string

const (
	KindCategories Kind = "categories"
	KindTags       Kind = "tags"
)

var (
	// ErrNoHeader is returned when no row of the file looks like a header of
	// a known layout.
	ErrNoHeader = errors.New("no recognizable header")

	ErrInvalidBool = errors.New("invalid yes/no value")
	ErrMissingName = errors.New("missing name")
)

// RowError locates a problem in the file. Row is 1-based.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Result is the outcome of an import. Only the field matching the requested
// kind is set.
type Result struct {
	Profile    string
	Charset    string
	Categories policy.Categories
	TagLists   policy.TagLists
}
