package policy

import (
	"cmp"
	"errors"
	"slices"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("policy not found")

// Type is the workspace tier of a policy.
type Type string

const (
	TypePersonal  Type = "personal"
	TypeTeam      Type = "team"
	TypeCorporate Type = "corporate"
)

// Policy holds the workspace rules expenses are checked against.
type Policy struct {
	ID               uuid.UUID
	Name             string
	Type             Type
	RequiresCategory bool
	RequiresTag      bool
	HasDependentTags bool

	// Limits are in minor units of OutputCurrency. Nil or zero means unset.
	MaxExpenseAmount          *int64
	MaxExpenseAmountNoReceipt *int64
	OutputCurrency            string

	// CustomUnitRates are the distance rates keyed by rate ID.
	CustomUnitRates map[string]Rate
}

// Rate is a distance custom unit rate.
type Rate struct {
	ID      string
	Name    string
	Rate    int64
	Enabled bool
}

// IsCorporate reports whether the policy is on the top tier.
func (p *Policy) IsCorporate() bool {
	return p.Type == TypeCorporate
}

// DistanceRate looks up a distance rate by ID.
func (p *Policy) DistanceRate(id string) (Rate, bool) {
	if id == "" {
		return Rate{}, false
	}

	r, ok := p.CustomUnitRates[id]

	return r, ok
}

// Category is an expense category configured on a policy.
type Category struct {
	Name    string
	Enabled bool
}

// Categories maps a category name to its configuration.
type Categories map[string]Category

// IsEnabled reports whether name is a known, enabled category.
func (c Categories) IsEnabled(name string) bool {
	cat, ok := c[name]
	return ok && cat.Enabled
}

// Tag is a single selectable value within a tag list.
type Tag struct {
	Name    string
	Enabled bool
}

// TagList is one level of tags. OrderWeight is the configured display order.
type TagList struct {
	Name        string
	OrderWeight int
	Required    *bool
	Tags        map[string]Tag
}

// IsRequired reports whether a value must be picked for this level. Levels
// are required unless configured otherwise.
func (l TagList) IsRequired() bool {
	return l.Required == nil || *l.Required
}

// IsEnabled reports whether name is a known, enabled tag of this level.
func (l TagList) IsEnabled(name string) bool {
	tag, ok := l.Tags[name]
	return ok && tag.Enabled
}

// TagLists is the ordered set of tag levels of a policy.
type TagLists []TagList

// Sorted returns the lists ordered by OrderWeight. Lists with equal weight
// keep their relative order. The receiver is not modified.
func (t TagLists) Sorted() TagLists {
	sorted := slices.Clone(t)
	slices.SortStableFunc(sorted, func(a, b TagList) int {
		return cmp.Compare(a.OrderWeight, b.OrderWeight)
	})

	return sorted
}

// Config bundles a policy with the category and tag configuration that
// applies to its expenses.
type Config struct {
	Policy     *Policy
	Categories Categories
	TagLists   TagLists
}
