package violation

import (
	"slices"
	"time"

	"github.com/MrJamesThe3rd/finnypolicy/internal/policy"
	"github.com/MrJamesThe3rd/finnypolicy/internal/transaction"
)

// Method is how an Update is applied to stored state.
type Method string

// MethodSet replaces the stored value as a whole.
const MethodSet Method = "set"

// KeyPrefix prefixes the storage key of a transaction's violations.
const KeyPrefix = "transactionViolations_"

// Update describes how to replace the stored violations of a transaction.
type Update struct {
	Method Method
	Key    string
	Value  []Violation
}

// Input is a snapshot of everything a transaction is checked against.
type Input struct {
	Transaction      *transaction.Transaction
	Violations       []Violation
	Policy           *policy.Policy
	Categories       policy.Categories
	TagLists         policy.TagLists
	HasDependentTags bool
	IsInvoice        bool

	// Now is the reference time for date rules. Zero means time.Now().
	Now time.Time
}

// evalContext is the read-only view the rules evaluate.
type evalContext struct {
	tx               *transaction.Transaction
	policy           *policy.Policy
	categories       policy.Categories
	tagLists         policy.TagLists
	hasDependentTags bool
	isInvoice        bool
	now              time.Time
}

// Reconcile computes the corrected violations of a transaction. Violations the
// rules do not own are carried over untouched, and applying Reconcile to its
// own output changes nothing. The input slice is never modified.
//
// A transaction that is still being entered (no merchant, no amount) is not
// evaluated and its violations are returned as given.
func Reconcile(in Input) Update {
	update := Update{Method: MethodSet}

	if in.Transaction == nil {
		update.Value = slices.Clone(in.Violations)
		return update
	}

	update.Key = KeyPrefix + in.Transaction.ID.String()

	if in.Transaction.IsPartial() {
		update.Value = slices.Clone(in.Violations)
		return update
	}

	c := &evalContext{
		tx:               in.Transaction,
		policy:           in.Policy,
		categories:       in.Categories,
		tagLists:         in.TagLists,
		hasDependentTags: in.HasDependentTags,
		isInvoice:        in.IsInvoice,
		now:              in.Now,
	}

	if c.policy == nil {
		c.policy = &policy.Policy{}
	}

	if c.now.IsZero() {
		c.now = time.Now()
	}

	vs := slices.Clone(in.Violations)
	for _, s := range steps {
		vs = s(c, vs)
	}

	update.Value = vs

	return update
}

// step transforms a violation set for one rule family.
type step func(c *evalContext, vs []Violation) []Violation

// toggle is the desired state of one violation kind: added when absent and
// add holds, removed when present and remove holds.
type toggle struct {
	kind   Kind
	add    bool
	remove bool
	build  func() Violation
}

// present is a toggle whose violation exists exactly when cond holds.
func present(kind Kind, cond bool, build func() Violation) toggle {
	return toggle{kind: kind, add: cond, remove: !cond, build: build}
}

// rule yields the toggles of one rule family, or none when it does not apply.
type rule func(c *evalContext) []toggle

// toggles folds a rule's toggles against the violation set.
func toggles(r rule) step {
	return func(c *evalContext, vs []Violation) []Violation {
		for _, t := range r(c) {
			exists := has(vs, t.kind)

			switch {
			case t.add && !exists:
				vs = append(vs, t.build())
			case t.remove && exists:
				vs = without(vs, t.kind)
			}
		}

		return vs
	}
}

// steps run in order. Each owns a disjoint set of kinds.
var steps = []step{
	toggles(categoryRule),
	tagStep,
	toggles(customUnitRule),
	toggles(futureDateRule),
	toggles(receiptRequiredRule),
	toggles(overLimitRule),
}
