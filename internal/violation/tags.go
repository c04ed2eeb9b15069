package violation

import (
	"reflect"
	"slices"

	"github.com/MrJamesThe3rd/finnypolicy/internal/transaction"
)

// multiLevelKinds are recomputed from scratch on multi-level policies since
// their payload refers to tag levels.
var multiLevelKinds = []Kind{
	KindSomeTagLevelsRequired,
	KindTagOutOfPolicy,
	KindMissingTag,
	KindAllTagLevelsRequired,
}

func tagStep(c *evalContext, vs []Violation) []Violation {
	if !c.policy.RequiresTag {
		return vs
	}

	if len(c.tagLists) == 1 {
		return toggles(singleLevelTagRule)(c, vs)
	}

	var fresh []Violation
	if c.hasDependentTags {
		fresh = dependentTagViolations(c)
	} else {
		fresh = independentTagViolations(c)
	}

	return replaceKinds(vs, multiLevelKinds, fresh)
}

// singleLevelTagRule checks the whole tag against the policy's only tag list.
func singleLevelTagRule(c *evalContext) []toggle {
	tag := c.tx.Tag
	inPolicy := c.tagLists[0].IsEnabled(tag)

	return []toggle{
		{
			kind:   KindTagOutOfPolicy,
			add:    tag != "" && !inPolicy,
			remove: tag != "" && inPolicy,
			build:  func() Violation { return TagOutOfPolicy("") },
		},
		{
			kind:   KindMissingTag,
			add:    tag == "",
			remove: inPolicy,
			build:  func() Violation { return MissingTag("") },
		},
	}
}

// dependentTagViolations expects one value per level: a missing tag flags
// every level by name, a partial one flags all levels at once.
func dependentTagViolations(c *evalContext) []Violation {
	lists := c.tagLists.Sorted()

	if c.tx.Tag == "" {
		out := make([]Violation, 0, len(lists))
		for _, l := range lists {
			out = append(out, MissingTag(l.Name))
		}

		return out
	}

	levels := transaction.TagLevels(c.tx.Tag)
	if len(levels) != len(lists) || slices.Contains(levels, "") {
		return []Violation{AllTagLevelsRequired()}
	}

	return nil
}

// independentTagViolations checks each level on its own. Positions in the tag
// line up with the lists in configured order. Missing required levels are
// reported first; only when none are missing is the first disabled value
// flagged.
func independentTagViolations(c *evalContext) []Violation {
	lists := c.tagLists.Sorted()
	selected := transaction.TagLevels(c.tx.Tag)

	var errorIndexes []int

	for i, l := range lists {
		if l.IsRequired() && selectedAt(selected, i) == "" {
			errorIndexes = append(errorIndexes, i)
		}
	}

	if len(errorIndexes) > 0 {
		return []Violation{SomeTagLevelsRequired(errorIndexes)}
	}

	for i, l := range lists {
		tag := selectedAt(selected, i)
		if tag != "" && !l.IsEnabled(tag) {
			return []Violation{TagOutOfPolicy(l.Name)}
		}
	}

	return nil
}

func selectedAt(selected []string, i int) string {
	if i >= len(selected) {
		return ""
	}

	return selected[i]
}

// replaceKinds swaps the violations of the given kinds for fresh ones. When
// they already match, vs is returned as is so a recomputation keeps its order.
func replaceKinds(vs []Violation, kinds []Kind, fresh []Violation) []Violation {
	var current []Violation

	for _, v := range vs {
		if slices.Contains(kinds, v.Name) {
			current = append(current, v)
		}
	}

	if len(current) == 0 && len(fresh) == 0 || reflect.DeepEqual(current, fresh) {
		return vs
	}

	return append(without(vs, kinds...), fresh...)
}
