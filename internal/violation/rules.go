package violation

import (
	"time"

	"github.com/MrJamesThe3rd/finnypolicy/internal/money"
)

func categoryRule(c *evalContext) []toggle {
	if !c.policy.RequiresCategory {
		return nil
	}

	category := c.tx.Category
	outOfPolicy := category != "" && !c.categories.IsEnabled(category)

	return []toggle{
		present(KindCategoryOutOfPolicy, outOfPolicy, CategoryOutOfPolicy),
		present(KindMissingCategory, category == "", MissingCategory),
	}
}

// customUnitRule only clears: the out-of-policy rate violation is raised
// elsewhere and goes away once the rate resolves on the policy.
func customUnitRule(c *evalContext) []toggle {
	if _, ok := c.policy.DistanceRate(c.tx.CustomUnitRateID); !ok {
		return nil
	}

	return []toggle{{kind: KindCustomUnitOutOfPolicy, remove: true}}
}

// enforcesAmountAndDate reports whether the date and amount rules apply.
func (c *evalContext) enforcesAmountAndDate() bool {
	return c.policy.IsCorporate() && !c.isInvoice
}

func futureDateRule(c *evalContext) []toggle {
	future := c.enforcesAmountAndDate() && isFutureDay(c.tx.EffectiveDate(), c.now)

	return []toggle{present(KindFutureDate, future, FutureDate)}
}

func receiptRequiredRule(c *evalContext) []toggle {
	limit := limitOf(c.policy.MaxExpenseAmountNoReceipt)
	required := c.enforcesAmountAndDate() &&
		limit != 0 &&
		abs(c.tx.EffectiveAmount()) > limit &&
		!c.tx.HasReceipt()

	return []toggle{present(KindReceiptRequired, required, func() Violation {
		return ReceiptRequired(money.Format(limit, c.currency()))
	})}
}

func overLimitRule(c *evalContext) []toggle {
	limit := limitOf(c.policy.MaxExpenseAmount)
	over := c.enforcesAmountAndDate() &&
		limit != 0 &&
		abs(c.tx.EffectiveAmount()) > limit

	return []toggle{present(KindOverLimit, over, func() Violation {
		return OverLimit(money.Format(limit, c.currency()))
	})}
}

func (c *evalContext) currency() string {
	if c.policy.OutputCurrency == "" {
		return money.DefaultCurrency
	}

	return c.policy.OutputCurrency
}

// isFutureDay reports whether date falls on a calendar day after now's.
func isFutureDay(date, now time.Time) bool {
	if date.IsZero() {
		return false
	}

	return calendarDay(date).After(calendarDay(now))
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func limitOf(limit *int64) int64 {
	if limit == nil {
		return 0
	}

	return *limit
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
