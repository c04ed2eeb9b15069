package report

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finnypolicy/internal/money"
	"github.com/MrJamesThe3rd/finnypolicy/internal/transaction"
	"github.com/MrJamesThe3rd/finnypolicy/internal/violation"
)

// Item is a transaction along with its stored violations.
type Item struct {
	Transaction *transaction.Transaction
	Violations  []violation.Violation
}

type ViolationLister interface {
	ListViolations(ctx context.Context, txIDs []uuid.UUID) (map[uuid.UUID][]violation.Violation, error)
}

// Service builds violation reports over a range of transactions.
type Service struct {
	transactions *transaction.Service
	violations   ViolationLister
}

func NewService(txService *transaction.Service, violations ViolationLister) *Service {
	return &Service{
		transactions: txService,
		violations:   violations,
	}
}

// Build collects the transactions matching filter and their violations.
func (s *Service) Build(ctx context.Context, filter transaction.ListFilter) ([]Item, error) {
	txs, err := s.transactions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	ids := make([]uuid.UUID, len(txs))
	for i, t := range txs {
		ids[i] = t.ID
	}

	byTx, err := s.violations.ListViolations(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing violations: %w", err)
	}

	items := make([]Item, 0, len(txs))
	for _, t := range txs {
		items = append(items, Item{Transaction: t, Violations: byTx[t.ID]})
	}

	return items, nil
}

// Render writes a plain-text summary followed by one line per transaction
// with violations. It fails if any stored violation has a kind the formatter
// does not know.
func (s *Service) Render(items []Item, translate violation.TranslateFunc) (string, error) {
	var (
		sb      strings.Builder
		flagged int
		total   int
	)

	counts := make(map[violation.Kind]int)

	for _, item := range items {
		if len(item.Violations) == 0 {
			continue
		}

		flagged++

		for _, v := range item.Violations {
			counts[v.Name]++
			total++
		}
	}

	fmt.Fprintf(&sb, "%s violations across %s of %s transactions\n",
		humanize.Comma(int64(total)), humanize.Comma(int64(flagged)), humanize.Comma(int64(len(items))))

	for _, kc := range sortedCounts(counts) {
		fmt.Fprintf(&sb, "  %s: %s\n", kc.kind, humanize.Comma(int64(kc.count)))
	}

	for _, item := range items {
		if len(item.Violations) == 0 {
			continue
		}

		tx := item.Transaction

		msgs, err := violation.FormatAll(item.Violations, translate, false)
		if err != nil {
			return "", fmt.Errorf("rendering transaction %s: %w", tx.ID, err)
		}

		fmt.Fprintf(&sb, "* %s | %s | %s | %s\n",
			tx.EffectiveDate().Format(time.DateOnly),
			tx.EffectiveMerchant(),
			money.Format(tx.EffectiveAmount(), tx.Currency),
			strings.Join(msgs, "; "))
	}

	return sb.String(), nil
}

type kindCount struct {
	kind  violation.Kind
	count int
}

// sortedCounts orders kinds by count, most frequent first, then by name.
func sortedCounts(counts map[violation.Kind]int) []kindCount {
	out := make([]kindCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, kindCount{kind: k, count: n})
	}

	slices.SortFunc(out, func(a, b kindCount) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}

		return cmp.Compare(a.kind, b.kind)
	})

	return out
}
