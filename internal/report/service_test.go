package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finnypolicy/internal/i18n"
	"github.com/MrJamesThe3rd/finnypolicy/internal/transaction"
	"github.com/MrJamesThe3rd/finnypolicy/internal/violation"
)

type mockRepo struct {
	listTransactionsFunc func(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

func (m *mockRepo) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (m *mockRepo) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	return nil, nil
}

func (m *mockRepo) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (m *mockRepo) UpdateReceipt(ctx context.Context, id uuid.UUID, receipt *transaction.Receipt) error {
	return nil
}

func (m *mockRepo) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	if m.listTransactionsFunc != nil {
		return m.listTransactionsFunc(ctx, filter)
	}

	return nil, nil
}

func (m *mockRepo) DeleteTransaction(ctx context.Context, id uuid.UUID) error { return nil }

type fakeViolations struct {
	byTx map[uuid.UUID][]violation.Violation
	err  error
	got  []uuid.UUID
}

func (f *fakeViolations) ListViolations(ctx context.Context, txIDs []uuid.UUID) (map[uuid.UUID][]violation.Violation, error) {
	f.got = txIDs
	return f.byTx, f.err
}

func fixtures() ([]*transaction.Transaction, map[uuid.UUID][]violation.Violation) {
	coffee := &transaction.Transaction{
		ID:       uuid.New(),
		Amount:   -1250,
		Currency: "USD",
		Merchant: "Coffee Shop",
		Created:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	hotel := &transaction.Transaction{
		ID:       uuid.New(),
		Amount:   -250000,
		Currency: "USD",
		Merchant: "Hotel",
		Created:  time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
	}
	taxi := &transaction.Transaction{
		ID:       uuid.New(),
		Amount:   -3000,
		Currency: "EUR",
		Merchant: "Taxi",
		Created:  time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
	}

	return []*transaction.Transaction{coffee, hotel, taxi}, map[uuid.UUID][]violation.Violation{
		coffee.ID: {violation.MissingCategory()},
		hotel.ID: {
			violation.MissingCategory(),
			violation.OverLimit("$2,000.00"),
		},
	}
}

func TestReportService_Build(t *testing.T) {
	txs, byTx := fixtures()

	var gotFilter transaction.ListFilter

	repo := &mockRepo{
		listTransactionsFunc: func(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			gotFilter = filter
			return txs, nil
		},
	}
	violations := &fakeViolations{byTx: byTx}

	svc := NewService(transaction.NewService(repo), violations)

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	items, err := svc.Build(context.Background(), transaction.ListFilter{StartDate: &start})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, &start, gotFilter.StartDate)
	assert.Equal(t, []uuid.UUID{txs[0].ID, txs[1].ID, txs[2].ID}, violations.got)
	assert.Len(t, items[1].Violations, 2)
	assert.Empty(t, items[2].Violations)
}

func TestReportService_Build_ViolationsError(t *testing.T) {
	txs, _ := fixtures()

	repo := &mockRepo{
		listTransactionsFunc: func(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			return txs, nil
		},
	}

	svc := NewService(transaction.NewService(repo), &fakeViolations{err: errors.New("db down")})

	_, err := svc.Build(context.Background(), transaction.ListFilter{})
	assert.Error(t, err)
}

func TestReportService_Render(t *testing.T) {
	txs, byTx := fixtures()

	items := make([]Item, len(txs))
	for i, tx := range txs {
		items[i] = Item{Transaction: tx, Violations: byTx[tx.ID]}
	}

	svc := NewService(nil, nil)
	got, err := svc.Render(items, i18n.New("en").Translate)
	require.NoError(t, err)

	want := "3 violations across 2 of 3 transactions\n" +
		"  missingCategory: 2\n" +
		"  overLimit: 1\n" +
		"* 2026-10-01 | Coffee Shop | -$12.50 | Missing category\n" +
		"* 2026-10-03 | Hotel | -$2,500.00 | Missing category; Amount over $2,000.00/person limit\n"

	assert.Equal(t, want, got)
}

func TestReportService_Render_Empty(t *testing.T) {
	got, err := NewService(nil, nil).Render(nil, i18n.New("en").Translate)
	require.NoError(t, err)
	assert.Equal(t, "0 violations across 0 of 0 transactions\n", got)
}

func TestReportService_Render_UnknownKind(t *testing.T) {
	txs, byTx := fixtures()

	items := []Item{
		{Transaction: txs[0], Violations: byTx[txs[0].ID]},
		{Transaction: txs[1], Violations: []violation.Violation{
			violation.MissingCategory(),
			{Name: violation.Kind("bogus"), Type: violation.TypeViolation},
		}},
	}

	got, err := NewService(nil, nil).Render(items, i18n.New("en").Translate)
	require.ErrorIs(t, err, violation.ErrUnknownKind)
	assert.Contains(t, err.Error(), txs[1].ID.String())
	assert.Empty(t, got)
}
