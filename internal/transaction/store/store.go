package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finnypolicy/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row from the scanner and returns a populated Transaction.
// Expected column order matches selectTransactionColumns.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var (
		modifiedAmount   sql.NullInt64
		modifiedMerchant sql.NullString
		modifiedCreated  sql.NullTime
		receiptSource    sql.NullString
		receiptState     sql.NullString
	)

	if err := s.Scan(
		&tx.ID, &tx.PolicyID, &tx.Amount, &modifiedAmount, &tx.Currency,
		&tx.Merchant, &modifiedMerchant, &tx.Category, &tx.Tag,
		&tx.Created, &modifiedCreated, &tx.CustomUnitRateID,
		&receiptSource, &receiptState, &tx.IsInvoice,
		&tx.CreatedAt, &tx.UpdatedAt, &tx.DeletedAt,
	); err != nil {
		return nil, err
	}

	if modifiedAmount.Valid {
		tx.ModifiedAmount = &modifiedAmount.Int64
	}

	if modifiedMerchant.Valid {
		tx.ModifiedMerchant = &modifiedMerchant.String
	}

	if modifiedCreated.Valid {
		tx.ModifiedCreated = &modifiedCreated.Time
	}

	if receiptSource.Valid || receiptState.Valid {
		tx.Receipt = &transaction.Receipt{
			Source: receiptSource.String,
			State:  transaction.ReceiptState(receiptState.String),
		}
	}

	return &tx, nil
}

const selectTransactionColumns = `
	t.id, t.policy_id, t.amount, t.modified_amount, t.currency,
	t.merchant, t.modified_merchant, t.category, t.tag,
	t.created, t.modified_created, t.custom_unit_rate_id,
	t.receipt_source, t.receipt_state, t.is_invoice,
	t.created_at, t.updated_at, t.deleted_at
`

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (policy_id, amount, currency, merchant, category, tag, created, custom_unit_rate_id, is_invoice, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.PolicyID,
		tx.Amount,
		tx.Currency,
		tx.Merchant,
		tx.Category,
		tx.Tag,
		tx.Created,
		tx.CustomUnitRateID,
		tx.IsInvoice,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.id = $1 AND t.deleted_at IS NULL`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.PolicyID != nil {
		query += fmt.Sprintf(" AND t.policy_id = $%d", argIdx)

		args = append(args, *filter.PolicyID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND COALESCE(t.modified_created, t.created) >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND COALESCE(t.modified_created, t.created) <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY COALESCE(t.modified_created, t.created) ASC, t.id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = $1, modified_amount = $2, currency = $3, merchant = $4, modified_merchant = $5,
			category = $6, tag = $7, created = $8, modified_created = $9, custom_unit_rate_id = $10,
			is_invoice = $11, updated_at = NOW()
		WHERE id = $12 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query,
		tx.Amount,
		tx.ModifiedAmount,
		tx.Currency,
		tx.Merchant,
		tx.ModifiedMerchant,
		tx.Category,
		tx.Tag,
		tx.Created,
		tx.ModifiedCreated,
		tx.CustomUnitRateID,
		tx.IsInvoice,
		tx.ID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	return requireRow(res)
}

// UpdateReceipt stores the receipt columns. A nil receipt clears them.
func (s *Store) UpdateReceipt(ctx context.Context, id uuid.UUID, receipt *transaction.Receipt) error {
	query := `
		UPDATE transactions
		SET receipt_source = $1, receipt_state = $2, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL
	`

	var source, state sql.NullString
	if receipt != nil {
		source = sql.NullString{String: receipt.Source, Valid: true}
		state = sql.NullString{String: string(receipt.State), Valid: true}
	}

	res, err := s.db.ExecContext(ctx, query, source, state, id)
	if err != nil {
		return fmt.Errorf("updating receipt: %w", err)
	}

	return requireRow(res)
}

func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE transactions
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return transaction.ErrNotFound
	}

	return nil
}
