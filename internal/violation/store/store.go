package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finnypolicy/internal/violation"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getViolations(ctx context.Context, q querier, txID uuid.UUID) ([]violation.Violation, error) {
	query := `SELECT violations FROM transaction_violations WHERE transaction_id = $1`

	var raw []byte

	err := q.QueryRowContext(ctx, query, txID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting violations: %w", err)
	}

	var vs []violation.Violation
	if err := json.Unmarshal(raw, &vs); err != nil {
		return nil, fmt.Errorf("decoding violations: %w", err)
	}

	return vs, nil
}

// GetViolations returns the stored violations of a transaction. A transaction
// that was never checked has none.
func (s *Store) GetViolations(ctx context.Context, txID uuid.UUID) ([]violation.Violation, error) {
	return getViolations(ctx, s.db, txID)
}

// ListViolations returns the stored violations of the given transactions,
// keyed by transaction ID. Transactions without violations are absent.
func (s *Store) ListViolations(ctx context.Context, txIDs []uuid.UUID) (map[uuid.UUID][]violation.Violation, error) {
	out := make(map[uuid.UUID][]violation.Violation, len(txIDs))
	if len(txIDs) == 0 {
		return out, nil
	}

	ids := make([]string, len(txIDs))
	for i, id := range txIDs {
		ids[i] = id.String()
	}

	query := `
		SELECT transaction_id, violations
		FROM transaction_violations
		WHERE transaction_id = ANY($1::uuid[])
	`

	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("listing violations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id  uuid.UUID
			raw []byte
		)

		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scanning violations: %w", err)
		}

		var vs []violation.Violation
		if err := json.Unmarshal(raw, &vs); err != nil {
			return nil, fmt.Errorf("decoding violations of %s: %w", id, err)
		}

		if len(vs) > 0 {
			out[id] = vs
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating violations: %w", err)
	}

	return out, nil
}

func recomputeLockKey(txID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("violations"))
	h.Write([]byte{0})
	h.Write(txID[:])

	return int64(h.Sum64())
}

type recomputeTx struct {
	tx   *sql.Tx
	txID uuid.UUID
}

// BeginRecompute starts a database transaction holding an advisory lock on
// the violations of txID. Concurrent recomputes of the same transaction wait
// for each other.
func (s *Store) BeginRecompute(ctx context.Context, txID uuid.UUID) (violation.RecomputeTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning recompute tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", recomputeLockKey(txID)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring recompute lock: %w", err)
	}

	return &recomputeTx{tx: dbTx, txID: txID}, nil
}

func (rtx *recomputeTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *recomputeTx) Rollback() error { return rtx.tx.Rollback() }

func (rtx *recomputeTx) Violations(ctx context.Context) ([]violation.Violation, error) {
	return getViolations(ctx, rtx.tx, rtx.txID)
}

func (rtx *recomputeTx) ReplaceViolations(ctx context.Context, update violation.Update) error {
	if update.Method != violation.MethodSet {
		return fmt.Errorf("replacing violations: unsupported method %q", update.Method)
	}

	value := update.Value
	if value == nil {
		value = []violation.Violation{}
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding violations: %w", err)
	}

	query := `
		INSERT INTO transaction_violations (transaction_id, storage_key, violations, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (transaction_id) DO UPDATE
		SET storage_key = EXCLUDED.storage_key, violations = EXCLUDED.violations, updated_at = NOW()
	`

	if _, err := rtx.tx.ExecContext(ctx, query, rtx.txID, update.Key, raw); err != nil {
		return fmt.Errorf("replacing violations: %w", err)
	}

	return nil
}
