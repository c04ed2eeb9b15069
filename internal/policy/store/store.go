package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finnypolicy/internal/policy"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// rateRecord is the JSON shape of a row in policies.custom_unit_rates.
type rateRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Rate    int64  `json:"rate"`
	Enabled bool   `json:"enabled"`
}

func encodeRates(rates map[string]policy.Rate) ([]byte, error) {
	records := make([]rateRecord, 0, len(rates))
	for _, r := range rates {
		records = append(records, rateRecord{ID: r.ID, Name: r.Name, Rate: r.Rate, Enabled: r.Enabled})
	}

	return json.Marshal(records)
}

func decodeRates(raw []byte) (map[string]policy.Rate, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var records []rateRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}

	rates := make(map[string]policy.Rate, len(records))
	for _, r := range records {
		rates[r.ID] = policy.Rate{ID: r.ID, Name: r.Name, Rate: r.Rate, Enabled: r.Enabled}
	}

	return rates, nil
}

func (s *Store) CreatePolicy(ctx context.Context, p *policy.Policy) error {
	rates, err := encodeRates(p.CustomUnitRates)
	if err != nil {
		return fmt.Errorf("encoding custom unit rates: %w", err)
	}

	query := `
		INSERT INTO policies (name, type, requires_category, requires_tag, has_dependent_tags,
			max_expense_amount, max_expense_amount_no_receipt, output_currency, custom_unit_rates, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id
	`

	err = s.db.QueryRowContext(ctx, query,
		p.Name,
		p.Type,
		p.RequiresCategory,
		p.RequiresTag,
		p.HasDependentTags,
		p.MaxExpenseAmount,
		p.MaxExpenseAmountNoReceipt,
		p.OutputCurrency,
		rates,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("creating policy: %w", err)
	}

	return nil
}

func (s *Store) GetPolicy(ctx context.Context, id uuid.UUID) (*policy.Policy, error) {
	query := `
		SELECT id, name, type, requires_category, requires_tag, has_dependent_tags,
			max_expense_amount, max_expense_amount_no_receipt, output_currency, custom_unit_rates
		FROM policies
		WHERE id = $1
	`

	var (
		p          policy.Policy
		typeStr    string
		maxAmount  sql.NullInt64
		maxNoRcpt  sql.NullInt64
		ratesBytes []byte
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &typeStr, &p.RequiresCategory, &p.RequiresTag, &p.HasDependentTags,
		&maxAmount, &maxNoRcpt, &p.OutputCurrency, &ratesBytes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, policy.ErrNotFound
		}

		return nil, fmt.Errorf("getting policy: %w", err)
	}

	p.Type = policy.Type(typeStr)

	if maxAmount.Valid {
		p.MaxExpenseAmount = &maxAmount.Int64
	}

	if maxNoRcpt.Valid {
		p.MaxExpenseAmountNoReceipt = &maxNoRcpt.Int64
	}

	p.CustomUnitRates, err = decodeRates(ratesBytes)
	if err != nil {
		return nil, fmt.Errorf("decoding custom unit rates: %w", err)
	}

	return &p, nil
}

func (s *Store) UpdatePolicy(ctx context.Context, p *policy.Policy) error {
	rates, err := encodeRates(p.CustomUnitRates)
	if err != nil {
		return fmt.Errorf("encoding custom unit rates: %w", err)
	}

	query := `
		UPDATE policies
		SET name = $1, type = $2, requires_category = $3, requires_tag = $4, has_dependent_tags = $5,
			max_expense_amount = $6, max_expense_amount_no_receipt = $7, output_currency = $8,
			custom_unit_rates = $9, updated_at = NOW()
		WHERE id = $10
	`

	res, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.Type,
		p.RequiresCategory,
		p.RequiresTag,
		p.HasDependentTags,
		p.MaxExpenseAmount,
		p.MaxExpenseAmountNoReceipt,
		p.OutputCurrency,
		rates,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating policy: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return policy.ErrNotFound
	}

	return nil
}

func (s *Store) GetCategories(ctx context.Context, policyID uuid.UUID) (policy.Categories, error) {
	query := `
		SELECT name, enabled
		FROM policy_categories
		WHERE policy_id = $1
	`

	rows, err := s.db.QueryContext(ctx, query, policyID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	categories := make(policy.Categories)

	for rows.Next() {
		var c policy.Category
		if err := rows.Scan(&c.Name, &c.Enabled); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories[c.Name] = c
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return categories, nil
}

// ReplaceCategories swaps the full category set of a policy atomically.
func (s *Store) ReplaceCategories(ctx context.Context, policyID uuid.UUID, categories policy.Categories) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM policy_categories WHERE policy_id = $1`, policyID); err != nil {
		return fmt.Errorf("clearing categories: %w", err)
	}

	query := `
		INSERT INTO policy_categories (policy_id, name, enabled)
		VALUES ($1, $2, $3)
	`

	for _, c := range categories {
		if _, err := dbTx.ExecContext(ctx, query, policyID, c.Name, c.Enabled); err != nil {
			return fmt.Errorf("inserting category %q: %w", c.Name, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTagLists(ctx context.Context, policyID uuid.UUID) (policy.TagLists, error) {
	query := `
		SELECT l.name, l.order_weight, l.required, t.name, t.enabled
		FROM policy_tag_lists l
		LEFT JOIN policy_tags t ON t.policy_id = l.policy_id AND t.list_name = l.name
		WHERE l.policy_id = $1
		ORDER BY l.order_weight ASC, l.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, policyID)
	if err != nil {
		return nil, fmt.Errorf("listing tag lists: %w", err)
	}
	defer rows.Close()

	var lists policy.TagLists

	index := make(map[string]int)

	for rows.Next() {
		var (
			listName   string
			weight     int
			required   sql.NullBool
			tagName    sql.NullString
			tagEnabled sql.NullBool
		)

		if err := rows.Scan(&listName, &weight, &required, &tagName, &tagEnabled); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}

		i, ok := index[listName]
		if !ok {
			list := policy.TagList{
				Name:        listName,
				OrderWeight: weight,
				Tags:        make(map[string]policy.Tag),
			}
			if required.Valid {
				list.Required = &required.Bool
			}

			lists = append(lists, list)
			i = len(lists) - 1
			index[listName] = i
		}

		if tagName.Valid {
			lists[i].Tags[tagName.String] = policy.Tag{Name: tagName.String, Enabled: tagEnabled.Bool}
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tag rows: %w", err)
	}

	return lists, nil
}

// ReplaceTagLists swaps every tag level of a policy atomically.
func (s *Store) ReplaceTagLists(ctx context.Context, policyID uuid.UUID, lists policy.TagLists) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM policy_tags WHERE policy_id = $1`, policyID); err != nil {
		return fmt.Errorf("clearing tags: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM policy_tag_lists WHERE policy_id = $1`, policyID); err != nil {
		return fmt.Errorf("clearing tag lists: %w", err)
	}

	listQuery := `
		INSERT INTO policy_tag_lists (policy_id, name, order_weight, required)
		VALUES ($1, $2, $3, $4)
	`
	tagQuery := `
		INSERT INTO policy_tags (policy_id, list_name, name, enabled)
		VALUES ($1, $2, $3, $4)
	`

	for _, l := range lists {
		if _, err := dbTx.ExecContext(ctx, listQuery, policyID, l.Name, l.OrderWeight, l.Required); err != nil {
			return fmt.Errorf("inserting tag list %q: %w", l.Name, err)
		}

		for _, t := range l.Tags {
			if _, err := dbTx.ExecContext(ctx, tagQuery, policyID, l.Name, t.Name, t.Enabled); err != nil {
				return fmt.Errorf("inserting tag %q: %w", t.Name, err)
			}
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
