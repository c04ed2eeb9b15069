package violation

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/finnypolicy/internal/policy"
	"github.com/MrJamesThe3rd/finnypolicy/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=violation
type Repository interface {
	GetViolations(ctx context.Context, txID uuid.UUID) ([]Violation, error)

	// BeginRecompute opens a unit of work holding an exclusive lock on the
	// violations of txID until it is committed or rolled back.
	BeginRecompute(ctx context.Context, txID uuid.UUID) (RecomputeTx, error)
}

type RecomputeTx interface {
	Violations(ctx context.Context) ([]Violation, error)
	ReplaceViolations(ctx context.Context, update Update) error
	Commit() error
	Rollback() error
}

type TransactionSource interface {
	Get(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
	ListByPolicy(ctx context.Context, policyID uuid.UUID) ([]*transaction.Transaction, error)
}

type PolicySource interface {
	Config(ctx context.Context, id uuid.UUID) (*policy.Config, error)
}

type Service struct {
	repo        Repository
	txs         TransactionSource
	policies    PolicySource
	concurrency int
	now         func() time.Time
}

func NewService(repo Repository, txs TransactionSource, policies PolicySource, concurrency int) *Service {
	if concurrency < 1 {
		concurrency = 1
	}

	return &Service{
		repo:        repo,
		txs:         txs,
		policies:    policies,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// WithClock replaces the reference time used by date rules.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Message is a violation along with its rendered text.
type Message struct {
	Violation
	Text string `json:"message"`
}

func (s *Service) Get(ctx context.Context, txID uuid.UUID) ([]Violation, error) {
	return s.repo.GetViolations(ctx, txID)
}

// Recompute reconciles the stored violations of a transaction against its
// current state and policy, and persists the result.
func (s *Service) Recompute(ctx context.Context, txID uuid.UUID) ([]Violation, error) {
	return s.recompute(ctx, txID, nil)
}

// RecomputePolicy recomputes every transaction of a policy and returns how
// many were processed. Transactions deleted while it runs are skipped.
func (s *Service) RecomputePolicy(ctx context.Context, policyID uuid.UUID) (int, error) {
	cfg, err := s.config(ctx, policyID)
	if err != nil {
		return 0, err
	}

	txs, err := s.txs.ListByPolicy(ctx, policyID)
	if err != nil {
		return 0, fmt.Errorf("listing transactions: %w", err)
	}

	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, tx := range txs {
		id := tx.ID

		g.Go(func() error {
			_, err := s.recompute(gctx, id, cfg)
			switch {
			case errors.Is(err, transaction.ErrNotFound):
				return nil
			case err != nil:
				return fmt.Errorf("recomputing transaction %s: %w", id, err)
			}

			done.Add(1)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return int(done.Load()), nil
}

// Messages renders the stored violations of a transaction. Violations of
// unknown kinds are left out of the result and reported in the error.
func (s *Service) Messages(ctx context.Context, txID uuid.UUID, translate TranslateFunc, canEdit bool) ([]Message, error) {
	vs, err := s.repo.GetViolations(ctx, txID)
	if err != nil {
		return nil, err
	}

	msgs := make([]Message, 0, len(vs))

	var errs []error

	for _, v := range vs {
		text, err := Format(v, translate, canEdit)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		msgs = append(msgs, Message{Violation: v, Text: text})
	}

	return msgs, errors.Join(errs...)
}

func (s *Service) config(ctx context.Context, policyID uuid.UUID) (*policy.Config, error) {
	if policyID == uuid.Nil {
		return &policy.Config{}, nil
	}

	cfg, err := s.policies.Config(ctx, policyID)
	if err != nil {
		return nil, fmt.Errorf("loading policy config: %w", err)
	}

	return cfg, nil
}

// recompute reads the transaction only once its lock is held, so a
// concurrent write is either seen here or followed by its own recompute.
// cfg is reused when it belongs to the transaction's policy.
func (s *Service) recompute(ctx context.Context, txID uuid.UUID, cfg *policy.Config) ([]Violation, error) {
	rtx, err := s.repo.BeginRecompute(ctx, txID)
	if err != nil {
		return nil, fmt.Errorf("begin recompute: %w", err)
	}
	defer rtx.Rollback()

	tx, err := s.txs.Get(ctx, txID)
	if err != nil {
		return nil, err
	}

	if cfg == nil || cfg.Policy == nil || cfg.Policy.ID != tx.PolicyID {
		if cfg, err = s.config(ctx, tx.PolicyID); err != nil {
			return nil, err
		}
	}

	current, err := rtx.Violations(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading violations: %w", err)
	}

	in := Input{
		Transaction: tx,
		Violations:  current,
		Policy:      cfg.Policy,
		Categories:  cfg.Categories,
		TagLists:    cfg.TagLists,
		IsInvoice:   tx.IsInvoice,
		Now:         s.now(),
	}
	if cfg.Policy != nil {
		in.HasDependentTags = cfg.Policy.HasDependentTags
	}

	update := Reconcile(in)
	if err := rtx.ReplaceViolations(ctx, update); err != nil {
		return nil, fmt.Errorf("replacing violations: %w", err)
	}

	if err := rtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit recompute: %w", err)
	}

	return update.Value, nil
}
