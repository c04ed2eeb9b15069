package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	UpdateReceipt(ctx context.Context, id uuid.UUID, receipt *Receipt) error

	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	PolicyID         uuid.UUID
	Amount           int64
	Currency         string
	Merchant         string
	Category         string
	Tag              string
	Created          time.Time
	CustomUnitRateID string
	IsInvoice        bool
}

type ListFilter struct {
	PolicyID  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if params.PolicyID == uuid.Nil {
		return nil, fmt.Errorf("creating transaction: policy id is required")
	}

	tx := &Transaction{
		PolicyID:         params.PolicyID,
		Amount:           params.Amount,
		Currency:         params.Currency,
		Merchant:         params.Merchant,
		Category:         params.Category,
		Tag:              params.Tag,
		Created:          params.Created,
		CustomUnitRateID: params.CustomUnitRateID,
		IsInvoice:        params.IsInvoice,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) ListByPolicy(ctx context.Context, policyID uuid.UUID) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, ListFilter{PolicyID: &policyID})
}

func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}

// AttachReceipt records a receipt on the transaction. A nil receipt detaches it.
func (s *Service) AttachReceipt(ctx context.Context, id uuid.UUID, receipt *Receipt) error {
	return s.repo.UpdateReceipt(ctx, id, receipt)
}
