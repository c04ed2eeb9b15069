package policy

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=policy
type Repository interface {
	CreatePolicy(ctx context.Context, p *Policy) error
	GetPolicy(ctx context.Context, id uuid.UUID) (*Policy, error)
	UpdatePolicy(ctx context.Context, p *Policy) error

	GetCategories(ctx context.Context, policyID uuid.UUID) (Categories, error)
	ReplaceCategories(ctx context.Context, policyID uuid.UUID, categories Categories) error

	GetTagLists(ctx context.Context, policyID uuid.UUID) (TagLists, error)
	ReplaceTagLists(ctx context.Context, policyID uuid.UUID, lists TagLists) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *Policy) error {
	if p.Name == "" {
		return fmt.Errorf("creating policy: name is required")
	}

	if p.Type == "" {
		p.Type = TypeTeam
	}

	return s.repo.CreatePolicy(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Policy, error) {
	return s.repo.GetPolicy(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Policy) error {
	return s.repo.UpdatePolicy(ctx, p)
}

func (s *Service) SetCategories(ctx context.Context, policyID uuid.UUID, categories Categories) error {
	return s.repo.ReplaceCategories(ctx, policyID, categories)
}

func (s *Service) SetTagLists(ctx context.Context, policyID uuid.UUID, lists TagLists) error {
	return s.repo.ReplaceTagLists(ctx, policyID, lists)
}

// Config loads the policy along with its categories and tag lists.
func (s *Service) Config(ctx context.Context, id uuid.UUID) (*Config, error) {
	p, err := s.repo.GetPolicy(ctx, id)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.GetCategories(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	lists, err := s.repo.GetTagLists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading tag lists: %w", err)
	}

	return &Config{
		Policy:     p,
		Categories: categories,
		TagLists:   lists,
	}, nil
}
