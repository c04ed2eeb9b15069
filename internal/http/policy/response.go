package policy

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finnypolicy/internal/policy"
)

type rateDTO struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name"`
	Rate    int64  `json:"rate"`
	Enabled bool   `json:"enabled"`
}

type categoryDTO struct {
	Name    string `json:"name" validate:"required"`
	Enabled bool   `json:"enabled"`
}

type tagDTO struct {
	Name    string `json:"name" validate:"required"`
	Enabled bool   `json:"enabled"`
}

type tagListDTO struct {
	Name        string   `json:"name" validate:"required"`
	OrderWeight int      `json:"order_weight"`
	Required    *bool    `json:"required,omitempty"`
	Tags        []tagDTO `json:"tags" validate:"dive"`
}

// policyRequest is the full configuration of a policy.
type policyRequest struct {
	Name                      string        `json:"name" validate:"required"`
	Type                      policy.Type   `json:"type" validate:"omitempty,oneof=personal team corporate"`
	RequiresCategory          bool          `json:"requires_category"`
	RequiresTag               bool          `json:"requires_tag"`
	HasDependentTags          bool          `json:"has_dependent_tags"`
	MaxExpenseAmount          *int64        `json:"max_expense_amount,omitempty" validate:"omitempty,gte=0"`
	MaxExpenseAmountNoReceipt *int64        `json:"max_expense_amount_no_receipt,omitempty" validate:"omitempty,gte=0"`
	OutputCurrency            string        `json:"output_currency" validate:"omitempty,iso4217"`
	CustomUnitRates           []rateDTO     `json:"custom_unit_rates" validate:"dive"`
	Categories                []categoryDTO `json:"categories" validate:"dive"`
	TagLists                  []tagListDTO  `json:"tag_lists" validate:"dive"`
}

func (req policyRequest) toConfig(id uuid.UUID) *policy.Config {
	p := &policy.Policy{
		ID:                        id,
		Name:                      req.Name,
		Type:                      req.Type,
		RequiresCategory:          req.RequiresCategory,
		RequiresTag:               req.RequiresTag,
		HasDependentTags:          req.HasDependentTags,
		MaxExpenseAmount:          req.MaxExpenseAmount,
		MaxExpenseAmountNoReceipt: req.MaxExpenseAmountNoReceipt,
		OutputCurrency:            req.OutputCurrency,
		CustomUnitRates:           make(map[string]policy.Rate, len(req.CustomUnitRates)),
	}

	if p.OutputCurrency == "" {
		p.OutputCurrency = "USD"
	}

	for _, r := range req.CustomUnitRates {
		p.CustomUnitRates[r.ID] = policy.Rate(r)
	}

	categories := make(policy.Categories, len(req.Categories))
	for _, c := range req.Categories {
		categories[c.Name] = policy.Category(c)
	}

	lists := make(policy.TagLists, 0, len(req.TagLists))
	for _, l := range req.TagLists {
		tags := make(map[string]policy.Tag, len(l.Tags))
		for _, t := range l.Tags {
			tags[t.Name] = policy.Tag(t)
		}

		lists = append(lists, policy.TagList{
			Name:        l.Name,
			OrderWeight: l.OrderWeight,
			Required:    l.Required,
			Tags:        tags,
		})
	}

	return &policy.Config{Policy: p, Categories: categories, TagLists: lists.Sorted()}
}

type policyResponse struct {
	ID uuid.UUID `json:"id"`
	policyRequest
	Recomputed *int `json:"recomputed,omitempty"`
}

func toResponse(cfg *policy.Config) policyResponse {
	p := cfg.Policy

	resp := policyResponse{
		ID: p.ID,
		policyRequest: policyRequest{
			Name:                      p.Name,
			Type:                      p.Type,
			RequiresCategory:          p.RequiresCategory,
			RequiresTag:               p.RequiresTag,
			HasDependentTags:          p.HasDependentTags,
			MaxExpenseAmount:          p.MaxExpenseAmount,
			MaxExpenseAmountNoReceipt: p.MaxExpenseAmountNoReceipt,
			OutputCurrency:            p.OutputCurrency,
			CustomUnitRates:           make([]rateDTO, 0, len(p.CustomUnitRates)),
			Categories:                make([]categoryDTO, 0, len(cfg.Categories)),
			TagLists:                  make([]tagListDTO, 0, len(cfg.TagLists)),
		},
	}

	for _, r := range p.CustomUnitRates {
		resp.CustomUnitRates = append(resp.CustomUnitRates, rateDTO(r))
	}

	for _, c := range cfg.Categories {
		resp.Categories = append(resp.Categories, categoryDTO(c))
	}

	for _, l := range cfg.TagLists.Sorted() {
		dto := tagListDTO{
			Name:        l.Name,
			OrderWeight: l.OrderWeight,
			Required:    l.Required,
			Tags:        make([]tagDTO, 0, len(l.Tags)),
		}

		for _, t := range l.Tags {
			dto.Tags = append(dto.Tags, tagDTO(t))
		}

		resp.TagLists = append(resp.TagLists, dto)
	}

	sortResponse(&resp)

	return resp
}
