package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finnypolicy/internal/transaction"
	"github.com/MrJamesThe3rd/finnypolicy/internal/violation"
)

type transactionResponse struct {
	ID               uuid.UUID             `json:"id"`
	PolicyID         uuid.UUID             `json:"policy_id"`
	Amount           int64                 `json:"amount"`
	ModifiedAmount   *int64                `json:"modified_amount,omitempty"`
	Currency         string                `json:"currency"`
	Merchant         string                `json:"merchant"`
	ModifiedMerchant *string               `json:"modified_merchant,omitempty"`
	Category         string                `json:"category,omitempty"`
	Tag              string                `json:"tag,omitempty"`
	Created          time.Time             `json:"created"`
	ModifiedCreated  *time.Time            `json:"modified_created,omitempty"`
	CustomUnitRateID string                `json:"custom_unit_rate_id,omitempty"`
	Receipt          *receiptResponse      `json:"receipt,omitempty"`
	IsInvoice        bool                  `json:"is_invoice"`
	Violations       []violation.Violation `json:"violations,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        *time.Time            `json:"updated_at,omitempty"`
}

type receiptResponse struct {
	Source string                   `json:"source"`
	State  transaction.ReceiptState `json:"state"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:               tx.ID,
		PolicyID:         tx.PolicyID,
		Amount:           tx.Amount,
		ModifiedAmount:   tx.ModifiedAmount,
		Currency:         tx.Currency,
		Merchant:         tx.Merchant,
		ModifiedMerchant: tx.ModifiedMerchant,
		Category:         tx.Category,
		Tag:              tx.Tag,
		Created:          tx.Created,
		ModifiedCreated:  tx.ModifiedCreated,
		CustomUnitRateID: tx.CustomUnitRateID,
		IsInvoice:        tx.IsInvoice,
		CreatedAt:        tx.CreatedAt,
		UpdatedAt:        tx.UpdatedAt,
	}

	if tx.Receipt != nil {
		resp.Receipt = &receiptResponse{
			Source: tx.Receipt.Source,
			State:  tx.Receipt.State,
		}
	}

	return resp
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
