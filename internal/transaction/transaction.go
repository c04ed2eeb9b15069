package transaction

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("transaction not found")

// PartialMerchant is the placeholder merchant of an expense that is still
// being entered.
const PartialMerchant = "(none)"

// ReceiptState is the scan state of an attached receipt.
type ReceiptState string

const (
	ReceiptStateOpen      ReceiptState = "OPEN"
	ReceiptStateScanReady ReceiptState = "SCANREADY"
	ReceiptStateScanning  ReceiptState = "SCANNING"
	ReceiptStateScanned   ReceiptState = "SCANCOMPLETE"
	ReceiptStateFailed    ReceiptState = "SCANFAILED"
)

// Receipt is the file attached to an expense.
type Receipt struct {
	Source string
	State  ReceiptState
}

// Transaction represents an expense on a workspace policy.
type Transaction struct {
	ID       uuid.UUID
	PolicyID uuid.UUID

	Amount         int64  // Amount in minor units, negative for expenses
	ModifiedAmount *int64 // Amount override set by the submitter
	Currency       string

	Merchant         string
	ModifiedMerchant *string

	Category string
	Tag      string // Levels separated by unescaped ':'

	Created         time.Time
	ModifiedCreated *time.Time

	CustomUnitRateID string
	Receipt          *Receipt
	IsInvoice        bool

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// EffectiveMerchant returns the modified merchant when present.
func (t *Transaction) EffectiveMerchant() string {
	if t.ModifiedMerchant != nil {
		return *t.ModifiedMerchant
	}

	return t.Merchant
}

// EffectiveAmount prefers a non-zero modified amount over the original one.
func (t *Transaction) EffectiveAmount() int64 {
	if t.ModifiedAmount != nil && *t.ModifiedAmount != 0 {
		return *t.ModifiedAmount
	}

	return t.Amount
}

// EffectiveDate prefers the modified date over the created one.
func (t *Transaction) EffectiveDate() time.Time {
	if t.ModifiedCreated != nil {
		return *t.ModifiedCreated
	}

	return t.Created
}

// IsAmountMissing reports whether neither amount has been entered yet.
func (t *Transaction) IsAmountMissing() bool {
	return t.Amount == 0 && (t.ModifiedAmount == nil || *t.ModifiedAmount == 0)
}

// IsPartial reports whether the expense is still being entered: it has no
// usable merchant and no amount.
func (t *Transaction) IsPartial() bool {
	return IsPartialMerchant(t.EffectiveMerchant()) && t.IsAmountMissing()
}

// HasReceipt reports whether a receipt is attached.
func (t *Transaction) HasReceipt() bool {
	return t.Receipt != nil && (t.Receipt.State != "" || t.Receipt.Source != "")
}

// IsPartialMerchant reports whether merchant is empty or the placeholder.
func IsPartialMerchant(merchant string) bool {
	m := strings.TrimSpace(merchant)
	return m == "" || m == PartialMerchant
}
