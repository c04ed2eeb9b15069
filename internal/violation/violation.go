// Package violation computes the policy violations of an expense and renders
// them as messages.
//
// Reconcile, Format and ExtractLimit are pure and safe for concurrent use.
// Service hosts them against storage and serializes recomputation per
// transaction.
package violation

// Kind names a violation. The set of kinds is closed; see AllKinds.
type Kind string

const (
	KindAllTagLevelsRequired        Kind = "allTagLevelsRequired"
	KindAutoReportedRejectedExpense Kind = "autoReportedRejectedExpense"
	KindBillableExpense             Kind = "billableExpense"
	KindCashExpenseWithNoReceipt    Kind = "cashExpenseWithNoReceipt"
	KindCategoryOutOfPolicy         Kind = "categoryOutOfPolicy"
	KindConversionSurcharge         Kind = "conversionSurcharge"
	KindCustomUnitOutOfPolicy       Kind = "customUnitOutOfPolicy"
	KindDuplicatedTransaction       Kind = "duplicatedTransaction"
	KindFieldRequired               Kind = "fieldRequired"
	KindFutureDate                  Kind = "futureDate"
	KindInvoiceMarkup               Kind = "invoiceMarkup"
	KindMaxAge                      Kind = "maxAge"
	KindMissingCategory             Kind = "missingCategory"
	KindMissingComment              Kind = "missingComment"
	KindMissingTag                  Kind = "missingTag"
	KindModifiedAmount              Kind = "modifiedAmount"
	KindModifiedDate                Kind = "modifiedDate"
	KindNonExpensiworksExpense      Kind = "nonExpensiworksExpense"
	KindOverAutoApprovalLimit       Kind = "overAutoApprovalLimit"
	KindOverCategoryLimit           Kind = "overCategoryLimit"
	KindOverLimit                   Kind = "overLimit"
	KindOverLimitAttendee           Kind = "overLimitAttendee"
	KindPerDayLimit                 Kind = "perDayLimit"
	KindReceiptNotSmartScanned      Kind = "receiptNotSmartScanned"
	KindReceiptRequired             Kind = "receiptRequired"
	KindCustomRules                 Kind = "customRules"
	KindRter                        Kind = "rter"
	KindSmartscanFailed             Kind = "smartscanFailed"
	KindSomeTagLevelsRequired       Kind = "someTagLevelsRequired"
	KindTagOutOfPolicy              Kind = "tagOutOfPolicy"
	KindTaxAmountChanged            Kind = "taxAmountChanged"
	KindTaxOutOfPolicy              Kind = "taxOutOfPolicy"
	KindTaxRateChanged              Kind = "taxRateChanged"
	KindTaxRequired                 Kind = "taxRequired"
	KindHold                        Kind = "hold"
	KindProhibitedExpense           Kind = "prohibitedExpense"
	KindReceiptGeneratedWithAI      Kind = "receiptGeneratedWithAI"
)

// AllKinds lists every violation kind. Format handles each of them.
var AllKinds = []Kind{
	KindAllTagLevelsRequired,
	KindAutoReportedRejectedExpense,
	KindBillableExpense,
	KindCashExpenseWithNoReceipt,
	KindCategoryOutOfPolicy,
	KindConversionSurcharge,
	KindCustomUnitOutOfPolicy,
	KindDuplicatedTransaction,
	KindFieldRequired,
	KindFutureDate,
	KindInvoiceMarkup,
	KindMaxAge,
	KindMissingCategory,
	KindMissingComment,
	KindMissingTag,
	KindModifiedAmount,
	KindModifiedDate,
	KindNonExpensiworksExpense,
	KindOverAutoApprovalLimit,
	KindOverCategoryLimit,
	KindOverLimit,
	KindOverLimitAttendee,
	KindPerDayLimit,
	KindReceiptNotSmartScanned,
	KindReceiptRequired,
	KindCustomRules,
	KindRter,
	KindSmartscanFailed,
	KindSomeTagLevelsRequired,
	KindTagOutOfPolicy,
	KindTaxAmountChanged,
	KindTaxOutOfPolicy,
	KindTaxRateChanged,
	KindTaxRequired,
	KindHold,
	KindProhibitedExpense,
	KindReceiptGeneratedWithAI,
}

// Type is the severity of a violation.
type Type string

const (
	TypeViolation Type = "violation"
	TypeNotice    Type = "notice"
	TypeWarning   Type = "warning"
)

// Violation flags a policy-compliance problem on a transaction.
type Violation struct {
	Name         Kind  `json:"name"`
	Type         Type  `json:"type"`
	ShowInReview bool  `json:"showInReview,omitempty"`
	Data         *Data `json:"data,omitempty"`
}

// Data carries the auxiliary fields of a violation. Which fields are set
// depends on the kind.
type Data struct {
	FormattedLimit string `json:"formattedLimit,omitempty"`
	Category       string `json:"category,omitempty"`
	TagName        string `json:"tagName,omitempty"`
	ErrorIndexes   []int  `json:"errorIndexes,omitempty"`
	TaxName        string `json:"taxName,omitempty"`

	RejectedBy   string `json:"rejectedBy,omitempty"`
	RejectReason string `json:"rejectReason,omitempty"`

	Surcharge     float64 `json:"surcharge,omitempty"`
	InvoiceMarkup float64 `json:"invoiceMarkup,omitempty"`
	MaxAge        int     `json:"maxAge,omitempty"`

	// Type is the source of a modifiedAmount violation ("card", "distance").
	Type                   string   `json:"type,omitempty"`
	DisplayPercentVariance *float64 `json:"displayPercentVariance,omitempty"`

	BrokenBankConnection        bool   `json:"brokenBankConnection,omitempty"`
	IsAdmin                     bool   `json:"isAdmin,omitempty"`
	Email                       string `json:"email,omitempty"`
	IsTransactionOlderThan7Days bool   `json:"isTransactionOlderThan7Days,omitempty"`
	Member                      string `json:"member,omitempty"`
	RterType                    string `json:"rterType,omitempty"`

	Message               string `json:"message,omitempty"`
	ProhibitedExpenseRule string `json:"prohibitedExpenseRule,omitempty"`
}

// data returns the payload or an empty one, so callers can read fields
// without nil checks.
func (v Violation) data() Data {
	if v.Data == nil {
		return Data{}
	}

	return *v.Data
}

// New builds a violation of the given kind with an optional payload.
func New(kind Kind, data *Data) Violation {
	return Violation{Name: kind, Type: TypeViolation, Data: data}
}

func CategoryOutOfPolicy() Violation {
	return New(KindCategoryOutOfPolicy, nil)
}

func MissingCategory() Violation {
	v := New(KindMissingCategory, nil)
	v.ShowInReview = true

	return v
}

// MissingTag flags a missing tag. tagName is the level's name on multi-level
// policies and empty otherwise.
func MissingTag(tagName string) Violation {
	if tagName == "" {
		return New(KindMissingTag, nil)
	}

	return New(KindMissingTag, &Data{TagName: tagName})
}

// TagOutOfPolicy flags a disabled or unknown tag. tagName is set on
// multi-level policies.
func TagOutOfPolicy(tagName string) Violation {
	if tagName == "" {
		return New(KindTagOutOfPolicy, nil)
	}

	return New(KindTagOutOfPolicy, &Data{TagName: tagName})
}

func AllTagLevelsRequired() Violation {
	return New(KindAllTagLevelsRequired, &Data{})
}

// SomeTagLevelsRequired flags the tag levels, by position, that still need a value.
func SomeTagLevelsRequired(errorIndexes []int) Violation {
	return New(KindSomeTagLevelsRequired, &Data{ErrorIndexes: errorIndexes})
}

func FutureDate() Violation {
	v := New(KindFutureDate, nil)
	v.ShowInReview = true

	return v
}

func ReceiptRequired(formattedLimit string) Violation {
	v := New(KindReceiptRequired, &Data{FormattedLimit: formattedLimit})
	v.ShowInReview = true

	return v
}

func OverLimit(formattedLimit string) Violation {
	v := New(KindOverLimit, &Data{FormattedLimit: formattedLimit})
	v.ShowInReview = true

	return v
}
