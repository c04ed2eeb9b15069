package violation

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a violation's kind is not in AllKinds.
var ErrUnknownKind = errors.New("unknown violation kind")

// Params are the named parameters of a translated message.
type Params = map[string]any

// TranslateFunc resolves a translation key with its parameters to a message.
type TranslateFunc func(key string, params Params) string

// Format renders a violation as a human-readable message. canEdit tells
// whether the viewer may edit the expense.
func Format(v Violation, translate TranslateFunc, canEdit bool) (string, error) {
	d := v.data()
	key := "violations." + string(v.Name)

	switch v.Name {
	case KindAllTagLevelsRequired,
		KindBillableExpense,
		KindCategoryOutOfPolicy,
		KindCustomUnitOutOfPolicy,
		KindDuplicatedTransaction,
		KindFieldRequired,
		KindFutureDate,
		KindMissingCategory,
		KindMissingComment,
		KindModifiedDate,
		KindNonExpensiworksExpense,
		KindReceiptNotSmartScanned,
		KindTaxAmountChanged,
		KindTaxRateChanged,
		KindTaxRequired,
		KindHold,
		KindReceiptGeneratedWithAI:
		return translate(key, nil), nil
	case KindAutoReportedRejectedExpense:
		return translate(key, Params{"rejectedBy": d.RejectedBy, "rejectReason": d.RejectReason}), nil
	case KindCashExpenseWithNoReceipt,
		KindOverAutoApprovalLimit,
		KindOverCategoryLimit,
		KindOverLimit,
		KindOverLimitAttendee,
		KindPerDayLimit:
		return translate(key, Params{"formattedLimit": d.FormattedLimit}), nil
	case KindConversionSurcharge:
		return translate(key, Params{"surcharge": d.Surcharge}), nil
	case KindInvoiceMarkup:
		return translate(key, Params{"invoiceMarkup": d.InvoiceMarkup}), nil
	case KindMaxAge:
		return translate(key, Params{"maxAge": d.MaxAge}), nil
	case KindMissingTag,
		KindSomeTagLevelsRequired,
		KindTagOutOfPolicy:
		return translate(key, Params{"tagName": d.TagName}), nil
	case KindModifiedAmount:
		params := Params{"type": d.Type}
		if d.DisplayPercentVariance != nil {
			params["displayPercentVariance"] = *d.DisplayPercentVariance
		}

		return translate(key, params), nil
	case KindReceiptRequired:
		return translate(key, Params{"formattedLimit": d.FormattedLimit, "category": d.Category}), nil
	case KindCustomRules:
		return translate(key, Params{"message": d.Message}), nil
	case KindRter:
		return translate(key, Params{
			"brokenBankConnection":        d.BrokenBankConnection,
			"isAdmin":                     d.IsAdmin,
			"email":                       d.Email,
			"isTransactionOlderThan7Days": d.IsTransactionOlderThan7Days,
			"member":                      d.Member,
			"rterType":                    d.RterType,
		}), nil
	case KindSmartscanFailed:
		return translate(key, Params{"canEdit": canEdit}), nil
	case KindTaxOutOfPolicy:
		return translate(key, Params{"taxName": d.TaxName}), nil
	case KindProhibitedExpense:
		return translate(key, Params{"prohibitedExpenseType": d.ProhibitedExpenseRule}), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, v.Name)
}

// MustFormat is like Format but panics on an unknown kind.
func MustFormat(v Violation, translate TranslateFunc, canEdit bool) string {
	msg, err := Format(v, translate, canEdit)
	if err != nil {
		panic(err)
	}

	return msg
}

// FormatAll renders every violation in order. Violations of unknown kinds are
// skipped and reported in the joined error.
func FormatAll(vs []Violation, translate TranslateFunc, canEdit bool) ([]string, error) {
	msgs := make([]string, 0, len(vs))

	var errs []error

	for _, v := range vs {
		msg, err := Format(v, translate, canEdit)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		msgs = append(msgs, msg)
	}

	return msgs, errors.Join(errs...)
}
