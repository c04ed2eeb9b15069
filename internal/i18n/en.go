package i18n

import "fmt"

var english = map[string]entry{
	"violations.allTagLevelsRequired": text("All tags required"),
	"violations.autoReportedRejectedExpense": func(a args) string {
		return fmt.Sprintf("%s rejected this expense with the comment %q", a.str("rejectedBy"), a.str("rejectReason"))
	},
	"violations.billableExpense": text("Billable no longer valid"),
	"violations.cashExpenseWithNoReceipt": func(a args) string {
		if limit := a.str("formattedLimit"); limit != "" {
			return "Receipt required over " + limit
		}

		return "Receipt required"
	},
	"violations.categoryOutOfPolicy": text("Category no longer valid"),
	"violations.conversionSurcharge": func(a args) string {
		return "Applied " + a.num("surcharge") + "% conversion surcharge"
	},
	"violations.customUnitOutOfPolicy": text("Rate not valid for this workspace"),
	"violations.duplicatedTransaction": text("Duplicate"),
	"violations.fieldRequired":         text("Report fields are required"),
	"violations.futureDate":            text("Future date not allowed"),
	"violations.invoiceMarkup": func(a args) string {
		return "Marked up by " + a.num("invoiceMarkup") + "%"
	},
	"violations.maxAge": func(a args) string {
		return "Date older than " + a.num("maxAge") + " days"
	},
	"violations.missingCategory": text("Missing category"),
	"violations.missingComment":  text("Description required for selected category"),
	"violations.missingTag": func(a args) string {
		return "Missing " + orDefault(a.str("tagName"), "tag")
	},
	"violations.modifiedAmount": func(a args) string {
		switch a.str("type") {
		case "distance":
			return "Amount differs from calculated distance"
		case "card":
			return "Amount greater than card transaction"
		}

		if a.has("displayPercentVariance") {
			return "Amount " + a.num("displayPercentVariance") + "% greater than scanned receipt"
		}

		return "Amount greater than scanned receipt"
	},
	"violations.modifiedDate":           text("Date differs from scanned receipt"),
	"violations.nonExpensiworksExpense": text("Non-Expensiworks expense"),
	"violations.overAutoApprovalLimit": func(a args) string {
		return "Expense exceeds auto-approval limit of " + a.str("formattedLimit")
	},
	"violations.overCategoryLimit": func(a args) string {
		return "Amount over " + a.str("formattedLimit") + "/person category limit"
	},
	"violations.overLimit": func(a args) string {
		return "Amount over " + a.str("formattedLimit") + "/person limit"
	},
	"violations.overLimitAttendee": func(a args) string {
		return "Amount over " + a.str("formattedLimit") + "/person limit"
	},
	"violations.perDayLimit": func(a args) string {
		return "Amount over daily " + a.str("formattedLimit") + "/person category limit"
	},
	"violations.receiptNotSmartScanned": text("Receipt and expense details added manually."),
	"violations.receiptRequired": func(a args) string {
		limit := a.str("formattedLimit")
		if limit == "" {
			return "Receipt required"
		}

		if a.str("category") != "" {
			return "Receipt required over " + limit + " category limit"
		}

		return "Receipt required over " + limit
	},
	"violations.customRules": func(a args) string {
		return a.str("message")
	},
	"violations.rter": func(a args) string {
		if a.boolean("brokenBankConnection") || a.str("rterType") == "brokenCardConnection" {
			if a.boolean("isAdmin") {
				return "Can't auto-match receipt due to broken bank connection which " + a.str("email") + " needs to fix."
			}

			return "Can't auto-match receipt due to broken bank connection."
		}

		if !a.boolean("isTransactionOlderThan7Days") {
			if a.boolean("isAdmin") {
				return "Ask " + a.str("member") + " to mark as a cash or wait 7 days and try again."
			}

			return "Awaiting merge with card transaction."
		}

		return ""
	},
	"violations.smartscanFailed": func(a args) string {
		if a.boolean("canEdit") {
			return "Receipt scanning failed. Enter details manually."
		}

		return "Receipt scanning failed."
	},
	"violations.someTagLevelsRequired": func(a args) string {
		return "Missing " + orDefault(a.str("tagName"), "Tag")
	},
	"violations.tagOutOfPolicy": func(a args) string {
		return orDefault(a.str("tagName"), "Tag") + " no longer valid"
	},
	"violations.taxAmountChanged": text("Tax was modified"),
	"violations.taxOutOfPolicy": func(a args) string {
		return orDefault(a.str("taxName"), "Tax") + " no longer valid"
	},
	"violations.taxRateChanged": text("Tax rate was modified"),
	"violations.taxRequired":    text("Missing tax rate"),
	"violations.hold":           text("This expense was put on hold"),
	"violations.prohibitedExpense": func(a args) string {
		return "Prohibited expense: " + a.str("prohibitedExpenseType")
	},
	"violations.receiptGeneratedWithAI": text("Potential AI-generated receipt"),
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
