package money

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultCurrency is used when a policy has no output currency configured.
const DefaultCurrency = "USD"

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"BRL": "R$",
	"CAD": "CA$",
	"AUD": "A$",
	"MXN": "MX$",
	"CHF": "CHF ",
}

// Format renders an amount stored in minor units as a display string in the
// given ISO 4217 currency, e.g. Format(200000, "USD") == "$2,000.00".
// Unknown currency codes fall back to DefaultCurrency.
func Format(minor int64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}

	// Amounts are always stored with two implied decimals regardless of the
	// currency's own rounding; the display scale comes from the currency.
	scale, _ := currency.Standard.Rounding(unit)

	d := decimal.New(minor, -2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	d = d.Round(int32(scale))

	var sb strings.Builder

	sb.WriteString(sign)
	sb.WriteString(Symbol(unit.String()))
	sb.WriteString(humanize.Comma(d.IntPart()))

	if _, frac, ok := strings.Cut(d.StringFixed(int32(scale)), "."); ok {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}

	return sb.String()
}

// Symbol returns the display symbol for an ISO 4217 code, or the code
// followed by a space when no symbol is known.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}

	return code + " "
}
