package violation

import (
	"math"
	"regexp"

	"github.com/shopspring/decimal"
)

// limitFormatting matches everything in a formatted limit that is not part of
// the number, e.g. the "$" and "," of "$2,000.00".
var limitFormatting = regexp.MustCompile(`[^0-9.\-]+`)

// ExtractLimit parses the amount back out of a violation's formatted limit,
// e.g. 2000 for "$2,000.00". It returns NaN when the violation has no limit or
// the limit cannot be parsed; check with math.IsNaN before using the result.
func ExtractLimit(v Violation) float64 {
	raw := limitFormatting.ReplaceAllString(v.data().FormattedLimit, "")
	if raw == "" {
		return math.NaN()
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return math.NaN()
	}

	return d.InexactFloat64()
}
