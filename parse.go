package orderflow

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity coerces raw input into a quantity. It accepts integer
// and float spellings like "3" or "3.0" and truncates toward zero.
// Unparseable input yields def; this function never fails.
func ParseQuantity(raw string, def int) int {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return int(d.IntPart())
}

// ParseDecimal coerces raw input into a decimal for price fields.
// Unparseable input yields def; this function never fails.
func ParseDecimal(raw string, def decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return d
}
