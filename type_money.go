package orderflow

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the business currency. The ledger stores bare decimals;
// the currency only matters for display.
const Currency = "INR"

// FormatMoney renders a decimal amount with the business currency
// symbol and grouping, e.g. ₹1,234.50.
func FormatMoney(value decimal.Decimal) string {
	// to get a never nil currency we need to call the Money constructor
	cur := *money.New(0, Currency).Currency()
	dec := value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// FormatSignedMoney is like FormatMoney with an explicit sign.
// Zero is represented as "-".
func FormatSignedMoney(value decimal.Decimal) string {
	if value.IsZero() {
		return "-"
	}
	if value.IsPositive() {
		return "+" + FormatMoney(value)
	}
	return FormatMoney(value)
}
