package orderflow

import (
	"strings"

	"github.com/avikal/orderflow/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDelimiter joins the item names of one order into the single Order cell.
const ItemDelimiter = "; "

// Order is one customer order, one row of the ledger.
//
// ID is a synthetic identifier assigned at creation time. It is stable
// across reloads, unlike the positional index which is only valid within
// one loaded snapshot.
type Order struct {
	ID       string
	Customer string // customer name, required
	Number   string // contact identifier, required, not validated as a phone number
	Items    []string
	Quantity int
	Nameset  string
	Cost     decimal.Decimal
	Sale     decimal.Decimal
	Profit   decimal.Decimal // always Sale - Cost at time of write
	Status   OrderStatus
	Payment  PaymentStatus
	Tracking string
	Day      date.Date
}

// NewID returns a fresh synthetic order identifier.
func NewID() string { return uuid.NewString() }

// ComputeProfit returns sale - cost. The result may be negative,
// representing a loss; losses are preserved and displayed, never clamped.
func ComputeProfit(cost, sale decimal.Decimal) decimal.Decimal {
	return sale.Sub(cost)
}

// Recompute refreshes the derived Profit field from Cost and Sale.
func (o *Order) Recompute() { o.Profit = ComputeProfit(o.Cost, o.Sale) }

// OrderCell returns the items joined by the canonical delimiter, the
// value persisted in the Order column.
func (o Order) OrderCell() string { return strings.Join(o.Items, ItemDelimiter) }

// SplitItems splits free-text order input on commas and newlines into a
// list of trimmed, non-empty item names. One submission can carry many
// line items.
func SplitItems(free string) []string {
	free = strings.ReplaceAll(free, "\n", ",")
	var items []string
	for _, part := range strings.Split(free, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// splitOrderCell splits a persisted Order cell back into its item names.
func splitOrderCell(cell string) []string {
	var items []string
	for _, part := range strings.Split(cell, ItemDelimiter) {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
