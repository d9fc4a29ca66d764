package renderer

import (
	"fmt"
	"strings"

	"github.com/avikal/orderflow"
)

// OrdersMarkdown generates a markdown table of all orders in the
// snapshot, with 1-based visual row numbers.
func OrdersMarkdown(ledger *orderflow.Ledger) string {
	r := &ordersRenderer{Builder: &strings.Builder{}}

	r.Printf("# All Orders\n\n")
	if ledger.Len() == 0 {
		r.Printf("No orders recorded yet.\n")
		return r.String()
	}

	r.Printf("| # | Customer Name | Number | Order | Qty | Nameset | Cost Price | Sale Price | Profit | Order Status | Payment Status | Tracking Detail | Date |\n")
	r.Printf("|---:|:---|:---|:---|---:|:---|---:|---:|---:|:---|:---|:---|:---|\n")
	for i, o := range ledger.Records() {
		r.Printf("| %d | %s | %s | %s | %d | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			i+1,
			o.Customer,
			o.Number,
			o.OrderCell(),
			o.Quantity,
			o.Nameset,
			orderflow.FormatMoney(o.Cost),
			orderflow.FormatMoney(o.Sale),
			orderflow.FormatSignedMoney(o.Profit),
			o.Status,
			o.Payment,
			o.Tracking,
			o.Day,
		)
	}
	return r.String()
}

type ordersRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *ordersRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}
