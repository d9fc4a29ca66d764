package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/avikal/orderflow"
	"github.com/google/subcommands"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	row  int
	form orderflow.OrderForm
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace all fields of an existing order" }
func (*editCmd) Usage() string {
	return `oflow edit -i <row> [options]

  Replaces all fields of the order at the given row, recomputing the
  profit. Rows are numbered from 1 as shown by 'oflow list'; the number
  is only valid for the currently listed snapshot.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.row, "i", 0, "Row number of the order to edit (1-based, required)")
	f.StringVar(&c.form.Customer, "name", "", "Customer name")
	f.StringVar(&c.form.Number, "number", "", "Contact number")
	f.StringVar(&c.form.Items, "order", "", "Item name(s), comma separated")
	f.StringVar(&c.form.Quantity, "qty", "1", "Quantity")
	f.StringVar(&c.form.Nameset, "nameset", "", "Nameset")
	f.StringVar(&c.form.Cost, "cost", "0", "Cost price")
	f.StringVar(&c.form.Sale, "sale", "0", "Sale price")
	f.StringVar(&c.form.Status, "status", "Pending", "Order status: "+strings.Join(orderflow.OrderStatuses(), ", "))
	f.StringVar(&c.form.Payment, "payment", "Unpaid", "Payment status: "+strings.Join(orderflow.PaymentStatuses(), ", "))
	f.StringVar(&c.form.Tracking, "tracking", "", "Tracking info (if any)")
	f.StringVar(&c.form.Date, "d", "", "Order date, keeps the current one when empty")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.row < 1 {
		fmt.Fprintln(os.Stderr, "Error: -i must name a row number from 'oflow list'")
		return subcommands.ExitUsageError
	}
	svc, err := NewService(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := svc.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading orders: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, err = svc.EditOrder(ctx, ledger, c.row-1, c.form); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating order: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Order %d updated\n", c.row)
	return subcommands.ExitSuccess
}
