package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/avikal/orderflow"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	form orderflow.OrderForm
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new order" }
func (*addCmd) Usage() string {
	return `oflow add -name <customer> -number <contact> -order <items> [options]

  Records a new order. The -order flag accepts several items separated
  by commas, e.g. -order "Mug, Shirt".

Usage Examples:
$ oflow add -name "Alice" -number "555" -order "Mug, Shirt" -qty 2 -cost 10 -sale 25
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.form.Customer, "name", "", "Customer name (required)")
	f.StringVar(&c.form.Number, "number", "", "Contact number (required)")
	f.StringVar(&c.form.Items, "order", "", "Item name(s), comma separated (required)")
	f.StringVar(&c.form.Quantity, "qty", "1", "Quantity")
	f.StringVar(&c.form.Nameset, "nameset", "", "Nameset")
	f.StringVar(&c.form.Cost, "cost", "0", "Cost price")
	f.StringVar(&c.form.Sale, "sale", "0", "Sale price")
	f.StringVar(&c.form.Status, "status", "Pending", "Order status: "+strings.Join(orderflow.OrderStatuses(), ", "))
	f.StringVar(&c.form.Payment, "payment", "Unpaid", "Payment status: "+strings.Join(orderflow.PaymentStatuses(), ", "))
	f.StringVar(&c.form.Tracking, "tracking", "", "Tracking info (if any)")
	f.StringVar(&c.form.Date, "d", "", "Order date, defaults to today")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	ledger, err = svc.AddOrder(ctx, ledger, c.form)
	var verr *orderflow.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "Please fill in required fields: %v\n", verr)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding order: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Order added (%d orders total)\n", ledger.Len())
	return subcommands.ExitSuccess
}
