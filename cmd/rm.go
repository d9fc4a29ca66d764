package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct {
	row int
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an order" }
func (*rmCmd) Usage() string {
	return `oflow rm -i <row>

  Deletes the order at the given row. Rows are numbered from 1 as shown
  by 'oflow list'; remaining orders shift up after the deletion.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.row, "i", 0, "Row number of the order to delete (1-based, required)")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if _, err = svc.DeleteOrder(ctx, ledger, c.row-1); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting order: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Order %d deleted\n", c.row)
	return subcommands.ExitSuccess
}
