package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avikal/orderflow/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display all orders" }
func (*listCmd) Usage() string {
	return `oflow list

  Displays the full order table with 1-based row numbers, the numbers
  accepted by 'oflow edit' and 'oflow rm'.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.OrdersMarkdown(ledger))
	return subcommands.ExitSuccess
}
