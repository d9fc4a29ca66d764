package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avikal/orderflow"
	"github.com/avikal/orderflow/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the summary dashboard" }
func (*dashboardCmd) Usage() string {
	return `oflow dashboard

  Displays the grand totals, the monthly rollup and the insights
  derived from the current snapshot.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	summary := orderflow.Summarize(ledger)
	printMarkdown(renderer.DashboardMarkdown(summary))
	return subcommands.ExitSuccess
}
