package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type syncCmd struct{}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "publish the local snapshot to the spreadsheet mirror" }
func (*syncCmd) Usage() string {
	return `oflow sync -spreadsheet <id> [-tab <name>] [-credentials <file>]

  Publishes the local orders file to the spreadsheet mirror with a full
  clear-then-rewrite, sorted by date. Use it to resynchronize the two
  copies after a reported sync failure.
`
}

func (*syncCmd) SetFlags(f *flag.FlagSet) {}

func (c *syncCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if *spreadsheet == "" {
		fmt.Fprintln(os.Stderr, "Error: sync requires -spreadsheet")
		return subcommands.ExitUsageError
	}
	svc, err := NewService(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// Always publish the local copy: sync exists to push the committed
	// baseline over whatever the mirror holds.
	ledger, err := svc.Local.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading orders: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := svc.Publish(ctx, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error publishing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Published %d orders to tab %q\n", ledger.Len(), *mirrorTab)
	return subcommands.ExitSuccess
}
