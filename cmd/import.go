package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/avikal/orderflow"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "append orders from an uploaded CSV file" }
func (*importCmd) Usage() string {
	return `oflow import <file.csv>

  Appends the orders of the given CSV file to the ledger. The file's
  header must exactly match the canonical columns (use 'oflow template'
  to get them); otherwise the import is rejected and nothing changes.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import expects exactly one CSV file")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	batch, err := orderflow.ImportCSV(file)
	var mismatch *orderflow.SchemaMismatchError
	if errors.As(err, &mismatch) {
		fmt.Fprintf(os.Stderr, "%v. Use the provided template.\n", mismatch)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		return subcommands.ExitFailure
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
	if _, err = svc.ImportBatch(ctx, ledger, batch); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing orders: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d orders\n", batch.Len())
	return subcommands.ExitSuccess
}
