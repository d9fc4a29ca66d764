package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avikal/orderflow"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
	format string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "download the snapshot as CSV or XLSX" }
func (*exportCmd) Usage() string {
	return `oflow export [-format csv|xlsx] [-o <file>]

  Writes the current snapshot to a file: UTF-8 CSV by default, or an
  XLSX workbook with a single "Orders" sheet.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file; defaults to orders.csv or orders.xlsx")
	f.StringVar(&c.format, "format", "csv", "Export format: csv or xlsx")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != "csv" && c.format != "xlsx" {
		fmt.Fprintf(os.Stderr, "Error: unknown export format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	if c.output == "" {
		c.output = "orders." + c.format
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

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	switch c.format {
	case "csv":
		err = orderflow.ExportCSV(out, ledger)
	case "xlsx":
		err = orderflow.ExportXLSX(out, ledger)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting orders: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d orders to %s\n", ledger.Len(), c.output)
	return subcommands.ExitSuccess
}
