package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avikal/orderflow"
	"github.com/google/subcommands"
)

// templateCmd holds the flags for the 'template' subcommand.
type templateCmd struct {
	output string
}

func (*templateCmd) Name() string     { return "template" }
func (*templateCmd) Synopsis() string { return "download the CSV import template" }
func (*templateCmd) Usage() string {
	return `oflow template [-o <file>]

  Writes a header-only CSV with the canonical columns, ready to be
  filled and fed back to 'oflow import'.
`
}

func (c *templateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "order_template.csv", "Output file")
}

func (c *templateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := orderflow.Template(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing template: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Template written to %s\n", c.output)
	return subcommands.ExitSuccess
}
