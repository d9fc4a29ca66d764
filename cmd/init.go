package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avikal/orderflow"
	"github.com/google/subcommands"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the orders file if it does not exist" }
func (*initCmd) Usage() string {
	return `oflow init

  Creates the orders CSV file with a header-only table. Safe to run
  more than once: an existing file is left untouched.
`
}

func (*initCmd) SetFlags(f *flag.FlagSet) {}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := &orderflow.LocalStore{Path: storePath(), BOM: *spreadsheet != ""}
	if err := store.EnsureInitialized(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing orders file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Orders file ready at %s\n", store.Path)
	return subcommands.ExitSuccess
}
