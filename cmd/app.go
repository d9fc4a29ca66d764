// Package cmd implements the CLI application to manage the order ledger.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/avikal/orderflow"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "ledger")
	c.Register(&addCmd{}, "orders")
	c.Register(&editCmd{}, "orders")
	c.Register(&rmCmd{}, "orders")
	c.Register(&listCmd{}, "orders")
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&importCmd{}, "import/export")
	c.Register(&exportCmd{}, "import/export")
	c.Register(&templateCmd{}, "import/export")
	c.Register(&syncCmd{}, "mirror")
	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile  = flag.String("f", "orders.csv", "Path to the orders CSV file")
	testMode    = flag.Bool("test", false, "Run against the sample orders file; live data is untouched")
	spreadsheet = flag.String("spreadsheet", "", "ID of the spreadsheet mirror (empty disables mirroring)")
	mirrorTab   = flag.String("tab", "Orders", "Tab name inside the spreadsheet mirror")
	credentials = flag.String("credentials", "", "Path to a service account key file for the mirror")
)

const sampleFile = "sample_orders.csv"

// storePath returns the active local file, honoring test mode.
func storePath() string {
	if *testMode {
		log.Printf("test-mode file=%q", sampleFile)
		return sampleFile
	}
	return *ledgerFile
}

// NewService builds the ledger service from the global flags: the local
// CSV store always, the spreadsheet mirror when one is configured.
func NewService(ctx context.Context) (*orderflow.Service, error) {
	mirrored := *spreadsheet != ""
	svc := &orderflow.Service{
		Local: &orderflow.LocalStore{Path: storePath(), BOM: mirrored},
	}
	if mirrored {
		grid, err := orderflow.NewSheetsGrid(ctx, *spreadsheet, *credentials)
		if err != nil {
			return nil, fmt.Errorf("cannot open spreadsheet mirror: %w", err)
		}
		svc.Remote = &orderflow.RemoteMirror{Grid: grid, Tab: *mirrorTab}
	}
	return svc, nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
