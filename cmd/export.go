package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dealbook"
	"github.com/google/subcommands"
)

type exportCmd struct {
	filters filterFlag
	view    string
	output  string
}

func (*exportCmd) Name() string { return "export" }
func (*exportCmd) Synopsis() string {
	return "writes a view as delimited text"
}
func (*exportCmd) Usage() string {
	return `dbk export [-view deals|positions] [-f key=value]... [-o <file>]

  Serializes the selected view as comma-separated text with a header row.
  Undisclosed amounts export as empty fields.

Usage Examples:
# Export every deal summary to stdout.
$ dbk export -view deals

# Export lead positions to a file.
$ dbk export -view positions -f leadInvestor=true -o leads.csv

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", "deals", "view to export: deals or positions")
	f.Var(&c.filters, "f", "filter rows by key=value (repeatable)")
	f.StringVar(&c.output, "o", "", "output file (default stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	store, _ := LoadStore()
	var err error
	switch c.view {
	case "deals":
		err = dealbook.ExportDealSummaries(w, store.DealSummaries(c.filters.filters))
	case "positions":
		err = dealbook.ExportPositions(w, store.Positions(c.filters.filters))
	default:
		fmt.Fprintf(os.Stderr, "unknown view %q, want deals or positions\n", c.view)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting %s: %v\n", c.view, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
