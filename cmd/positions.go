package cmd

import (
	"context"
	"flag"

	"github.com/etnz/dealbook/renderer"
	"github.com/google/subcommands"
)

type positionsCmd struct {
	filters filterFlag
	limit   int
}

func (*positionsCmd) Name() string { return "positions" }
func (*positionsCmd) Synopsis() string {
	return "displays the investment-position view: one row per stake"
}
func (*positionsCmd) Usage() string {
	return `dbk positions [-f key=value]... [-n <limit>]

  Displays one row per investment position whose deal, company and investor
  all resolve. Filters match by case-insensitive substring on text fields and
  by exact value elsewhere.

Usage Examples:
# All lead positions.
$ dbk positions -f leadInvestor=true

# Positions taken in Chinese companies.
$ dbk positions -f country=China

`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.filters, "f", "filter rows by key=value (repeatable)")
	f.IntVar(&c.limit, "n", 50, "maximum rows to display (0 means all)")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _ := LoadStore()
	rows := store.Positions(c.filters.filters)
	if c.limit > 0 && len(rows) > c.limit {
		rows = rows[:c.limit]
	}
	printMarkdown(renderer.Positions(rows))
	return subcommands.ExitSuccess
}
