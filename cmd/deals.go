package cmd

import (
	"context"
	"flag"

	"github.com/etnz/dealbook/renderer"
	"github.com/google/subcommands"
)

type dealsCmd struct {
	filters filterFlag
	limit   int
}

func (*dealsCmd) Name() string { return "deals" }
func (*dealsCmd) Synopsis() string {
	return "displays the deal-summary view: one row per financing round"
}
func (*dealsCmd) Usage() string {
	return `dbk deals [-f key=value]... [-n <limit>]

  Displays every financing round with its company, aggregated investor list
  and total size. Filters match by case-insensitive substring on text fields
  and by exact value elsewhere.

Usage Examples:
# All rounds in the software industry.
$ dbk deals -f industry=Software

# Seed rounds with three investors.
$ dbk deals -f round=Seed -f totalInvestors=3

`
}

func (c *dealsCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.filters, "f", "filter rows by key=value (repeatable)")
	f.IntVar(&c.limit, "n", 50, "maximum rows to display (0 means all)")
}

func (c *dealsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _ := LoadStore()
	rows := store.DealSummaries(c.filters.filters)
	if c.limit > 0 && len(rows) > c.limit {
		rows = rows[:c.limit]
	}
	printMarkdown(renderer.DealSummaries(rows))
	return subcommands.ExitSuccess
}
