package cmd

import (
	"context"
	"flag"

	"github.com/etnz/dealbook/renderer"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string { return "import" }
func (*importCmd) Synopsis() string {
	return "fetches the source files and populates the warehouse"
}
func (*importCmd) Usage() string {
	return `dbk [-company-source <url>] [-investor-source <url>] [-fund-source <url>] import

  Clears the warehouse and repopulates it from the configured sources.
  When a source is unreachable or malformed the whole real-data attempt is
  abandoned and a synthetic dataset is generated instead.

Usage Examples:
# Import from real sources.
$ dbk -company-source https://example.com/companies.csv import

# Generate the synthetic dataset.
$ dbk import

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, stats := LoadStore()
	printMarkdown(renderer.ImportStats(stats))
	return subcommands.ExitSuccess
}
