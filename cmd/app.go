// Package cmd implements the CLI application to browse the deal warehouse.
package cmd

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/dealbook"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "data")

	c.Register(&dealsCmd{}, "reports")
	c.Register(&positionsCmd{}, "reports")
	c.Register(&relatedCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var companySource = flag.String("company-source", "", "URL of the company source file")
var investorSource = flag.String("investor-source", "", "URL of the investor-profile source file")
var fundSource = flag.String("fund-source", "", "URL of the fund source file")
var valuationSource = flag.String("valuation-source", "", "URL of the valuation-ratio JSON source")
var seed = flag.Int64("seed", 0, "seed for generated deals and positions (0 means time-based)")

// LoadStore builds the warehouse. The store lives only for the lifetime of
// the process, so every command triggers ingestion at startup; with no
// sources configured this yields the synthetic dataset.
func LoadStore() (*dealbook.Store, dealbook.ImportStats) {
	store := dealbook.NewStore()
	imp := &dealbook.Importer{
		Sources: dealbook.Sources{
			Companies:  *companySource,
			Investors:  *investorSource,
			Funds:      *fundSource,
			Valuations: *valuationSource,
		},
		Seed: *seed,
	}
	stats := imp.Import(store)
	return store, stats
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when a terminal renderer cannot be built.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Println(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}

// filterFlag collects repeated -f key=value filters into a dealbook.Filters.
type filterFlag struct {
	filters dealbook.Filters
}

func (f *filterFlag) String() string {
	var parts []string
	for k, v := range f.filters {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, ",")
}

func (f *filterFlag) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	if !ok {
		return fmt.Errorf("invalid filter %q, want key=value", v)
	}
	if f.filters == nil {
		f.filters = dealbook.Filters{}
	}
	f.filters[key] = parseFilterValue(value)
	return nil
}

// parseFilterValue maps "true"/"false" to booleans and plain integers to
// ints so exact-equality filters (lead flag, investor counts) work from the
// command line; everything else stays a substring filter.
func parseFilterValue(v string) any {
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return v
}
