package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/dealbook"
	"github.com/google/subcommands"
)

type relatedCmd struct{}

func (*relatedCmd) Name() string { return "related" }
func (*relatedCmd) Synopsis() string {
	return "lists the entities connected to a company, investor, deal or fund"
}
func (*relatedCmd) Usage() string {
	return `dbk related <kind> <id-or-name>

  Walks the relationship graph from the given entity and lists every
  connected company, investor, deal and fund. Kind is one of "company",
  "investor", "deal" or "fund". Companies and investors can be given by
  exact name instead of id; funds also match by partial name.

Usage Examples:
# Everyone who invested in a company.
$ dbk related company "Acme Robotics"

# Every deal a fund participated in.
$ dbk related fund "Growth Fund III"

`
}

func (c *relatedCmd) SetFlags(f *flag.FlagSet) {}

func (c *relatedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Println("related: expects a kind and an id or name")
		return subcommands.ExitUsageError
	}
	kind, ref := f.Arg(0), f.Arg(1)
	store, _ := LoadStore()

	var doc string
	switch kind {
	case "company":
		id := resolveCompany(store, ref)
		doc = relatedDoc(store, "company", id,
			investorSection(store.CompanyRelatedInvestors(id)),
			fundSection(store.CompanyRelatedFunds(id)),
			dealSection(store, store.CompanyDeals(id)))
	case "investor":
		id := resolveInvestor(store, ref)
		doc = relatedDoc(store, "investor", id,
			companySection(store.InvestorRelatedCompanies(id)),
			dealSection(store, store.InvestorRelatedDeals(id)),
			fundSection(store.InvestorRelatedFunds(id)))
	case "deal":
		doc = relatedDoc(store, "deal", ref,
			companySection(store.DealRelatedCompanies(ref)),
			investorSection(store.DealRelatedInvestors(ref)),
			fundSection(store.DealRelatedFunds(ref)))
	case "fund":
		doc = relatedDoc(store, "fund", ref,
			companySection(store.FundRelatedCompanies(ref)),
			investorSection(store.FundRelatedInvestors(ref)),
			dealSection(store, store.FundRelatedDeals(ref)))
	default:
		fmt.Printf("related: unknown kind %q, want company, investor, deal or fund\n", kind)
		return subcommands.ExitUsageError
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// resolveCompany accepts a company id or an exact company name.
func resolveCompany(s *dealbook.Store, ref string) string {
	if s.Company(ref) != nil {
		return ref
	}
	if id, ok := s.CompanyIDByName(ref); ok {
		return id
	}
	return ref
}

// resolveInvestor accepts an investor id or an exact investor name.
func resolveInvestor(s *dealbook.Store, ref string) string {
	if s.Investor(ref) != nil {
		return ref
	}
	for inv := range s.AllInvestors() {
		if inv.Name == ref {
			return inv.ID
		}
	}
	return ref
}

func relatedDoc(s *dealbook.Store, kind, id string, sections ...string) string {
	var sb strings.Builder
	name := s.EntityName(kind, id)
	if name == "" {
		name = id
	}
	fmt.Fprintf(&sb, "# Related to %s %q\n", kind, name)
	for _, sec := range sections {
		sb.WriteString(sec)
	}
	return sb.String()
}

func companySection(companies []dealbook.Company) string {
	names := make([]string, 0, len(companies))
	for _, c := range companies {
		names = append(names, c.Name)
	}
	return bulletSection("Companies", names)
}

func investorSection(investors []dealbook.Investor) string {
	names := make([]string, 0, len(investors))
	for _, i := range investors {
		names = append(names, i.Name)
	}
	return bulletSection("Investors", names)
}

func fundSection(funds []dealbook.Fund) string {
	names := make([]string, 0, len(funds))
	for _, f := range funds {
		names = append(names, f.Name)
	}
	return bulletSection("Funds", names)
}

func dealSection(s *dealbook.Store, deals []dealbook.Deal) string {
	names := make([]string, 0, len(deals))
	for _, d := range deals {
		names = append(names, s.EntityName("deal", d.ID))
	}
	return bulletSection("Deals", names)
}

func bulletSection(title string, names []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n## %s\n\n", title)
	if len(names) == 0 {
		sb.WriteString("none\n")
		return sb.String()
	}
	for _, name := range names {
		fmt.Fprintf(&sb, "- %s\n", name)
	}
	return sb.String()
}
