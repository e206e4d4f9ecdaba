package dealbook

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const companyCSV = `Company Name,Company Name (Chinese),Country,Industry,Listing Status,Technology,AI
Acme Robotics,机器人,Germany,Advanced Manufacturing,Private,Yes,Yes
ABC Corp,,China,Software,Listed,Yes,No
Stealth Bio,,United States,Healthcare,Private,No,No
`

const investorCSV = `Investor Name,Firm Category,Firm Location,Affiliation
Alpha Capital,Venture Capital,United States,Independent
Beta Partners,Private Equity,Singapore,
`

const fundCSV = `Fund Name,Fund Size (USD M),Currency,Vintage Year,Status
Alpha Growth Fund II,"1,500",USD,2021,Active
`

const valuationJSON = `{
  "valuations": [
    {"company": "Acme Robotics", "pe": 12.1, "pb": 2.4, "ps": 3.1, "evEbitda": 9.8, "date": "2025-06-30"},
    {"company": "Nobody Knows Inc", "pe": 99}
  ]
}`

// sourceServer serves the four test sources under fixed paths.
func sourceServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	serve := func(path, body string) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})
	}
	serve("/companies.csv", companyCSV)
	serve("/investors.csv", investorCSV)
	serve("/funds.csv", fundCSV)
	serve("/valuations.json", valuationJSON)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestImportReal(t *testing.T) {
	srv := sourceServer(t)
	s := NewStore()
	imp := &Importer{
		Client: srv.Client(),
		Sources: Sources{
			Companies:  srv.URL + "/companies.csv",
			Investors:  srv.URL + "/investors.csv",
			Funds:      srv.URL + "/funds.csv",
			Valuations: srv.URL + "/valuations.json",
		},
		Seed: 42,
	}
	stats := imp.Import(s)

	if stats.Synthetic {
		t.Fatal("real import reported as synthetic")
	}
	if stats.Companies != 3 || stats.Investors != 2 || stats.Funds != 1 {
		t.Errorf("entity counts = %+v", stats)
	}
	// deals and positions are synthesized at a scale tied to the imported
	// company count
	if stats.Deals != 6 || stats.Positions != 15 {
		t.Errorf("generated deals/positions = %d/%d, want 6/15", stats.Deals, stats.Positions)
	}
	// the unknown-company valuation row is skipped
	if stats.Valuations != 1 {
		t.Errorf("valuations = %d, want 1", stats.Valuations)
	}

	id, ok := s.CompanyIDByName("Acme Robotics")
	if !ok {
		t.Fatal("imported company not found by name")
	}
	c := s.Company(id)
	if !c.Categories.AI || !c.Categories.Technology {
		t.Errorf("category flags not parsed: %+v", c.Categories)
	}
	vals := s.CompanyValuations(id)
	if len(vals) != 1 || vals[0].PERatio != 12.1 {
		t.Errorf("valuations for Acme = %+v", vals)
	}
	if vals[0].AsOf.String() != "2025-06-30" {
		t.Errorf("valuation date = %q", vals[0].AsOf)
	}

	// affiliation default applied by the row transform
	invID := ""
	for inv := range s.AllInvestors() {
		if inv.Name == "Beta Partners" {
			invID = inv.ID
		}
	}
	if inv := s.Investor(invID); inv == nil || inv.Affiliation != "Independent" {
		t.Errorf("Beta Partners affiliation not defaulted: %+v", inv)
	}

	// fund size rescaled from millions
	for f := range s.AllFunds() {
		if !f.Size.Equal(USD(1.5e9)) {
			t.Errorf("fund size = %v, want %v", f.Size, USD(1.5e9))
		}
	}
}

func TestImportFallsBackToSynthetic(t *testing.T) {
	srv := sourceServer(t)
	s := NewStore()
	imp := &Importer{
		Client: srv.Client(),
		Sources: Sources{
			Companies: srv.URL + "/no-such-file.csv",
			Investors: srv.URL + "/investors.csv",
			Funds:     srv.URL + "/funds.csv",
		},
		Generator: GeneratorConfig{Companies: 12, Investors: 6, Funds: 3, Deals: 24, Positions: 50, Seed: 1},
	}
	stats := imp.Import(s)

	if !stats.Synthetic {
		t.Fatal("unreachable source should fall back to the synthetic dataset")
	}
	want := ImportStats{Companies: 12, Investors: 6, Funds: 3, Deals: 24, Positions: 50, Synthetic: true}
	if stats != want {
		t.Errorf("fallback stats = %+v, want %+v", stats, want)
	}
	// no partial real data survives the fallback
	if _, ok := s.CompanyIDByName("Acme Robotics"); ok {
		t.Error("partial real data leaked into the synthetic dataset")
	}
}

func TestImportNoSourcesConfigured(t *testing.T) {
	s := NewStore()
	imp := &Importer{
		Generator: GeneratorConfig{Companies: 5, Investors: 3, Funds: 2, Deals: 10, Positions: 20, Seed: 1},
	}
	stats := imp.Import(s)
	if !stats.Synthetic {
		t.Error("no sources configured should yield the synthetic dataset")
	}
}

func TestImportValuationFailureIsNotFatal(t *testing.T) {
	srv := sourceServer(t)
	s := NewStore()
	imp := &Importer{
		Client: srv.Client(),
		Sources: Sources{
			Companies:  srv.URL + "/companies.csv",
			Investors:  srv.URL + "/investors.csv",
			Funds:      srv.URL + "/funds.csv",
			Valuations: srv.URL + "/no-such-file.json",
		},
		Seed: 42,
	}
	stats := imp.Import(s)
	if stats.Synthetic {
		t.Error("a valuation failure must not abandon the real import")
	}
	if stats.Valuations != 0 {
		t.Errorf("valuations = %d, want 0", stats.Valuations)
	}
}

func TestReimportClearsPreviousData(t *testing.T) {
	srv := sourceServer(t)
	s := NewStore()
	s.AddCompany(Company{Name: "Leftover Co"})

	imp := &Importer{
		Client: srv.Client(),
		Sources: Sources{
			Companies: srv.URL + "/companies.csv",
			Investors: srv.URL + "/investors.csv",
			Funds:     srv.URL + "/funds.csv",
		},
		Seed: 42,
	}
	imp.Import(s)

	if _, ok := s.CompanyIDByName("Leftover Co"); ok {
		t.Error("previous records survived the re-import")
	}
	if got := s.Counts().Companies; got != 3 {
		t.Errorf("companies after re-import = %d, want 3", got)
	}
}
