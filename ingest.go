package dealbook

import (
	"fmt"
	"log"
	"net/http"
	"strings"
)

// Sources identifies the external tabular sources of a real-data import.
// Each is fetched sequentially: companies first, then investors, then funds.
// There is no row-level deal/position source in this pipeline; those are
// always generated from the imported entities.
type Sources struct {
	Companies  string // company source URL
	Investors  string // investor-profile source URL
	Funds      string // fund source URL
	Valuations string // optional JSON valuation-ratio source URL
}

// ImportStats reports what one ingestion run produced.
type ImportStats struct {
	Companies  int
	Investors  int
	Funds      int
	Deals      int
	Positions  int
	Valuations int
	Synthetic  bool // true when the synthetic fallback rebuilt the dataset
}

// Importer populates a Store from the configured sources, or falls back to
// the synthetic generator when a source is unreachable or malformed.
type Importer struct {
	Client    *http.Client    // nil means the daily-caching default client
	Sources   Sources         // where to fetch the real data from
	Generator GeneratorConfig // fallback quantities; zero value means DefaultGeneratorConfig
	Seed      int64           // seed for generated deals/positions; 0 means time-based
}

// Import clears the store and repopulates it. Ingestion failures never
// propagate to the caller: any failure during the real-data attempt (fetch,
// parse, missing source) aborts the whole attempt and falls through to the
// synthetic generator, which rebuilds the entire dataset at larger fixed
// quantities. The worst-case outcome is a fully synthetic dataset.
func (imp *Importer) Import(s *Store) ImportStats {
	s.Clear()
	stats, err := imp.importReal(s)
	if err != nil {
		log.Printf("real-data import failed: %v; falling back to synthetic dataset", err)
		s.Clear()
		cfg := imp.Generator
		if cfg == (GeneratorConfig{}) {
			cfg = DefaultGeneratorConfig()
		}
		if cfg.Seed == 0 {
			cfg.Seed = imp.Seed
		}
		return Generate(s, cfg)
	}
	return stats
}

// importReal attempts, in order, the company, investor and fund sources, and
// then synthesizes deals and positions from the imported records.
func (imp *Importer) importReal(s *Store) (ImportStats, error) {
	var stats ImportStats
	client := imp.Client
	if client == nil {
		client = daily()
	}

	companies, err := fetchTable(client, imp.Sources.Companies, "company")
	if err != nil {
		return stats, err
	}
	companyIDs := make([]string, 0, len(companies))
	for _, rec := range companies {
		companyIDs = append(companyIDs, s.AddCompany(companyFromRecord(rec)))
	}
	stats.Companies = len(companyIDs)

	investors, err := fetchTable(client, imp.Sources.Investors, "investor")
	if err != nil {
		return stats, err
	}
	investorIDs := make([]string, 0, len(investors))
	for _, rec := range investors {
		investorIDs = append(investorIDs, s.AddInvestor(investorFromRecord(rec)))
	}
	stats.Investors = len(investorIDs)

	funds, err := fetchTable(client, imp.Sources.Funds, "fund")
	if err != nil {
		return stats, err
	}
	fundIDs := make([]string, 0, len(funds))
	for _, rec := range funds {
		fundIDs = append(fundIDs, s.AddFund(fundFromRecord(rec)))
	}
	stats.Funds = len(fundIDs)

	// Deals and positions have no file source; generate them at a scale
	// comparable to the imported entity counts, carrying the store-assigned
	// identifiers forward.
	rng := newRand(imp.Seed)
	stats.Deals, stats.Positions = generateDealsAndPositions(s, rng,
		companyIDs, investorIDs, fundIDs,
		2*len(companyIDs), 5*len(companyIDs))

	// Valuations are a best-effort extra: a failure here skips them without
	// aborting the import, since they are not joined into the primary views.
	if imp.Sources.Valuations != "" {
		n, err := importValuations(client, imp.Sources.Valuations, s)
		if err != nil {
			log.Printf("valuation import failed (skipped): %v", err)
		} else {
			stats.Valuations = n
		}
	}
	return stats, nil
}

// fetchTable retrieves and parses one tabular source.
func fetchTable(client *http.Client, addr, kind string) ([]Record, error) {
	if addr == "" {
		return nil, fmt.Errorf("no %s source configured", kind)
	}
	body, err := twget(client, addr)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch %s source: %w", kind, err)
	}
	records, err := ParseTable(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s source: %w", kind, err)
	}
	return records, nil
}
