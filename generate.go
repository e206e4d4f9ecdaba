package dealbook

import (
	"fmt"
	"math/rand"
	"time"
)

// Synthetic fallback dataset: when no real source is reachable the generator
// rebuilds the whole warehouse from small enumerated vocabularies combined
// with a running index, so names stay unique and the dataset self-consistent.
// Generated records carry the store-assigned identifier forward; there is no
// name-based re-linking.

// GeneratorConfig fixes the quantities of each entity kind to generate.
type GeneratorConfig struct {
	Companies int
	Investors int
	Funds     int
	Deals     int
	Positions int
	Seed      int64 // 0 means time-based
}

// DefaultGeneratorConfig returns the quantities used by the ingestion
// fallback.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Companies: 800,
		Investors: 400,
		Funds:     150,
		Deals:     1600,
		Positions: 4000,
	}
}

var industries = []string{
	"Software", "Semiconductors", "Healthcare", "Consumer", "Energy",
	"Logistics", "Fintech", "Advanced Manufacturing",
}

var countries = []string{
	"China", "United States", "Germany", "Japan", "Singapore", "India",
	"United Kingdom", "South Korea",
}

var techCategories = []string{
	"Technology", "AI", "Semiconductor", "Battery", "Electric Vehicle",
	"Real Assets", "Healthcare",
}

var investorCategories = []string{
	"Venture Capital", "Private Equity", "Corporate VC", "Sovereign Wealth",
	"Family Office", "Angel",
}

var fundFocuses = []string{
	"Early Stage", "Growth", "Buyout", "Infrastructure", "Secondaries", "Credit",
}

var fundingRounds = []string{
	"Seed", "Series A", "Series B", "Series C", "Series D", "Pre-IPO", "Strategic",
}

var dealStages = []string{"Rumoured", "Disclosed", "Signing", "Completed"}

var fundStatuses = []string{"Active", "Raising", "Closed"}

var affiliations = []string{
	"Independent", "Corporate", "Government", "Financial Institution",
}

// Generate rebuilds the entire dataset from nothing at the configured
// quantities and returns the resulting counts.
func Generate(s *Store, cfg GeneratorConfig) ImportStats {
	rng := newRand(cfg.Seed)

	companyIDs := make([]string, 0, cfg.Companies)
	for i := 0; i < cfg.Companies; i++ {
		industry := industries[i%len(industries)]
		country := countries[(i/len(industries))%len(countries)]
		c := Company{
			Name:          fmt.Sprintf("%s %s Co %03d", country, industry, i+1),
			NameZH:        fmt.Sprintf("公司%03d", i+1),
			Country:       country,
			Industry:      industry,
			ListingStatus: "Private",
			Categories:    categoryFor(techCategories[i%len(techCategories)]),
		}
		companyIDs = append(companyIDs, s.AddCompany(c))
	}

	investorIDs := make([]string, 0, cfg.Investors)
	for i := 0; i < cfg.Investors; i++ {
		category := investorCategories[i%len(investorCategories)]
		inv := Investor{
			Name:        fmt.Sprintf("%s Partners %03d", category, i+1),
			NameZH:      fmt.Sprintf("投资%03d", i+1),
			Category:    category,
			Location:    countries[i%len(countries)],
			Affiliation: affiliations[i%len(affiliations)],
		}
		investorIDs = append(investorIDs, s.AddInvestor(inv))
	}

	fundIDs := make([]string, 0, cfg.Funds)
	for i := 0; i < cfg.Funds; i++ {
		focus := fundFocuses[i%len(fundFocuses)]
		f := Fund{
			Name:              fmt.Sprintf("%s Fund %03d", focus, i+1),
			Size:              USD(50e6 + rng.Float64()*4950e6),
			Currency:          "USD",
			Status:            fundStatuses[i%len(fundStatuses)],
			VintageYear:       2012 + i%13,
			IndustryFocus:     industries[i%len(industries)],
			GeographicFocus:   countries[i%len(countries)],
			ManagementCompany: fmt.Sprintf("%s Management %03d", focus, i+1),
		}
		fundIDs = append(fundIDs, s.AddFund(f))
	}

	deals, positions := generateDealsAndPositions(s, rng, companyIDs, investorIDs, fundIDs, cfg.Deals, cfg.Positions)

	return ImportStats{
		Companies: len(companyIDs),
		Investors: len(investorIDs),
		Funds:     len(fundIDs),
		Deals:     deals,
		Positions: positions,
		Synthetic: true,
	}
}

// generateDealsAndPositions links each generated deal to a randomly chosen
// company and each position to a randomly chosen (deal, investor, fund)
// triple, using the identifiers the store just assigned.
func generateDealsAndPositions(s *Store, rng *rand.Rand, companyIDs, investorIDs, fundIDs []string, nDeals, nPositions int) (int, int) {
	if len(companyIDs) == 0 || len(investorIDs) == 0 {
		return 0, 0
	}

	dealIDs := make([]string, 0, nDeals)
	for i := 0; i < nDeals; i++ {
		d := Deal{
			Round:          fundingRounds[i%len(fundingRounds)],
			Stage:          dealStages[i%len(dealStages)],
			DisclosureDate: NewDate(2018+rng.Intn(8), time.Month(1+rng.Intn(12)), 1+rng.Intn(28)),
		}
		// A tenth of the deals keep their size undisclosed so the unknown
		// sentinel stays exercised end to end.
		if rng.Intn(10) != 0 {
			size := 1e6 + rng.Float64()*499e6
			d.Size = USD(size)
			d.SizeUSD = USD(size)
			d.CompletionDate = d.DisclosureDate
		}
		companyID := companyIDs[rng.Intn(len(companyIDs))]
		dealIDs = append(dealIDs, s.AddDeal(d, companyID))
	}

	for i := 0; i < nPositions; i++ {
		size := 5e5 + rng.Float64()*5e7
		crossBorder := rng.Intn(3) == 0
		p := Position{
			Size:        USD(size),
			SizeUSD:     USD(size),
			EquityStake: 0.5 + rng.Float64()*29.5,
			Lead:        rng.Intn(5) == 0,
			Syndication: rng.Intn(2) == 0,
			CrossBorder: crossBorder,
			Foreign:     crossBorder,
			Local:       !crossBorder,
		}
		if len(fundIDs) > 0 && rng.Intn(4) != 0 {
			fundID := fundIDs[rng.Intn(len(fundIDs))]
			p.FundID = fundID
			if f := s.Fund(fundID); f != nil {
				p.FundName = f.Name
			}
		}
		dealID := dealIDs[rng.Intn(len(dealIDs))]
		investorID := investorIDs[rng.Intn(len(investorIDs))]
		s.AddPosition(p, dealID, investorID)
	}
	return len(dealIDs), nPositions
}

func categoryFor(label string) CategorySet {
	switch label {
	case "Technology":
		return CategorySet{Technology: true}
	case "AI":
		return CategorySet{Technology: true, AI: true}
	case "Semiconductor":
		return CategorySet{Technology: true, Semiconductor: true}
	case "Battery":
		return CategorySet{Battery: true}
	case "Electric Vehicle":
		return CategorySet{ElectricVehicle: true, Battery: true}
	case "Real Assets":
		return CategorySet{RealAssets: true}
	case "Healthcare":
		return CategorySet{Healthcare: true}
	}
	return CategorySet{}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
