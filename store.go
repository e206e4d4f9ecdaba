package dealbook

import (
	"iter"
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Store is the canonical in-memory warehouse of private-equity records.
//
// It owns identity assignment and raw field storage; all mutations go through
// the Add* methods, and Clear is the only teardown path. A Store is built once
// at process start and handed to every consumer by reference. It is not safe
// for concurrent use.
type Store struct {
	companies  map[string]Company
	deals      map[string]Deal
	positions  map[string]Position
	investors  map[string]Investor
	funds      map[string]Fund
	valuations map[string]Valuation

	// adjacency lists, maintained incrementally by the Add* methods.
	companyDeals      map[string][]string
	dealPositions     map[string][]string
	investorPositions map[string][]string
	fundPositions     map[string][]string // only positions with a resolved FundID
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{}
	s.Clear()
	return s
}

// Clear empties every entity map and every adjacency index. Idempotent.
func (s *Store) Clear() {
	s.companies = make(map[string]Company)
	s.deals = make(map[string]Deal)
	s.positions = make(map[string]Position)
	s.investors = make(map[string]Investor)
	s.funds = make(map[string]Fund)
	s.valuations = make(map[string]Valuation)
	s.companyDeals = make(map[string][]string)
	s.dealPositions = make(map[string][]string)
	s.investorPositions = make(map[string][]string)
	s.fundPositions = make(map[string][]string)
}

func newID() string { return uuid.NewString() }

// AddCompany inserts a company, filling defaults for absent fields and
// assigning an identifier when the caller supplies none.
func (s *Store) AddCompany(c Company) string {
	if c.ID == "" {
		c.ID = newID()
	}
	if c.Name == "" {
		c.Name = "Unknown"
	}
	if c.Country == "" {
		c.Country = "Unknown"
	}
	if c.Industry == "" {
		c.Industry = "Other"
	}
	if c.ListingStatus == "" {
		c.ListingStatus = "Private"
	}
	s.companies[c.ID] = c
	if _, ok := s.companyDeals[c.ID]; !ok {
		s.companyDeals[c.ID] = []string{}
	}
	return c.ID
}

// AddInvestor inserts an investor, filling defaults and assigning an
// identifier when the caller supplies none.
func (s *Store) AddInvestor(i Investor) string {
	if i.ID == "" {
		i.ID = newID()
	}
	if i.Name == "" {
		i.Name = "Unknown"
	}
	if i.Category == "" {
		i.Category = "Other"
	}
	if i.Location == "" {
		i.Location = "Unknown"
	}
	if i.Affiliation == "" {
		i.Affiliation = "Independent"
	}
	s.investors[i.ID] = i
	if _, ok := s.investorPositions[i.ID]; !ok {
		s.investorPositions[i.ID] = []string{}
	}
	return i.ID
}

// AddFund inserts a fund, filling defaults and assigning an identifier when
// the caller supplies none.
func (s *Store) AddFund(f Fund) string {
	if f.ID == "" {
		f.ID = newID()
	}
	if f.Name == "" {
		f.Name = "Unknown"
	}
	if f.Currency == "" {
		f.Currency = "USD"
	}
	if f.Status == "" {
		f.Status = "Active"
	}
	s.funds[f.ID] = f
	if _, ok := s.fundPositions[f.ID]; !ok {
		s.fundPositions[f.ID] = []string{}
	}
	return f.ID
}

// AddDeal inserts a financing round under the given company and appends it to
// the company's adjacency list. The identifier is always generated.
//
// The deal is stored even when companyID is unknown; queries involving that
// company simply find nothing.
func (s *Store) AddDeal(d Deal, companyID string) string {
	d.ID = newID()
	d.CompanyID = companyID
	s.deals[d.ID] = d
	s.companyDeals[companyID] = append(s.companyDeals[companyID], d.ID)
	return d.ID
}

// AddPosition inserts one participant's stake in a deal, copies the company
// back-reference from the deal, appends to the deal's and investor's
// adjacency lists, and recomputes the deal's cached totals.
//
// A missing deal leaves CompanyID unset rather than failing.
func (s *Store) AddPosition(p Position, dealID, investorID string) string {
	p.ID = newID()
	p.DealID = dealID
	p.InvestorID = investorID
	if d, ok := s.deals[dealID]; ok {
		p.CompanyID = d.CompanyID
	}
	s.positions[p.ID] = p
	s.dealPositions[dealID] = append(s.dealPositions[dealID], p.ID)
	s.investorPositions[investorID] = append(s.investorPositions[investorID], p.ID)
	if p.FundID != "" {
		s.fundPositions[p.FundID] = append(s.fundPositions[p.FundID], p.ID)
	}
	s.updateDealTotals(dealID)
	return p.ID
}

// AddValuation stores a valuation record.
func (s *Store) AddValuation(v Valuation) string {
	if v.ID == "" {
		v.ID = newID()
	}
	s.valuations[v.ID] = v
	return v.ID
}

// Company returns the company with this id, or nil if unknown.
func (s *Store) Company(id string) *Company {
	c, ok := s.companies[id]
	if !ok {
		return nil
	}
	return &c
}

// Deal returns the deal with this id, or nil if unknown.
func (s *Store) Deal(id string) *Deal {
	d, ok := s.deals[id]
	if !ok {
		return nil
	}
	return &d
}

// Investor returns the investor with this id, or nil if unknown.
func (s *Store) Investor(id string) *Investor {
	i, ok := s.investors[id]
	if !ok {
		return nil
	}
	return &i
}

// Fund returns the fund with this id, or nil if unknown.
func (s *Store) Fund(id string) *Fund {
	f, ok := s.funds[id]
	if !ok {
		return nil
	}
	return &f
}

// Position returns the position with this id, or nil if unknown.
func (s *Store) Position(id string) *Position {
	p, ok := s.positions[id]
	if !ok {
		return nil
	}
	return &p
}

// CompanyValuations returns all valuations recorded for a company.
func (s *Store) CompanyValuations(companyID string) []Valuation {
	var vals []Valuation
	for _, id := range sortedKeys(s.valuations) {
		if v := s.valuations[id]; v.CompanyID == companyID {
			vals = append(vals, v)
		}
	}
	return vals
}

// CompanyIDByName resolves a company id from its exact English name.
// Used to link imported valuation rows; linear scan.
func (s *Store) CompanyIDByName(name string) (string, bool) {
	for _, id := range sortedKeys(s.companies) {
		if s.companies[id].Name == name {
			return id, true
		}
	}
	return "", false
}

// Counts reports how many records of each kind the store currently holds.
type Counts struct {
	Companies  int
	Deals      int
	Positions  int
	Investors  int
	Funds      int
	Valuations int
}

// Counts returns the current entity counts.
func (s *Store) Counts() Counts {
	return Counts{
		Companies:  len(s.companies),
		Deals:      len(s.deals),
		Positions:  len(s.positions),
		Investors:  len(s.investors),
		Funds:      len(s.funds),
		Valuations: len(s.valuations),
	}
}

// EntityName resolves a short display name for one of the four primary
// entity kinds: "company", "deal", "investor" or "fund". It returns "" for
// an unknown kind or id.
func (s *Store) EntityName(kind, id string) string {
	switch kind {
	case "company":
		if c := s.Company(id); c != nil {
			return c.Name
		}
	case "deal":
		if d := s.Deal(id); d != nil {
			if c := s.Company(d.CompanyID); c != nil {
				return c.Name + " " + d.Round
			}
			return d.Round
		}
	case "investor":
		if i := s.Investor(id); i != nil {
			return i.Name
		}
	case "fund":
		if f := s.Fund(id); f != nil {
			return f.Name
		}
	}
	return ""
}

// AllCompanies iterates over companies in stable id order.
func (s *Store) AllCompanies() iter.Seq[Company] { return all(s.companies) }

// AllDeals iterates over deals in stable id order.
func (s *Store) AllDeals() iter.Seq[Deal] { return all(s.deals) }

// AllPositions iterates over positions in stable id order.
func (s *Store) AllPositions() iter.Seq[Position] { return all(s.positions) }

// AllInvestors iterates over investors in stable id order.
func (s *Store) AllInvestors() iter.Seq[Investor] { return all(s.investors) }

// AllFunds iterates over funds in stable id order.
func (s *Store) AllFunds() iter.Seq[Fund] { return all(s.funds) }

func all[T any](m map[string]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, id := range sortedKeys(m) {
			if !yield(m[id]) {
				return
			}
		}
	}
}

func sortedKeys[T any](m map[string]T) []string {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}
