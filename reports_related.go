package dealbook

// Ad-hoc relationship lookups. Each composes one or two indexed hops and
// de-duplicates by identifier before returning entity records (not view
// rows). Fund-qualified queries accept a fund id or a raw fund-name string.

// CompanyRelatedInvestors returns the investors holding a position in any of
// the company's deals.
func (s *Store) CompanyRelatedInvestors(companyID string) []Investor {
	var ids []string
	for _, d := range s.CompanyDeals(companyID) {
		for _, p := range s.DealPositions(d.ID) {
			ids = append(ids, p.InvestorID)
		}
	}
	return collectInvestors(s, ids)
}

// CompanyRelatedFunds returns the funds behind any position in the company's
// deals.
func (s *Store) CompanyRelatedFunds(companyID string) []Fund {
	var funds []Fund
	for _, d := range s.CompanyDeals(companyID) {
		funds = append(funds, s.positionFunds(s.DealPositions(d.ID))...)
	}
	return dedupeFunds(funds)
}

// InvestorRelatedCompanies returns the companies an investor holds a position in.
func (s *Store) InvestorRelatedCompanies(investorID string) []Company {
	var ids []string
	for _, p := range s.InvestorPositions(investorID) {
		ids = append(ids, p.CompanyID)
	}
	return collectCompanies(s, ids)
}

// InvestorRelatedDeals returns the deals an investor participates in.
func (s *Store) InvestorRelatedDeals(investorID string) []Deal {
	var ids []string
	for _, p := range s.InvestorPositions(investorID) {
		ids = append(ids, p.DealID)
	}
	return collectDeals(s, ids)
}

// InvestorRelatedFunds returns the funds behind an investor's positions.
func (s *Store) InvestorRelatedFunds(investorID string) []Fund {
	return dedupeFunds(s.positionFunds(s.InvestorPositions(investorID)))
}

// DealRelatedCompanies returns the companies involved in a deal. With the
// current schema that is the raising company alone, when it resolves.
func (s *Store) DealRelatedCompanies(dealID string) []Company {
	d := s.Deal(dealID)
	if d == nil {
		return nil
	}
	return collectCompanies(s, []string{d.CompanyID})
}

// DealRelatedInvestors returns the distinct investors participating in a deal.
func (s *Store) DealRelatedInvestors(dealID string) []Investor {
	var ids []string
	for _, p := range s.DealPositions(dealID) {
		ids = append(ids, p.InvestorID)
	}
	return collectInvestors(s, ids)
}

// DealRelatedFunds returns the funds behind a deal's positions.
func (s *Store) DealRelatedFunds(dealID string) []Fund {
	return dedupeFunds(s.positionFunds(s.DealPositions(dealID)))
}

// FundRelatedCompanies returns the companies a fund holds positions in.
func (s *Store) FundRelatedCompanies(fundRef string) []Company {
	var ids []string
	for _, p := range s.FundPositions(fundRef) {
		ids = append(ids, p.CompanyID)
	}
	return collectCompanies(s, ids)
}

// FundRelatedInvestors returns the investors deploying a fund.
func (s *Store) FundRelatedInvestors(fundRef string) []Investor {
	var ids []string
	for _, p := range s.FundPositions(fundRef) {
		ids = append(ids, p.InvestorID)
	}
	return collectInvestors(s, ids)
}

// FundRelatedDeals returns the deals a fund participates in.
func (s *Store) FundRelatedDeals(fundRef string) []Deal {
	var ids []string
	for _, p := range s.FundPositions(fundRef) {
		ids = append(ids, p.DealID)
	}
	return collectDeals(s, ids)
}

// positionFunds resolves each position's fund, dropping unresolved ones.
func (s *Store) positionFunds(positions []Position) []Fund {
	var funds []Fund
	for _, p := range positions {
		if f := s.fundOf(p); f != nil {
			funds = append(funds, *f)
		}
	}
	return funds
}

func collectCompanies(s *Store, ids []string) []Company {
	var out []Company
	for _, id := range dedupeIDs(ids) {
		if c := s.Company(id); c != nil {
			out = append(out, *c)
		}
	}
	return out
}

func collectInvestors(s *Store, ids []string) []Investor {
	var out []Investor
	for _, id := range dedupeIDs(ids) {
		if i := s.Investor(id); i != nil {
			out = append(out, *i)
		}
	}
	return out
}

func collectDeals(s *Store, ids []string) []Deal {
	var out []Deal
	for _, id := range dedupeIDs(ids) {
		if d := s.Deal(id); d != nil {
			out = append(out, *d)
		}
	}
	return out
}

// dedupeIDs keeps the first occurrence of each id, preserving order.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func dedupeFunds(funds []Fund) []Fund {
	seen := make(map[string]struct{}, len(funds))
	var out []Fund
	for _, f := range funds {
		if _, ok := seen[f.ID]; ok {
			continue
		}
		seen[f.ID] = struct{}{}
		out = append(out, f)
	}
	return out
}
