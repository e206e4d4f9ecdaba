package dealbook

import "strings"

// This file holds the relationship-index hops: the O(1)-append adjacency
// lists let the views avoid full scans for the common "children of X"
// queries. Fund hops use the FundID index first and fall back to the weak
// name-based association for positions imported without a resolvable fund.

// CompanyDeals returns all deals raised by a company, in attach order.
func (s *Store) CompanyDeals(companyID string) []Deal {
	ids := s.companyDeals[companyID]
	deals := make([]Deal, 0, len(ids))
	for _, id := range ids {
		if d, ok := s.deals[id]; ok {
			deals = append(deals, d)
		}
	}
	return deals
}

// DealPositions returns all positions attached to a deal, in attach order.
func (s *Store) DealPositions(dealID string) []Position {
	ids := s.dealPositions[dealID]
	positions := make([]Position, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.positions[id]; ok {
			positions = append(positions, p)
		}
	}
	return positions
}

// InvestorPositions returns all positions taken by an investor, in attach order.
func (s *Store) InvestorPositions(investorID string) []Position {
	ids := s.investorPositions[investorID]
	positions := make([]Position, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.positions[id]; ok {
			positions = append(positions, p)
		}
	}
	return positions
}

// FundPositions returns all positions associated with a fund. The fund may be
// given by id or by raw name, since the name is the only link available for
// records imported without a structural fund reference.
func (s *Store) FundPositions(fundRef string) []Position {
	fund := s.resolveFund(fundRef)
	if fund == nil {
		return nil
	}
	var positions []Position
	for _, id := range s.fundPositions[fund.ID] {
		if p, ok := s.positions[id]; ok {
			positions = append(positions, p)
		}
	}
	// Diagnostic fallback: positions carrying only a fund name.
	for p := range s.AllPositions() {
		if p.FundID == "" && p.FundName != "" && fundNameMatches(p.FundName, fund.Name) {
			positions = append(positions, p)
		}
	}
	return positions
}

// resolveFund accepts a fund's structural identifier or a raw fund-name string.
func (s *Store) resolveFund(fundRef string) *Fund {
	if f := s.Fund(fundRef); f != nil {
		return f
	}
	for f := range s.AllFunds() {
		if fundNameMatches(fundRef, f.Name) {
			fund := f
			return &fund
		}
	}
	return nil
}

// fundNameMatches implements the weak name-based fund association: equality
// or substring containment, either way around.
func fundNameMatches(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// fundOf resolves the fund a position belongs to: the structural FundID when
// present, else the name-based fallback.
func (s *Store) fundOf(p Position) *Fund {
	if p.FundID != "" {
		return s.Fund(p.FundID)
	}
	if p.FundName == "" {
		return nil
	}
	for f := range s.AllFunds() {
		if fundNameMatches(p.FundName, f.Name) {
			fund := f
			return &fund
		}
	}
	return nil
}

// updateDealTotals recomputes the cached USD sum and distinct-investor count
// for one deal. Called after every position attach; the cached fields are the
// single source of truth for deal totals.
func (s *Store) updateDealTotals(dealID string) {
	d, ok := s.deals[dealID]
	if !ok {
		return
	}
	var total Money
	distinct := make(map[string]struct{})
	for _, pid := range s.dealPositions[dealID] {
		p, ok := s.positions[pid]
		if !ok {
			continue
		}
		total = total.Add(p.SizeUSD)
		if p.InvestorID != "" {
			distinct[p.InvestorID] = struct{}{}
		}
	}
	d.TotalPositions = total
	d.TotalInvestors = len(distinct)
	s.deals[dealID] = d
}
