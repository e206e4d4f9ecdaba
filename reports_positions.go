package dealbook

// Positions materializes the position-centric view: one row per position
// whose deal, company and investor all resolve. Positions with a dangling
// reference are silently excluded; collaborators never see an error from
// this read path. The optional filters are applied before returning.
func (s *Store) Positions(filters Filters) []PositionRow {
	rows := make([]PositionRow, 0, len(s.positions))
	for p := range s.AllPositions() {
		d := s.Deal(p.DealID)
		if d == nil {
			continue
		}
		c := s.Company(p.CompanyID)
		if c == nil {
			continue
		}
		i := s.Investor(p.InvestorID)
		if i == nil {
			continue
		}

		dealTotal := d.SizeUSD
		if !dealTotal.Known() {
			dealTotal = d.TotalPositions
		}

		var fundName string
		if f := s.fundOf(p); f != nil {
			fundName = f.Name
		}

		row := PositionRow{
			PositionID:   p.ID,
			DealID:       d.ID,
			Investor:     i.Name,
			Company:      c.Name,
			CompanyZH:    c.NameZH,
			Size:         p.SizeUSD,
			DealTotal:    dealTotal,
			Round:        d.Round,
			Date:         d.DisclosureDate,
			Stage:        d.Stage,
			Industry:     c.Industry,
			Country:      c.Country,
			Lead:         p.Lead,
			EquityStake:  p.EquityStake,
			Fund:         fundName,
			Syndication:  p.Syndication,
			CrossBorder:  p.CrossBorder,
			Local:        p.Local,
			Foreign:      p.Foreign,
			JointVenture: p.JointVenture,
		}
		if !filters.Match(row.Fields()) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
