package dealbook

// DealSummaries materializes the deal-centric view: one row per deal in the
// store, joining the deal's company and aggregating its attached positions.
// The optional filters are applied before returning.
//
// The view never mutates state. A deal whose company is unknown still gets a
// row, with empty company fields.
func (s *Store) DealSummaries(filters Filters) []DealSummaryRow {
	rows := make([]DealSummaryRow, 0, len(s.deals))
	for d := range s.AllDeals() {
		row := s.dealSummaryRow(d)
		if !filters.Match(row.Fields()) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *Store) dealSummaryRow(d Deal) DealSummaryRow {
	var company, companyZH, industry, country string
	if c := s.Company(d.CompanyID); c != nil {
		company = c.Name
		companyZH = c.NameZH
		industry = c.Industry
		country = c.Country
	}

	positions := s.DealPositions(d.ID)
	names := make([]string, 0, len(positions))
	for _, p := range positions {
		if i := s.Investor(p.InvestorID); i != nil {
			names = append(names, i.Name)
		}
	}

	// An undisclosed deal size falls back to the cached positions aggregate.
	// Both may be unknown; the row then carries the unknown sentinel rather
	// than a fabricated magnitude.
	size := d.SizeUSD
	if !size.Known() {
		size = d.TotalPositions
	}

	currency := d.Size.Currency()
	if currency == "" {
		currency = "USD"
	}

	return DealSummaryRow{
		DealID:         d.ID,
		Company:        company,
		CompanyZH:      companyZH,
		Round:          d.Round,
		TotalSize:      size,
		AllInvestors:   names,
		TotalInvestors: d.TotalInvestors,
		Date:           d.DisclosureDate,
		ExpectedDate:   d.ExpectedCompletionDate,
		CompletionDate: d.CompletionDate,
		Stage:          d.Stage,
		Industry:       industry,
		Country:        country,
		Currency:       currency,
	}
}
