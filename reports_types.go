package dealbook

// This file defines the two reporting shapes materialized from the store.
// Rows are plain records; the presentation layer renders them as-is.

// DealSummaryRow is the deal-centric perspective: one financing round,
// aggregated across all participants.
type DealSummaryRow struct {
	DealID         string
	Company        string // English company name
	CompanyZH      string // Chinese company name
	Round          string
	TotalSize      Money    // the deal's USD size, or the positions aggregate when undisclosed
	AllInvestors   []string // investor display names, in attach order
	TotalInvestors int      // distinct investors
	Date           Date     // disclosure date
	ExpectedDate   Date
	CompletionDate Date
	Stage          string
	Industry       string
	Country        string
	Currency       string
}

// Fields exposes the row as a field-name map for the shared filter matcher.
func (r DealSummaryRow) Fields() map[string]any {
	return map[string]any{
		"id":             r.DealID,
		"company":        r.Company,
		"companyZH":      r.CompanyZH,
		"round":          r.Round,
		"totalSize":      r.TotalSize.Amount(),
		"allInvestors":   r.AllInvestors,
		"totalInvestors": r.TotalInvestors,
		"date":           r.Date.String(),
		"expectedDate":   r.ExpectedDate.String(),
		"completionDate": r.CompletionDate.String(),
		"stage":          r.Stage,
		"industry":       r.Industry,
		"country":        r.Country,
		"currency":       r.Currency,
	}
}

// PositionRow is the position-centric perspective: one participant's stake in
// one deal, with the parent round's context joined in.
type PositionRow struct {
	PositionID  string
	DealID      string
	Investor    string // English investor name
	Company     string // English company name
	CompanyZH   string // Chinese company name
	Size        Money  // this position's USD size
	DealTotal   Money  // the parent deal's total USD size
	Round       string
	Date        Date // disclosure date
	Stage       string
	Industry    string
	Country     string
	Lead        bool
	EquityStake float64
	Fund        string // resolved fund name, "" when unresolved

	Syndication  bool
	CrossBorder  bool
	Local        bool
	Foreign      bool
	JointVenture bool
}

// Fields exposes the row as a field-name map for the shared filter matcher.
func (r PositionRow) Fields() map[string]any {
	return map[string]any{
		"id":           r.PositionID,
		"dealId":       r.DealID,
		"investor":     r.Investor,
		"company":      r.Company,
		"companyZH":    r.CompanyZH,
		"size":         r.Size.Amount(),
		"dealTotal":    r.DealTotal.Amount(),
		"round":        r.Round,
		"date":         r.Date.String(),
		"stage":        r.Stage,
		"industry":     r.Industry,
		"country":      r.Country,
		"leadInvestor": r.Lead,
		"equityStake":  r.EquityStake,
		"fund":         r.Fund,
		"syndication":  r.Syndication,
		"crossBorder":  r.CrossBorder,
		"local":        r.Local,
		"foreign":      r.Foreign,
		"jointVenture": r.JointVenture,
	}
}
