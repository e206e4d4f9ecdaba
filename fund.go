package dealbook

// Fund is one investment-fund record.
//
// Positions reference funds through an explicit FundID resolved at ingestion
// time. The historical name-based association (matching Position.FundName
// against Fund.Name) survives only as a diagnostic fallback for positions
// imported without a resolvable fund; see Store.fundOf.
type Fund struct {
	ID                string
	Name              string // English name
	NameZH            string // Chinese name
	Size              Money
	Currency          string
	Status            string // Active, Raising, Closed, ...
	VintageYear       int
	IndustryFocus     string
	GeographicFocus   string
	ManagementCompany string
}

// fundFromRecord maps a raw source row to a Fund. The source reports fund
// sizes in millions, rescaled here to base currency units.
func fundFromRecord(rec Record) Fund {
	currency := rec.field("Currency", "USD")
	var size Money
	if v, ok := rec.numericField("Fund Size (USD M)"); ok {
		size = M(v*1e6, currency)
	}
	return Fund{
		ID:                rec.field("Fund ID", ""),
		Name:              rec.field("Fund Name", "Unknown"),
		NameZH:            rec.field("Fund Name (Chinese)", ""),
		Size:              size,
		Currency:          currency,
		Status:            rec.field("Status", "Active"),
		VintageYear:       rec.intField("Vintage Year", 0),
		IndustryFocus:     rec.field("Industry Focus", "Diversified"),
		GeographicFocus:   rec.field("Geographic Focus", "Global"),
		ManagementCompany: rec.field("Management Company", "Unknown"),
	}
}
