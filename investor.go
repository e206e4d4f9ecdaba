package dealbook

// Investor is one investment-firm profile record.
type Investor struct {
	ID          string
	Name        string // English name
	NameZH      string // Chinese name
	Category    string // firm category, e.g. "VC", "PE", "Sovereign Wealth"
	Location    string
	Affiliation string // Independent, Corporate, Government, ...
	Website     string
	Description string
}

// investorFromRecord maps a raw source row to an Investor.
func investorFromRecord(rec Record) Investor {
	return Investor{
		ID:          rec.field("Investor ID", ""),
		Name:        rec.field("Investor Name", "Unknown"),
		NameZH:      rec.field("Investor Name (Chinese)", ""),
		Category:    rec.field("Firm Category", "Other"),
		Location:    rec.field("Firm Location", "Unknown"),
		Affiliation: rec.field("Affiliation", "Independent"),
		Website:     rec.field("Website", ""),
		Description: rec.field("Description", ""),
	}
}
