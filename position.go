package dealbook

// Position is one investor's participation (stake) in one deal.
//
// CompanyID is copied from the referenced deal at creation time. It is a
// denormalized back-reference, not an independent source of truth: it must
// always equal the deal's CompanyID.
type Position struct {
	ID          string
	DealID      string
	InvestorID  string
	CompanyID   string
	FundID      string // resolved at ingestion time; may be empty
	FundName    string // free-text association kept for diagnostics
	Size        Money  // local currency
	SizeUSD     Money
	EquityStake float64 // percentage
	Lead        bool    // this position led/arranged the round

	// classification flags
	Syndication  bool
	CrossBorder  bool
	Local        bool
	Foreign      bool
	JointVenture bool
}
