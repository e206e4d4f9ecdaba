package dealbook

// Deal is one financing round raised by one company.
//
// CompanyID always references an existing company at creation time because
// deals are only ever created through Store.AddDeal.
//
// TotalPositions and TotalInvestors are cached aggregates recomputed by the
// store whenever a position is attached to the deal. They are the single
// source of truth for deal totals; views read them instead of re-walking the
// position list.
type Deal struct {
	ID                     string
	CompanyID              string
	Round                  string // funding round label, e.g. "Series B"
	Stage                  string // e.g. "Completed", "Rumoured"
	DisclosureDate         Date
	ExpectedCompletionDate Date
	CompletionDate         Date
	Size                   Money // local currency
	SizeUSD                Money
	TotalPositions         Money // USD sum of attached positions
	TotalInvestors         int   // distinct investors among attached positions
}
