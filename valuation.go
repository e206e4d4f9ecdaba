package dealbook

// Valuation holds optional per-company financial ratios.
//
// Valuations are stored but not joined into the two primary views; they are
// served raw to whoever asks for a company's ratios.
type Valuation struct {
	ID         string
	CompanyID  string
	DealID     string // optional, when the ratios were computed at a round
	PERatio    float64
	PBRatio    float64
	PSRatio    float64
	EVToEBITDA float64
	AsOf       Date
}
