package dealbook

// Company is one portfolio company record.
//
// Companies come either from the company source file or from the synthetic
// generator. Both paths go through AddCompany which fills the remaining
// defaults.
type Company struct {
	ID            string
	Name          string // English name
	NameZH        string // Chinese name
	Contact       string
	Email         string
	Website       string
	ListingStatus string
	Country       string
	Industry      string
	Categories    CategorySet
}

// CategorySet is the set of boolean category flags a company can carry.
type CategorySet struct {
	Technology      bool
	AI              bool
	Semiconductor   bool
	Battery         bool
	ElectricVehicle bool
	RealAssets      bool
	Healthcare      bool
}

// Labels returns the names of the set flags, for display and filtering.
func (c CategorySet) Labels() []string {
	var labels []string
	for _, f := range []struct {
		set   bool
		label string
	}{
		{c.Technology, "Technology"},
		{c.AI, "AI"},
		{c.Semiconductor, "Semiconductor"},
		{c.Battery, "Battery"},
		{c.ElectricVehicle, "Electric Vehicle"},
		{c.RealAssets, "Real Assets"},
		{c.Healthcare, "Healthcare"},
	} {
		if f.set {
			labels = append(labels, f.label)
		}
	}
	return labels
}

// companyFromRecord maps a raw source row to a Company. Column names are
// matched literally against the source header; absent columns default.
func companyFromRecord(rec Record) Company {
	return Company{
		ID:            rec.field("Company ID", ""),
		Name:          rec.field("Company Name", "Unknown"),
		NameZH:        rec.field("Company Name (Chinese)", ""),
		Contact:       rec.field("Contact", ""),
		Email:         rec.field("Email", ""),
		Website:       rec.field("Website", ""),
		ListingStatus: rec.field("Listing Status", "Private"),
		Country:       rec.field("Country", "Unknown"),
		Industry:      rec.field("Industry", "Other"),
		Categories: CategorySet{
			Technology:      rec.boolField("Technology"),
			AI:              rec.boolField("AI"),
			Semiconductor:   rec.boolField("Semiconductor"),
			Battery:         rec.boolField("Battery"),
			ElectricVehicle: rec.boolField("Electric Vehicle"),
			RealAssets:      rec.boolField("Real Assets"),
			Healthcare:      rec.boolField("Healthcare"),
		},
	}
}
