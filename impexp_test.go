package dealbook

import (
	"strings"
	"testing"
	"time"
)

func TestParseTable(t *testing.T) {
	src := `Company Name, Country ,Industry
Acme Robotics,Germany,Advanced Manufacturing
"Smith, Jones & Co",United Kingdom,Fintech
`
	records, err := ParseTable(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// header columns are trimmed
	if got := records[0].field("Country", ""); got != "Germany" {
		t.Errorf(`records[0]["Country"] = %q, want Germany`, got)
	}
	// quoted field keeps its embedded comma
	if got := records[1].field("Company Name", ""); got != "Smith, Jones & Co" {
		t.Errorf(`records[1]["Company Name"] = %q`, got)
	}
}

func TestParseTableDropsMalformedRows(t *testing.T) {
	src := `Name,Country
Acme,Germany
lonely
Beta,China
`
	records, err := ParseTable(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (mismatched row dropped)", len(records))
	}
}

func TestParseTableEmpty(t *testing.T) {
	if _, err := ParseTable(strings.NewReader("")); err == nil {
		t.Error("empty input should fail, no header row")
	}
}

func TestRecordFields(t *testing.T) {
	rec := Record{
		"Name":   "  Acme  ",
		"Size":   "1,500",
		"Year":   "2021",
		"Lead":   "Yes",
		"Silent": "",
	}
	if got := rec.field("Name", "x"); got != "Acme" {
		t.Errorf("field trimming = %q", got)
	}
	if got := rec.field("Silent", "fallback"); got != "fallback" {
		t.Errorf("empty field default = %q", got)
	}
	if v, ok := rec.numericField("Size"); !ok || v != 1500 {
		t.Errorf("numericField = %v, %v; want 1500, true", v, ok)
	}
	if _, ok := rec.numericField("Name"); ok {
		t.Error("numericField should reject non-numeric text")
	}
	if got := rec.intField("Year", 0); got != 2021 {
		t.Errorf("intField = %d", got)
	}
	if !rec.boolField("Lead") || rec.boolField("Silent") {
		t.Error("boolField mismatch")
	}
}

func TestExportDealSummariesRoundTrip(t *testing.T) {
	rows := []DealSummaryRow{
		{
			DealID:         "d-1",
			Company:        "Smith, Jones & Co",
			Round:          "Series A",
			TotalSize:      USD(25e6),
			AllInvestors:   []string{"Alpha Capital", "Beta Partners"},
			TotalInvestors: 2,
			Date:           NewDate(2024, time.May, 2),
			Stage:          "Completed",
			Industry:       "Fintech",
			Country:        "United Kingdom",
			Currency:       "USD",
		},
		{
			DealID: "d-2",
			Round:  "Seed",
			// TotalSize left unknown on purpose
		},
	}

	var sb strings.Builder
	if err := ExportDealSummaries(&sb, rows); err != nil {
		t.Fatal(err)
	}

	records, err := ParseTable(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("exported text does not parse back: %v", err)
	}
	if len(records) != len(rows) {
		t.Fatalf("round trip lost rows: %d != %d", len(records), len(rows))
	}
	if got := records[0].field("Company", ""); got != "Smith, Jones & Co" {
		t.Errorf("company with comma = %q", got)
	}
	if got := records[0].field("Investors", ""); got != "Alpha Capital; Beta Partners" {
		t.Errorf("investor list = %q", got)
	}
	if got := records[0].field("Total Size (USD)", ""); got != "25000000" {
		t.Errorf("total size = %q", got)
	}
	// unknown amount exports as an empty field
	if got := records[1].field("Total Size (USD)", "absent"); got != "absent" {
		t.Errorf("unknown size exported as %q, want empty", got)
	}
}

func TestExportPositions(t *testing.T) {
	rows := []PositionRow{
		{
			PositionID:  "p-1",
			Investor:    "Alpha Capital",
			Company:     "Acme Robotics",
			Size:        USD(5e6),
			DealTotal:   USD(20e6),
			Round:       "Series B",
			Date:        NewDate(2025, time.January, 10),
			Lead:        true,
			EquityStake: 12.5,
			Fund:        "Alpha Growth Fund II",
		},
	}
	var sb strings.Builder
	if err := ExportPositions(&sb, rows); err != nil {
		t.Fatal(err)
	}
	records, err := ParseTable(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if got := rec.field("Lead", ""); got != "true" {
		t.Errorf("lead = %q", got)
	}
	if got := rec.field("Equity Stake (%)", ""); got != "12.50" {
		t.Errorf("equity stake = %q", got)
	}
	if got := rec.field("Date", ""); got != "2025-01-10" {
		t.Errorf("date = %q", got)
	}
}
