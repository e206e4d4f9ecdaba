package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/dealbook"
)

func TestDealSummaries(t *testing.T) {
	rows := []dealbook.DealSummaryRow{
		{
			Company:        "Acme Robotics",
			Round:          "Series A",
			TotalSize:      dealbook.USD(25000000),
			AllInvestors:   []string{"Alpha Capital", "Beta Partners"},
			TotalInvestors: 2,
			Date:           dealbook.NewDate(2024, time.May, 2),
			Stage:          "Completed",
			Industry:       "Advanced Manufacturing",
			Country:        "Germany",
		},
		{
			Company: "Stealth Bio",
			Round:   "Seed",
			// TotalSize unknown
		},
	}
	got := Renders(t, DealSummaries(rows))

	for _, want := range []string{
		"# Deal Summary",
		"| Acme Robotics | Series A | $25,000,000.00 | Alpha Capital, Beta Partners | 2 | 2024-05-02 | Completed | Advanced Manufacturing | Germany |",
		"| Stealth Bio | Seed | - |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPositions(t *testing.T) {
	rows := []dealbook.PositionRow{
		{
			Investor:    "Alpha Capital",
			Company:     "Acme Robotics",
			Size:        dealbook.USD(5000000),
			DealTotal:   dealbook.USD(25000000),
			Round:       "Series A",
			Date:        dealbook.NewDate(2024, time.May, 2),
			Stage:       "Completed",
			Lead:        true,
			EquityStake: 12.5,
			Fund:        "Alpha Growth Fund II",
		},
	}
	got := Renders(t, Positions(rows))

	for _, want := range []string{
		"# Investment Positions",
		"| yes | 12.5% | Alpha Growth Fund II |",
		"$5,000,000.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestImportStats(t *testing.T) {
	got := Renders(t, ImportStats(dealbook.ImportStats{
		Companies: 800, Investors: 400, Funds: 150, Deals: 1600, Positions: 4000,
		Synthetic: true,
	}))
	if !strings.Contains(got, "generated synthetically") {
		t.Errorf("synthetic notice missing:\n%s", got)
	}
	if !strings.Contains(got, "| 800 | 400 | 150 | 1600 | 4000 | 0 |") {
		t.Errorf("counts row missing:\n%s", got)
	}

	got = Renders(t, ImportStats(dealbook.ImportStats{Companies: 3}))
	if strings.Contains(got, "generated synthetically") {
		t.Errorf("synthetic notice on a real import:\n%s", got)
	}
}

// Renders fails the test when the renderer surfaced a template error in its
// output, and returns the output for content checks.
func Renders(t *testing.T, out string) string {
	t.Helper()
	if strings.Contains(out, "error reading template") ||
		strings.Contains(out, "error parsing template") ||
		strings.Contains(out, "error executing template") {
		t.Fatalf("render failed: %s", out)
	}
	return out
}
