// Package renderer renders dealbook view rows and import statistics as
// markdown, ready for terminal display.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/dealbook"
)

//go:embed *.md
var templates embed.FS

// DealSummaries renders the deal-centric view as a markdown table.
func DealSummaries(rows []dealbook.DealSummaryRow) string {
	return renderTemplate("dealSummary", "deal_summary.md", rows)
}

// Positions renders the position-centric view as a markdown table.
func Positions(rows []dealbook.PositionRow) string {
	return renderTemplate("positions", "positions.md", rows)
}

// ImportStats renders the outcome of an ingestion run.
func ImportStats(stats dealbook.ImportStats) string {
	return renderTemplate("importStats", "import_stats.md", stats)
}

// renderTemplate is a generic utility to render one embedded template.
func renderTemplate(templateName, file string, data any) string {
	content, err := templates.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
