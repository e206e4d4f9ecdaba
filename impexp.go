package dealbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// this file contains the tabular import/export format: comma-separated,
// double-quote-escaped text with a header row whose column names are matched
// literally by the row transforms.

// Record is one parsed source row, keyed by the header's trimmed column names.
type Record map[string]string

// field returns the trimmed value at key, or def when the column is absent
// or empty.
func (r Record) field(key, def string) string {
	v := strings.TrimSpace(r[key])
	if v == "" {
		return def
	}
	return v
}

func (r Record) boolField(key string) bool {
	switch strings.ToLower(strings.TrimSpace(r[key])) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}

// numericField coerces a numeric-looking column, tolerating thousands
// separators. The boolean reports whether a value was present and parseable.
func (r Record) numericField(key string) (float64, bool) {
	v := strings.TrimSpace(r[key])
	if v == "" {
		return 0, false
	}
	v = strings.ReplaceAll(v, ",", "")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (r Record) intField(key string, def int) int {
	if f, ok := r.numericField(key); ok {
		return int(f)
	}
	return def
}

// ParseTable splits delimited text into records. The first line is the
// header; its trimmed values become field names. Rows whose field count does
// not match the header are dropped without surfacing a row-level error.
func ParseTable(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	lines, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse table: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty table: missing header row")
	}
	header := lines[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	records := make([]Record, 0, len(lines)-1)
	dropped := 0
	for _, line := range lines[1:] {
		if len(line) != len(header) {
			dropped++
			continue
		}
		rec := make(Record, len(header))
		for i, name := range header {
			rec[name] = line[i]
		}
		records = append(records, rec)
	}
	if dropped > 0 {
		log.Printf("dropped %d malformed rows (field count mismatch)", dropped)
	}
	return records, nil
}

var dealSummaryColumns = []string{
	"Deal ID", "Company", "Company (Chinese)", "Round", "Total Size (USD)",
	"Investors", "Total Investors", "Date", "Stage", "Industry", "Country",
	"Currency",
}

// ExportDealSummaries re-serializes the deal-summary view as delimited text
// with a fixed column subset. Unknown sizes export as empty fields.
func ExportDealSummaries(w io.Writer, rows []DealSummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(dealSummaryColumns); err != nil {
		return fmt.Errorf("cannot write deal summary header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.DealID,
			r.Company,
			r.CompanyZH,
			r.Round,
			r.TotalSize.Amount(),
			strings.Join(r.AllInvestors, "; "),
			strconv.Itoa(r.TotalInvestors),
			r.Date.String(),
			r.Stage,
			r.Industry,
			r.Country,
			r.Currency,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("cannot write deal summary row %q: %w", r.DealID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

var positionColumns = []string{
	"Investor", "Company", "Size (USD)", "Deal Total (USD)", "Round", "Date",
	"Stage", "Industry", "Country", "Lead", "Equity Stake (%)", "Fund",
}

// ExportPositions re-serializes the investment-position view as delimited
// text with a fixed column subset.
func ExportPositions(w io.Writer, rows []PositionRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(positionColumns); err != nil {
		return fmt.Errorf("cannot write position header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Investor,
			r.Company,
			r.Size.Amount(),
			r.DealTotal.Amount(),
			r.Round,
			r.Date.String(),
			r.Stage,
			r.Industry,
			r.Country,
			strconv.FormatBool(r.Lead),
			strconv.FormatFloat(r.EquityStake, 'f', 2, 64),
			r.Fund,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("cannot write position row %q: %w", r.PositionID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
