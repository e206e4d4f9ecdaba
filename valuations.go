package dealbook

import (
	"fmt"
	"log"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "valuations": [
	        {
	            "company": "Acme",
	            "pe": 12.1,
	            "pb": 2.4,
	            "ps": 3.1,
	            "evEbitda": 9.8,
	            "date": "2025-06-30"
	        }
	    ]
	}
*/
// importValuations scrapes per-company valuation ratios from a JSON endpoint
// and stores them against the companies imported earlier in the same run.
// Rows naming a company the store does not hold are skipped.
func importValuations(client *http.Client, addr string, s *Store) (int, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return 0, fmt.Errorf("error in wget %q: %w", addr, err)
	}
	path := "$.valuations[*]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing valuation payload: %q %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of
	// answers or a single answer, normalize to a list.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}

	count := 0
	for _, item := range jlist {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, _ := obj["company"].(string)
		companyID, ok := s.CompanyIDByName(name)
		if !ok {
			log.Printf("valuation for unknown company %q skipped", name)
			continue
		}
		day, _ := obj["date"].(string)
		asOf, err := ParseDate(day)
		if err != nil {
			log.Printf("valuation for %q has invalid date %q, keeping it undated", name, day)
		}
		s.AddValuation(Valuation{
			CompanyID:  companyID,
			PERatio:    jnum(obj["pe"]),
			PBRatio:    jnum(obj["pb"]),
			PSRatio:    jnum(obj["ps"]),
			EVToEBITDA: jnum(obj["evEbitda"]),
			AsOf:       asOf,
		})
		count++
	}
	return count, nil
}

func jnum(v any) float64 {
	f, _ := v.(float64)
	return f
}
