package dealbook

import (
	"reflect"
	"strings"
)

// Filters selects view rows by field. Semantics per key:
//   - a []string row value passes when any element case-insensitively
//     contains the filter substring;
//   - a string row value passes by case-insensitive substring containment;
//   - any other row value requires exact equality;
//   - a key absent from the row fails the whole predicate.
//
// Keys combine with logical AND. A nil Filters matches everything.
type Filters map[string]any

// Match applies the filters to a row's field map.
func (f Filters) Match(fields map[string]any) bool {
	for key, want := range f {
		got, ok := fields[key]
		if !ok {
			return false
		}
		switch v := got.(type) {
		case []string:
			sub, ok := want.(string)
			if !ok {
				return false
			}
			if !slicesContainsFold(v, sub) {
				return false
			}
		case string:
			sub, ok := want.(string)
			if !ok {
				return false
			}
			if !containsFold(v, sub) {
				return false
			}
		default:
			if !reflect.DeepEqual(got, want) {
				return false
			}
		}
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func slicesContainsFold(elems []string, sub string) bool {
	for _, e := range elems {
		if containsFold(e, sub) {
			return true
		}
	}
	return false
}
