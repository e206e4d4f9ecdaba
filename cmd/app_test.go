package cmd

import (
	"reflect"
	"testing"

	"github.com/etnz/dealbook"
)

func TestFilterFlag(t *testing.T) {
	var f filterFlag
	for _, arg := range []string{"industry=Tech", "leadInvestor=true", "totalInvestors=3"} {
		if err := f.Set(arg); err != nil {
			t.Fatalf("Set(%q): %v", arg, err)
		}
	}
	want := dealbook.Filters{
		"industry":       "Tech",
		"leadInvestor":   true,
		"totalInvestors": 3,
	}
	if !reflect.DeepEqual(f.filters, want) {
		t.Errorf("filters = %#v, want %#v", f.filters, want)
	}
}

func TestFilterFlagRejectsBareKey(t *testing.T) {
	var f filterFlag
	if err := f.Set("industry"); err == nil {
		t.Error("a value without '=' should be rejected")
	}
}

func TestParseFilterValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"false", false},
		{"3", 3},
		{"-1", -1},
		{"Tech", "Tech"},
		{"3.5", "3.5"},
		{"Series A", "Series A"},
	}
	for _, tc := range tests {
		if got := parseFilterValue(tc.in); got != tc.want {
			t.Errorf("parseFilterValue(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}
