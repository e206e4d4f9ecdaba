package dealbook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-06-30", NewDate(2025, time.June, 30), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{" 2025-06-30 ", NewDate(2025, time.June, 30), false},
		{"", Date{}, false},
		{"30/06/2025", Date{}, true},
		{"not a date", Date{}, true},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDateZeroValue(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if got := d.String(); got != "" {
		t.Errorf("zero Date String() = %q, want empty", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.March, 15)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2024-03-15"` {
		t.Errorf("MarshalJSON = %s, want %q", b, `"2024-03-15"`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
