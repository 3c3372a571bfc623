package normalize

import "testing"

func TestDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"7/4/26", "2026-07-04"},
		{"12/31/2026", "2026-12-31"},
		{"6/15/26", "2026-06-15"},
		{"not a date", "not a date"},
		{"2026-07-04", "2026-07-04"},
		{"7/4", "7/4"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Date(tt.input); got != tt.expected {
				t.Errorf("Date(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
