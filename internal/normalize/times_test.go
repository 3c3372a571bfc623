package normalize

import "testing"

func TestStartTime(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"9", "09:00 AM", true},
		{"09:00", "09:00 AM", true},
		{"900", "09:00 AM", true},
		{"8:30", "08:30 AM", true},
		// Start times are always morning; a PM marker is ignored.
		{"1:00 PM", "01:00 AM", true},
		{"13:00", "01:00 AM", true},
		{"0:15", "12:15 AM", true},
		{"9:75", "9:75", false},
		{"24:00", "24:00", false},
		{"varies", "varies", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := StartTime(tt.input)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("StartTime(%q) = (%q, %v), expected (%q, %v)", tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestEndTime(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"13:00", "01:00 PM", true},
		// Unlabeled end times default to afternoon.
		{"9", "09:00 PM", true},
		{"3:30", "03:30 PM", true},
		{"0:30", "12:30 AM", true},
		{"12:00", "12:00 PM", true},
		{"4:15pm", "04:15 PM", true},
		{"9:00 am", "09:00 AM", true},
		// A 24-hour value wins over a contradictory marker.
		{"15:00 am", "03:00 PM", true},
		{"0:45 pm", "12:45 PM", true},
		// No separator between hour and minute: not a recognized shape.
		{"1530", "1530", false},
		{"9:75", "9:75", false},
		{"noon", "noon", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := EndTime(tt.input)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("EndTime(%q) = (%q, %v), expected (%q, %v)", tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestNormalizedTimesAreStable(t *testing.T) {
	for _, input := range []string{"9", "09:00", "1:30pm", "815"} {
		first, ok := EndTime(input)
		if !ok {
			t.Fatalf("EndTime(%q) failed to normalize", input)
		}
		second, ok := EndTime(first)
		if !ok || second != first {
			t.Errorf("EndTime(%q) not stable: %q then %q", input, first, second)
		}
	}
}
