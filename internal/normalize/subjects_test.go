package normalize

import (
	"reflect"
	"testing"
)

func TestSubjects(t *testing.T) {
	tests := []struct {
		name     string
		progName string
		desc     string
		expected []string
	}{
		{
			name:     "robotics and coding in taxonomy order",
			progName: "Robotics and Coding Camp",
			expected: []string{"Technology", "Coding"},
		},
		{
			name:     "description contributes matches",
			progName: "Summer Fun",
			desc:     "Mornings of painting and pottery, afternoons of swimming.",
			expected: []string{"Arts", "Swim"},
		},
		{
			name:     "label appears once despite several keywords",
			progName: "Hiking, camping and canoe trips",
			expected: []string{"Outdoor Education"},
		},
		{
			name:     "no matches",
			progName: "General Camp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subjects(tt.progName, tt.desc)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Subjects(%q, %q) = %v, expected %v", tt.progName, tt.desc, got, tt.expected)
			}
		})
	}
}

func TestHasScholarship(t *testing.T) {
	tests := []struct {
		name     string
		cost     string
		notes    string
		expected bool
	}{
		{"scholarship in cost text", "$300/week, scholarships available", "", true},
		{"financial aid in notes", "$250", "Financial Aid offered on request", true},
		{"sliding scale", "sliding scale pricing", "", true},
		{"free counts", "Free for residents", "", true},
		{"nothing", "$400 per session", "bring a lunch", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasScholarship(tt.cost, tt.notes); got != tt.expected {
				t.Errorf("HasScholarship(%q, %q) = %v, expected %v", tt.cost, tt.notes, got, tt.expected)
			}
		})
	}
}
