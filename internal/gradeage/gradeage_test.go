package gradeage

import (
	"testing"

	"github.com/vtcampfinder/campdata/internal/table"
)

// refTable builds a reference table covering K through 3.
func refTable() *Table {
	ref := &table.Table{
		Header: []string{"Grade", "Start Age", "End Age"},
		Records: []table.Record{
			{"Grade": "K", "Start Age": "5", "End Age": "6"},
			{"Grade": "1", "Start Age": "6", "End Age": "7"},
			{"Grade": "2", "Start Age": "7", "End Age": "8"},
			{"Grade": "3", "Start Age": "8", "End Age": "9"},
		},
	}
	return NewTable(ref)
}

func TestNewTableUppercasesGradeKeys(t *testing.T) {
	ref := &table.Table{
		Header: []string{"Grade", "Start Age", "End Age"},
		Records: []table.Record{
			{"Grade": "k", "Start Age": "5", "End Age": "6"},
		},
	}
	tbl := NewTable(ref)

	if got := tbl.GradeToStartAge["K"]; got != "5" {
		t.Errorf("expected grade key 'K' to map to start age 5, got %q", got)
	}
	if got := tbl.StartAgeToGrade["5"]; got != "K" {
		t.Errorf("expected age 5 to map to grade 'K', got %q", got)
	}
}

func TestInferDirections(t *testing.T) {
	tbl := refTable()

	tests := []struct {
		name     string
		in       Fields
		expected Fields
		total    int
	}{
		{
			name:     "grade from age both ends",
			in:       Fields{StartAge: "5", EndAge: "8"},
			expected: Fields{StartAge: "5", EndAge: "8", StartGrade: "K", EndGrade: "2"},
			total:    2,
		},
		{
			name:     "age from grade both ends",
			in:       Fields{StartGrade: "K", EndGrade: "3"},
			expected: Fields{StartAge: "5", EndAge: "9", StartGrade: "K", EndGrade: "3"},
			total:    2,
		},
		{
			name:     "lowercase grade still resolves age",
			in:       Fields{StartGrade: "k"},
			expected: Fields{StartAge: "5", StartGrade: "k"},
			total:    1,
		},
		{
			name:     "existing values never overwritten",
			in:       Fields{StartAge: "5", StartGrade: "1"},
			expected: Fields{StartAge: "5", StartGrade: "1"},
			total:    0,
		},
		{
			name:     "unknown keys produce no change",
			in:       Fields{StartAge: "99", EndGrade: "PRE-K"},
			expected: Fields{StartAge: "99", EndGrade: "PRE-K"},
			total:    0,
		},
		{
			name:  "grade filled from age then feeds nothing else",
			in:    Fields{StartAge: "6", EndAge: "7"},
			total: 2,
			expected: Fields{
				StartAge: "6", EndAge: "7",
				StartGrade: "1", EndGrade: "1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changes := tbl.Infer(tt.in)
			if got != tt.expected {
				t.Errorf("Infer(%+v) = %+v, expected %+v", tt.in, got, tt.expected)
			}
			if changes.Total() != tt.total {
				t.Errorf("Infer(%+v) made %d changes, expected %d", tt.in, changes.Total(), tt.total)
			}
		})
	}
}

func TestInferIsIdempotent(t *testing.T) {
	tbl := refTable()

	once, _ := tbl.Infer(Fields{StartAge: "5", EndGrade: "3"})
	twice, changes := tbl.Infer(once)

	if twice != once {
		t.Errorf("second Infer changed fields: %+v vs %+v", twice, once)
	}
	if changes.Total() != 0 {
		t.Errorf("second Infer reported %d changes, expected 0", changes.Total())
	}
}

func TestGradeAgeRoundTrip(t *testing.T) {
	tbl := refTable()

	// For every grade in the table, grade -> start age -> grade returns the
	// original grade.
	for grade, age := range tbl.GradeToStartAge {
		back, ok := tbl.StartAgeToGrade[age]
		if !ok {
			t.Errorf("start age %q has no grade mapping", age)
			continue
		}
		if back != grade {
			t.Errorf("round trip %s -> %s -> %s", grade, age, back)
		}
	}
}
