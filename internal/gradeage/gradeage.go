package gradeage

import (
	"fmt"
	"strings"

	"github.com/vtcampfinder/campdata/internal/table"
)

// Reference column names of the age-to-grade CSV.
const (
	fieldGrade    = "Grade"
	fieldStartAge = "Start Age"
	fieldEndAge   = "End Age"
)

// Table holds the four directional lookups. All keys and values are the
// literal strings from the reference table; grade keys are uppercased, so
// "k" and "K" both denote kindergarten.
type Table struct {
	StartAgeToGrade map[string]string
	EndAgeToGrade   map[string]string
	GradeToStartAge map[string]string
	GradeToEndAge   map[string]string
}

// LoadTable builds a Table from the reference CSV at path.
func LoadTable(path string) (*Table, error) {
	ref, err := table.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading age/grade reference: %w", err)
	}
	return NewTable(ref), nil
}

// NewTable builds the four lookups from an already-loaded reference table.
// Rows with a blank grade contribute nothing.
func NewTable(ref *table.Table) *Table {
	t := &Table{
		StartAgeToGrade: make(map[string]string),
		EndAgeToGrade:   make(map[string]string),
		GradeToStartAge: make(map[string]string),
		GradeToEndAge:   make(map[string]string),
	}
	for _, rec := range ref.Records {
		grade := strings.ToUpper(rec.Get(fieldGrade))
		startAge := rec.Get(fieldStartAge)
		endAge := rec.Get(fieldEndAge)

		if startAge != "" && grade != "" {
			t.StartAgeToGrade[startAge] = grade
			t.GradeToStartAge[grade] = startAge
		}
		if endAge != "" && grade != "" {
			t.EndAgeToGrade[endAge] = grade
			t.GradeToEndAge[grade] = endAge
		}
	}
	return t
}

// Changes counts fills made by one Infer call, one counter per direction.
type Changes struct {
	StartGradeFromStartAge int
	EndGradeFromEndAge     int
	StartAgeFromStartGrade int
	EndAgeFromEndGrade     int
}

// Total returns the number of fields filled.
func (c Changes) Total() int {
	return c.StartGradeFromStartAge + c.EndGradeFromEndAge +
		c.StartAgeFromStartGrade + c.EndAgeFromEndGrade
}

// Add accumulates another Changes value.
func (c *Changes) Add(other Changes) {
	c.StartGradeFromStartAge += other.StartGradeFromStartAge
	c.EndGradeFromEndAge += other.EndGradeFromEndAge
	c.StartAgeFromStartGrade += other.StartAgeFromStartGrade
	c.EndAgeFromEndGrade += other.EndAgeFromEndGrade
}

// Fields is the quadruple Infer operates on. All values are trimmed strings;
// "" means absent.
type Fields struct {
	StartAge   string
	EndAge     string
	StartGrade string
	EndGrade   string
}

// Infer fills blank members of f from their counterparts. Grades are filled
// from ages first, then ages from the (possibly just-filled) grades. Unknown
// keys produce no change; non-blank members are never overwritten.
func (t *Table) Infer(f Fields) (Fields, Changes) {
	var ch Changes

	if f.StartGrade == "" {
		if grade, ok := t.StartAgeToGrade[f.StartAge]; ok && f.StartAge != "" {
			f.StartGrade = grade
			ch.StartGradeFromStartAge++
		}
	}
	if f.EndGrade == "" {
		if grade, ok := t.EndAgeToGrade[f.EndAge]; ok && f.EndAge != "" {
			f.EndGrade = grade
			ch.EndGradeFromEndAge++
		}
	}
	if f.StartAge == "" {
		if age, ok := t.GradeToStartAge[strings.ToUpper(f.StartGrade)]; ok && f.StartGrade != "" {
			f.StartAge = age
			ch.StartAgeFromStartGrade++
		}
	}
	if f.EndAge == "" {
		if age, ok := t.GradeToEndAge[strings.ToUpper(f.EndGrade)]; ok && f.EndGrade != "" {
			f.EndAge = age
			ch.EndAgeFromEndGrade++
		}
	}
	return f, ch
}
