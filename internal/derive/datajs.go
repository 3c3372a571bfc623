package derive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteDataJS writes the derived programs as the front end's data file: a
// single const assignment holding the full program array.
func WriteDataJS(path string, programs []Program) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(programs); err != nil {
		return fmt.Errorf("encoding programs: %w", err)
	}

	output := "const programsData = " + string(bytes.TrimRight(buf.Bytes(), "\n")) + ";\n"
	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return fmt.Errorf("writing data file: %w", err)
	}
	return nil
}

// Summary counts how densely populated the derived set is, for the
// conversion report.
type Summary struct {
	Total        int
	WithCity     int
	WithGrades   int
	WithCost     int
	WithHours    int
	WithSubjects int
	WithDates    int
}

// Summarize tallies field coverage across the derived programs.
func Summarize(programs []Program) Summary {
	s := Summary{Total: len(programs)}
	for _, p := range programs {
		if p.City != "" {
			s.WithCity++
		}
		if p.GradesMin != "" && p.GradesMax != "" {
			s.WithGrades++
		}
		if p.Cost > 0 {
			s.WithCost++
		}
		if p.Hours != "" {
			s.WithHours++
		}
		if len(p.Subjects) > 0 {
			s.WithSubjects++
		}
		if p.StartDate != "" {
			s.WithDates++
		}
	}
	return s
}

// WriteReport prints the coverage summary.
func (s Summary) WriteReport(w io.Writer) {
	fmt.Fprintf(w, "  city present:    %d/%d\n", s.WithCity, s.Total)
	fmt.Fprintf(w, "  grades present:  %d/%d\n", s.WithGrades, s.Total)
	fmt.Fprintf(w, "  cost > 0:        %d/%d\n", s.WithCost, s.Total)
	fmt.Fprintf(w, "  hours present:   %d/%d\n", s.WithHours, s.Total)
	fmt.Fprintf(w, "  subjects found:  %d/%d\n", s.WithSubjects, s.Total)
	fmt.Fprintf(w, "  dates present:   %d/%d\n", s.WithDates, s.Total)
}
