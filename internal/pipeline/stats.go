package pipeline

import (
	"fmt"
	"io"

	"github.com/vtcampfinder/campdata/internal/gradeage"
)

// Stats accumulates the change counts of one orchestrator run. It is created
// by Run and discarded afterwards; passes only ever see the run's own value.
type Stats struct {
	RowsProcessed int

	// Grade/age backfill, one counter per inference direction.
	GradeAge gradeage.Changes

	// Time normalization.
	StartTimesChanged int
	EndTimesChanged   int

	// Location enrichment.
	LocationsConsidered    int
	LocationsUpdated       int
	StreetRowsStandardized int

	// Description fetching.
	DescriptionsAttempted int
	DescriptionsFetched   int
	DescriptionsFailed    int
}

// WriteReport prints the aggregate counts of a run in the order the passes
// ran. Sections for passes that never ran (all-zero) are skipped.
func (s *Stats) WriteReport(w io.Writer) {
	if s.GradeAge.Total() > 0 {
		fmt.Fprintln(w, "Grade/age backfill:")
		fmt.Fprintf(w, "  start grade from start age: %d\n", s.GradeAge.StartGradeFromStartAge)
		fmt.Fprintf(w, "  end grade from end age:     %d\n", s.GradeAge.EndGradeFromEndAge)
		fmt.Fprintf(w, "  start age from start grade: %d\n", s.GradeAge.StartAgeFromStartGrade)
		fmt.Fprintf(w, "  end age from end grade:     %d\n", s.GradeAge.EndAgeFromEndGrade)
		fmt.Fprintf(w, "  total fill operations:      %d\n", s.GradeAge.Total())
	}
	if s.StartTimesChanged > 0 || s.EndTimesChanged > 0 {
		fmt.Fprintf(w, "Start times updated: %d\n", s.StartTimesChanged)
		fmt.Fprintf(w, "End times updated:   %d\n", s.EndTimesChanged)
	}
	if s.LocationsConsidered > 0 || s.StreetRowsStandardized > 0 {
		fmt.Fprintf(w, "Locations considered:      %d\n", s.LocationsConsidered)
		fmt.Fprintf(w, "Locations updated:         %d\n", s.LocationsUpdated)
		fmt.Fprintf(w, "Street rows standardized:  %d\n", s.StreetRowsStandardized)
	}
	if s.DescriptionsAttempted > 0 {
		fmt.Fprintf(w, "Descriptions fetched: %d\n", s.DescriptionsFetched)
		fmt.Fprintf(w, "No description found: %d\n", s.DescriptionsFailed)
	}
	fmt.Fprintf(w, "Rows processed: %d\n", s.RowsProcessed)
}
