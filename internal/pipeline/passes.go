package pipeline

import (
	"time"

	"github.com/vtcampfinder/campdata/internal/describe"
	"github.com/vtcampfinder/campdata/internal/geocode"
	"github.com/vtcampfinder/campdata/internal/gradeage"
	"github.com/vtcampfinder/campdata/internal/logger"
	"github.com/vtcampfinder/campdata/internal/normalize"
	"github.com/vtcampfinder/campdata/internal/table"
)

// Checkpointer persists the in-progress table mid-pass so an interrupted run
// loses at most one batch of work.
type Checkpointer func(*table.Table) error

// ProgressFunc reports one processed row of a slow pass.
type ProgressFunc func(n, total int, label, detail string, ok bool)

// Pass is one enrichment transformation over the full record set.
type Pass struct {
	Name string
	Run  func(t *table.Table, s *Stats, checkpoint Checkpointer) error
}

// sleep is a hook for tests; passes use it for inter-request delays.
var sleep = time.Sleep

// BackfillGradeAge fills blank grade fields from known ages and blank age
// fields from known grades, using the reference table.
func BackfillGradeAge(ga *gradeage.Table) Pass {
	return Pass{
		Name: "backfill-grade-age",
		Run: func(t *table.Table, s *Stats, _ Checkpointer) error {
			for _, rec := range t.Records {
				fields := gradeage.Fields{
					StartAge:   rec.Get(table.FieldStartAge),
					EndAge:     rec.Get(table.FieldEndAge),
					StartGrade: rec.Get(table.FieldStartGrade),
					EndGrade:   rec.Get(table.FieldEndGrade),
				}
				updated, changes := ga.Infer(fields)
				if changes.Total() == 0 {
					continue
				}
				if changes.StartGradeFromStartAge > 0 {
					rec.Set(table.FieldStartGrade, updated.StartGrade)
				}
				if changes.EndGradeFromEndAge > 0 {
					rec.Set(table.FieldEndGrade, updated.EndGrade)
				}
				if changes.StartAgeFromStartGrade > 0 {
					rec.Set(table.FieldStartAge, updated.StartAge)
				}
				if changes.EndAgeFromEndGrade > 0 {
					rec.Set(table.FieldEndAge, updated.EndAge)
				}
				s.GradeAge.Add(changes)
			}
			return nil
		},
	}
}

// NormalizeTimes rewrites start and end times into canonical "HH:MM AM|PM"
// form. A value that fails to normalize is left exactly as it was.
func NormalizeTimes() Pass {
	return Pass{
		Name: "normalize-times",
		Run: func(t *table.Table, s *Stats, _ Checkpointer) error {
			for _, rec := range t.Records {
				oldStart := rec[table.FieldStartTime]
				oldEnd := rec[table.FieldEndTime]

				if newStart, ok := normalize.StartTime(oldStart); ok && newStart != oldStart {
					rec.Set(table.FieldStartTime, newStart)
					s.StartTimesChanged++
				}
				if newEnd, ok := normalize.EndTime(oldEnd); ok && newEnd != oldEnd {
					rec.Set(table.FieldEndTime, newEnd)
					s.EndTimesChanged++
				}
			}
			return nil
		},
	}
}

// EnrichLocations replaces vague location text with verified street
// addresses. Rows that already look like a street address are only
// standardized (city/state appended when missing) and never re-geocoded;
// rows with no city, or with neither location nor organization, are skipped.
func EnrichLocations(resolver *geocode.Resolver, progress ProgressFunc) Pass {
	return Pass{
		Name: "enrich-locations",
		Run: func(t *table.Table, s *Stats, _ Checkpointer) error {
			for _, rec := range t.Records {
				location := rec.Get(table.FieldLocation)
				city := rec.Get(table.FieldCity)
				org := rec.Get(table.FieldOrganization)

				if geocode.LooksLikeStreetAddress(location) {
					if standardized, ok := geocode.Standardize(location, city); ok {
						rec.Set(table.FieldLocation, standardized)
						s.StreetRowsStandardized++
						logger.Debug("street address standardized", logger.Fields{
							"organization": org,
							"location":     standardized,
						})
					}
					continue
				}
				if city == "" || (location == "" && org == "") {
					continue
				}

				s.LocationsConsidered++
				address, ok := resolver.Lookup(location, org, city)
				if progress != nil {
					progress(s.LocationsConsidered, 0, org, address, ok)
				}
				if !ok {
					continue
				}
				rec.Set(table.FieldLocation, address)
				s.LocationsUpdated++
				logger.Debug("location updated", logger.Fields{
					"organization": org,
					"address":      address,
				})
			}
			return nil
		},
	}
}

// FetchDescriptions fills blank descriptions from each camp's website. The
// table is checkpointed every checkpointEvery processed rows so an
// interrupted run can resume without refetching everything.
func FetchDescriptions(fetcher *describe.Fetcher, delay time.Duration, checkpointEvery int, progress ProgressFunc) Pass {
	if delay <= 0 {
		delay = describe.DefaultRequestDelay
	}
	if checkpointEvery <= 0 {
		checkpointEvery = 25
	}
	return Pass{
		Name: "fetch-descriptions",
		Run: func(t *table.Table, s *Stats, checkpoint Checkpointer) error {
			var targets []int
			for i, rec := range t.Records {
				if rec.IsBlank(table.FieldDescription) && !rec.IsBlank(table.FieldWebpage) {
					targets = append(targets, i)
				}
			}

			for n, idx := range targets {
				rec := t.Records[idx]
				url := rec.Get(table.FieldWebpage)
				org := rec.Get(table.FieldOrganization)

				s.DescriptionsAttempted++
				desc := fetcher.FetchDescription(url)
				sleep(delay)

				if desc != "" {
					rec.Set(table.FieldDescription, desc)
					s.DescriptionsFetched++
				} else {
					s.DescriptionsFailed++
					logger.Debug("no description found", logger.Fields{
						"organization": org,
						"url":          url,
					})
				}
				if progress != nil {
					progress(n+1, len(targets), org, url, desc != "")
				}

				if (n+1)%checkpointEvery == 0 && checkpoint != nil {
					if err := checkpoint(t); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}
