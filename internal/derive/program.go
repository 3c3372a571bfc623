package derive

import (
	"strconv"
	"strings"

	"github.com/vtcampfinder/campdata/internal/normalize"
	"github.com/vtcampfinder/campdata/internal/table"
)

// Program is one derived directory entry. Field names and order match what
// the front end expects; several fields are fixed placeholders the source
// data does not track yet.
type Program struct {
	ID                    int      `json:"id"`
	Name                  string   `json:"name"`
	Type                  string   `json:"type"`
	Organization          string   `json:"organization"`
	Address               string   `json:"address"`
	City                  string   `json:"city"`
	State                 string   `json:"state"`
	Zip                   string   `json:"zip"`
	Phone                 string   `json:"phone"`
	Email                 string   `json:"email"`
	Website               string   `json:"website"`
	GradesMin             string   `json:"gradesMin"`
	GradesMax             string   `json:"gradesMax"`
	AgeMin                *int     `json:"ageMin"`
	AgeMax                *int     `json:"ageMax"`
	Cost                  int      `json:"cost"`
	CostPeriod            string   `json:"costPeriod"`
	ScholarshipAvailable  bool     `json:"scholarshipAvailable"`
	Hours                 string   `json:"hours"`
	DaysOffered           string   `json:"daysOffered"`
	SessionType           string   `json:"sessionType"`
	Subjects              []string `json:"subjects"`
	Description           string   `json:"description"`
	IndoorOutdoor         string   `json:"indoorOutdoor"`
	Transportation        bool     `json:"transportation"`
	MealsProvided         bool     `json:"mealsProvided"`
	AcceptingRegistration bool     `json:"acceptingRegistration"`
	StartDate             string   `json:"startDate"`
	EndDate               string   `json:"endDate"`
}

// Convert builds the derived program list from the camp table. One program
// is produced per row with a non-blank organization or camp name; everything
// else is dropped from the derived set only.
func Convert(t *table.Table) []Program {
	programs := make([]Program, 0, len(t.Records))
	uid := 1

	for _, rec := range t.Records {
		org := rec.Get(table.FieldOrganization)
		name := rec.Get(table.FieldCampName)
		if name == "" {
			name = org
		}
		if org == "" && name == "" {
			continue
		}

		desc := rec.Get(table.FieldDescription)
		city := rec.Get(table.FieldCity)
		costRaw := rec.Get(table.FieldCost)
		notes := rec.Get(table.FieldNotes)

		startGrade := normalize.Grade(rec.Get(table.FieldStartGrade))
		endGrade := normalize.Grade(rec.Get(table.FieldEndGrade))
		if startGrade == "" {
			startGrade = normalize.GradeFromAge(rec.Get(table.FieldStartAge), true)
		}
		if endGrade == "" {
			endGrade = normalize.GradeFromAge(rec.Get(table.FieldEndAge), false)
		}

		cost, period, costOK := normalize.ParseCost(costRaw)
		if !costOK {
			cost, period = 0, normalize.PeriodSession
		}

		subjects := normalize.Subjects(name, desc)
		if desc == "" {
			desc = normalize.FallbackDescription(org, name, city, subjects, startGrade, endGrade, cost, period)
		}
		if subjects == nil {
			subjects = []string{}
		}

		programs = append(programs, Program{
			ID:                    uid,
			Name:                  name,
			Type:                  programType(rec.Get(table.FieldPreAfterCare)),
			Organization:          org,
			Address:               rec.Get(table.FieldLocation),
			City:                  city,
			State:                 "VT",
			Website:               rec.Get(table.FieldWebpage),
			GradesMin:             startGrade,
			GradesMax:             endGrade,
			AgeMin:                parseAge(rec.Get(table.FieldStartAge)),
			AgeMax:                parseAge(rec.Get(table.FieldEndAge)),
			Cost:                  cost,
			CostPeriod:            period,
			ScholarshipAvailable:  normalize.HasScholarship(costRaw, notes),
			Hours:                 normalize.Hours(rec.Get(table.FieldStartTime), rec.Get(table.FieldEndTime)),
			DaysOffered:           "Mon–Fri",
			SessionType:           "Summer",
			Subjects:              subjects,
			Description:           desc,
			IndoorOutdoor:         "Both",
			AcceptingRegistration: true,
			StartDate:             normalize.Date(rec.Get(table.FieldStartDate)),
			EndDate:               normalize.Date(rec.Get(table.FieldEndDate)),
		})
		uid++
	}
	return programs
}

// programType distinguishes plain day camps from programs that also offer
// pre/after care.
func programType(preAfterCare string) string {
	switch strings.ToLower(preAfterCare) {
	case "yes", "y", "true":
		return "Both"
	}
	return "Summer Camp"
}

func parseAge(raw string) *int {
	age, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &age
}
