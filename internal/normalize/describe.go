package normalize

import (
	"fmt"
	"strings"
)

// FallbackDescription builds a plain-English program description from
// structured fields, for rows where the source has no description at all.
// Sentences with no applicable data are omitted entirely.
func FallbackDescription(org, name, city string, subjects []string, startGrade, endGrade string, cost int, period string) string {
	campLabel := "this summer program"
	if name != "" && name != org {
		campLabel = name
	}

	location := "in Vermont"
	if city != "" {
		location = fmt.Sprintf("in %s, VT", city)
	}

	parts := []string{fmt.Sprintf("%s offers %s %s.", org, campLabel, location)}

	if startGrade != "" && endGrade != "" {
		if startGrade == endGrade {
			parts = append(parts, fmt.Sprintf("Open to students in grade %s.", startGrade))
		} else {
			parts = append(parts, fmt.Sprintf("Open to students in grades %s–%s.", startGrade, endGrade))
		}
	}

	if len(subjects) > 0 {
		shown := subjects
		if len(shown) > 4 {
			shown = shown[:4]
		}
		parts = append(parts, fmt.Sprintf("Activities include %s.", strings.Join(shown, ", ")))
	}

	if cost > 0 {
		parts = append(parts, fmt.Sprintf("Cost: $%s per %s.", groupThousands(cost), period))
	}

	return strings.Join(parts, " ")
}

// Hours renders the display hours string from the normalized start and end
// times, degrading to a one-sided phrase when only one is known.
func Hours(startTime, endTime string) string {
	s := strings.TrimSpace(startTime)
	e := strings.TrimSpace(endTime)
	switch {
	case s != "" && e != "":
		return fmt.Sprintf("%s – %s", s, e)
	case s != "":
		return "Starts " + s
	case e != "":
		return "Until " + e
	}
	return ""
}

// groupThousands formats a non-negative integer with comma separators.
func groupThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
