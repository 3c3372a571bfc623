package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Loose time shapes like "9", "09:00", "1:30pm", "900".
var timeRe = regexp.MustCompile(`^\s*([0-9]{1,3})\s*(?::\s*([0-9]{2}))?\s*([AaPp][Mm])?\s*$`)

// coerceHour repairs run-together clock values: an hour of 100 or more is
// divided by 100 when that lands on a real hour, so "900" reads as 9:00.
func coerceHour(hour int) int {
	if hour >= 100 {
		if reduced := hour / 100; reduced <= 23 {
			return reduced
		}
	}
	return hour
}

// to12Hour converts a 24-hour value to 12-hour clock plus meridiem.
func to12Hour(hour24 int) (int, string, bool) {
	switch {
	case hour24 == 0:
		return 12, "AM", true
	case hour24 < 12:
		return hour24, "AM", true
	case hour24 == 12:
		return 12, "PM", true
	case hour24 <= 23:
		return hour24 - 12, "PM", true
	}
	return 0, "", false
}

// StartTime canonicalizes a camp start time to "HH:MM AM". Day camps start in
// the morning, so any meridiem marker in the input is ignored and the result
// is always AM. On any unparseable or out-of-range input the original string
// comes back with ok false.
func StartTime(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw, false
	}
	m := timeRe.FindStringSubmatch(trimmed)
	if m == nil {
		return raw, false
	}

	hour := coerceHour(atoi(m[1]))
	minute := atoi(m[2])
	if minute > 59 || hour > 23 {
		return raw, false
	}

	hour12, _, ok := to12Hour(hour)
	if !ok {
		return raw, false
	}
	return fmt.Sprintf("%02d:%02d AM", hour12, minute), true
}

// EndTime canonicalizes a camp end time to "HH:MM AM|PM". A meridiem marker
// in the input is preserved where it makes sense (a 24-hour value still wins
// over a contradictory marker). Without a marker, afternoon is assumed: 13-23
// convert to PM, 0 is midnight, 12 is noon, and everything else is rendered
// PM directly. Unparseable input comes back unchanged with ok false.
func EndTime(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw, false
	}
	m := timeRe.FindStringSubmatch(trimmed)
	if m == nil {
		return raw, false
	}

	hour := coerceHour(atoi(m[1]))
	minute := atoi(m[2])
	if minute > 59 {
		return raw, false
	}

	if m[3] != "" {
		meridiem := strings.ToUpper(m[3])
		hour12 := hour
		switch {
		case hour == 0:
			hour12 = 12
		case hour >= 1 && hour <= 12:
			// keep as-is
		case hour >= 13 && hour <= 23:
			hour12, meridiem, _ = to12Hour(hour)
		default:
			return raw, false
		}
		return fmt.Sprintf("%02d:%02d %s", hour12, minute, meridiem), true
	}

	if hour > 23 {
		return raw, false
	}
	switch {
	case hour >= 13:
		hour12, meridiem, _ := to12Hour(hour)
		return fmt.Sprintf("%02d:%02d %s", hour12, minute, meridiem), true
	case hour == 0:
		return fmt.Sprintf("12:%02d AM", minute), true
	case hour == 12:
		return fmt.Sprintf("12:%02d PM", minute), true
	default:
		return fmt.Sprintf("%02d:%02d PM", hour, minute), true
	}
}

// atoi parses a digits-only capture group; empty means zero.
func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
