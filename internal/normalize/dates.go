package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var usDateRe = regexp.MustCompile(`^([0-9]{1,2})/([0-9]{1,2})/([0-9]{2,4})$`)

// Date rewrites M/D/YYYY or M/D/YY as YYYY-MM-DD so dates sort lexically.
// Two-digit years are assumed to be 2000s. Anything else, including an
// empty string, passes through unchanged so unrecognized formats are
// preserved rather than corrupted.
func Date(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	m := usDateRe.FindStringSubmatch(trimmed)
	if m == nil {
		return raw
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		year += 2000
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
