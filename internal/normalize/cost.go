package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// Billing periods recognized in cost text.
const (
	PeriodWeek    = "week"
	PeriodDay     = "day"
	PeriodMonth   = "month"
	PeriodSession = "session"
)

var (
	// Dollar amounts like $300, $1,200 or $1200.50.
	dollarAmountRe = regexp.MustCompile(`\$([0-9,]+(?:\.[0-9]{1,2})?)`)
	// Bare 2-5 digit runs not butted against other digits.
	bareAmountRe = regexp.MustCompile(`(?:^|[^0-9])([0-9]{2,5})(?:[^0-9]|$)`)
)

// ParseCost extracts a whole-dollar amount and billing period from messy cost
// text. The period defaults to "session" when no period word appears; "week"
// outranks "day" outranks "month" when several appear. ok is false when no
// numeric token is found at all, in which case cost and period are unusable.
//
// The period search is a plain substring match, so e.g. "daycare" reads as a
// per-day price. The curated data depends on this exact priority; do not
// tighten it to word boundaries.
func ParseCost(raw string) (cost int, period string, ok bool) {
	if strings.TrimSpace(raw) == "" {
		return 0, "", false
	}
	text := strings.ToLower(raw)

	var amount string
	if m := dollarAmountRe.FindStringSubmatch(text); m != nil {
		amount = m[1]
	} else if m := bareAmountRe.FindStringSubmatch(text); m != nil {
		amount = m[1]
	}
	if amount == "" {
		return 0, "", false
	}

	amount = strings.ReplaceAll(amount, ",", "")
	if i := strings.IndexByte(amount, '.'); i >= 0 {
		amount = amount[:i]
	}
	cost, err := strconv.Atoi(amount)
	if err != nil {
		return 0, "", false
	}

	switch {
	case strings.Contains(text, PeriodWeek):
		period = PeriodWeek
	case strings.Contains(text, PeriodDay):
		period = PeriodDay
	case strings.Contains(text, PeriodMonth):
		period = PeriodMonth
	default:
		period = PeriodSession
	}
	return cost, period, true
}
