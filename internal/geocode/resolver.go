package geocode

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultRequestDelay spaces out calls to the shared Nominatim instance.
const DefaultRequestDelay = 700 * time.Millisecond

// Target region. Every accepted result must resolve here.
const (
	StateName   = "Vermont"
	StateAbbrev = "VT"
)

var (
	streetHintRe = regexp.MustCompile(`(?i)\b(st|street|rd|road|ave|avenue|ln|lane|dr|drive|ct|court|blvd|way|pkwy|parkway|pl|place|cir|circle|ter|terrace|hwy|highway|route|rt)\b`)
	digitRe      = regexp.MustCompile(`[0-9]`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
)

// LooksLikeStreetAddress reports whether location text already reads as a
// concrete street address: it contains a digit and a street-type word.
func LooksLikeStreetAddress(value string) bool {
	text := strings.TrimSpace(value)
	if text == "" {
		return false
	}
	return digitRe.MatchString(text) && streetHintRe.MatchString(text)
}

// HasCityOrState reports whether the location text already carries the row's
// city or a Vermont marker.
func HasCityOrState(location, city string) bool {
	text := strings.ToLower(location)
	if c := strings.ToLower(strings.TrimSpace(city)); c != "" && strings.Contains(text, c) {
		return true
	}
	return strings.Contains(text, " vt") || strings.Contains(text, "vermont")
}

// Standardize appends city and state to an existing street address that
// lacks them. The second result is false when the address already carries
// the context or no city is known.
func Standardize(location, city string) (string, bool) {
	if city == "" || HasCityOrState(location, city) {
		return location, false
	}
	return fmt.Sprintf("%s, %s, %s", location, city, StateAbbrev), true
}

// Searcher is the lookup the resolver runs candidate queries through.
type Searcher interface {
	Search(query string) ([]Place, error)
}

// Resolver turns vague location references into verified street addresses.
type Resolver struct {
	searcher Searcher
	delay    time.Duration
	sleep    func(time.Duration)
}

// NewResolver creates a Resolver with the given inter-request delay.
func NewResolver(searcher Searcher, delay time.Duration) *Resolver {
	if delay <= 0 {
		delay = DefaultRequestDelay
	}
	return &Resolver{
		searcher: searcher,
		delay:    delay,
		sleep:    time.Sleep,
	}
}

// Lookup runs the candidate queries for one row in order and returns the
// first accepted address. A failed request moves on to the next candidate
// after the usual delay; ok is false when no candidate yields an accepted
// result. The caller is expected to have screened out rows that already hold
// a street address.
func (r *Resolver) Lookup(location, org, city string) (string, bool) {
	for _, query := range candidateQueries(location, org, city) {
		places, err := r.searcher.Search(query)
		if err != nil {
			r.sleep(r.delay)
			continue
		}
		address := chooseResult(places, city)
		r.sleep(r.delay)
		if address != "" {
			return address, true
		}
	}
	return "", false
}

// candidateQueries builds the ordered lookup attempts for a row, deduplicated
// case-insensitively.
func candidateQueries(location, org, city string) []string {
	var queries []string
	if location != "" && city != "" {
		queries = append(queries, fmt.Sprintf("%s, %s, %s", location, city, StateName))
	}
	if org != "" && city != "" {
		queries = append(queries, fmt.Sprintf("%s, %s, %s", org, city, StateName))
	}
	if location != "" && org != "" && city != "" {
		queries = append(queries, fmt.Sprintf("%s %s, %s, %s", org, location, city, StateName))
	}

	seen := make(map[string]bool, len(queries))
	deduped := queries[:0]
	for _, q := range queries {
		key := strings.ToLower(q)
		if !seen[key] {
			deduped = append(deduped, q)
			seen[key] = true
		}
	}
	return deduped
}

// chooseResult picks the best accepted place from one query's results: the
// first with a complete street address wins, otherwise the first accepted
// display name is kept as a fallback.
func chooseResult(places []Place, expectedCity string) string {
	fallback := ""
	for _, place := range places {
		if strings.ToLower(place.Address.CountryCode) != "us" {
			continue
		}
		if !cityMatches(place, expectedCity) {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(place.Address.State), StateName) {
			continue
		}
		if full := buildFullAddress(place); full != "" {
			return full
		}
		if fallback == "" {
			fallback = strings.TrimSpace(place.DisplayName)
		}
	}
	return fallback
}

// buildFullAddress renders "house-number road, city, VT postcode", or ""
// when the place lacks a locality, the right state, or a street line.
func buildFullAddress(place Place) string {
	addr := place.Address
	city := strings.TrimSpace(addr.Locality())
	if city == "" {
		return ""
	}
	if !strings.EqualFold(strings.TrimSpace(addr.State), StateName) {
		return ""
	}
	line1 := strings.TrimSpace(strings.TrimSpace(addr.HouseNumber) + " " + strings.TrimSpace(addr.Road))
	if line1 == "" {
		return ""
	}
	line2 := city + ", " + StateAbbrev
	if postcode := strings.TrimSpace(addr.Postcode); postcode != "" {
		line2 += " " + postcode
	}
	return line1 + ", " + line2
}

func cityMatches(place Place, expectedCity string) bool {
	if expectedCity == "" {
		return true
	}
	if found := place.Address.Locality(); found != "" && normalizeCity(found) == normalizeCity(expectedCity) {
		return true
	}
	return strings.Contains(strings.ToLower(place.DisplayName), normalizeCity(expectedCity))
}

func normalizeCity(value string) string {
	return spaceRunRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), " ")
}
