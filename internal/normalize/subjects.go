package normalize

import "strings"

// SubjectEntry pairs a display label with the keywords that trigger it.
type SubjectEntry struct {
	Label    string
	Keywords []string
}

// SubjectTaxonomy is the curated subject list. Declaration order is the
// output order, and the front end shows only the first few labels, so keep
// broad categories ahead of narrow ones.
var SubjectTaxonomy = []SubjectEntry{
	{"STEM", []string{"stem"}},
	{"Science", []string{"science", "biology", "chemistry", "physics", "ecology", "botany"}},
	{"Technology", []string{"technology", "engineering", "robotics", "maker", "makerspace"}},
	{"Coding", []string{"coding", "programming", "python", "javascript", "web dev", "game design", "app"}},
	{"Math", []string{"math", "mathematics"}},
	{"Reading", []string{"reading", "literacy", "books"}},
	{"Writing", []string{"writing", "creative writing", "journalism", "poetry", "fiction"}},
	{"Arts", []string{"art", "arts", "craft", "crafts", "painting", "sculpture", "drawing", "ceramics", "visual"}},
	{"Drama", []string{"drama", "theater", "theatre", "acting", "improv", "musical"}},
	{"Music", []string{"music", "singing", "band", "orchestra", "guitar", "piano", "instruments", "choir"}},
	{"Sports", []string{"sport", "sports", "athletic", "athletics"}},
	{"Soccer", []string{"soccer", "football"}},
	{"Basketball", []string{"basketball"}},
	{"Outdoor Education", []string{"outdoor", "wilderness", "nature", "hiking", "kayak", "canoe", "camping",
		"environmental", "conservation", "garden", "gardening", "farm", "farming",
		"forest", "archery", "climbing"}},
	{"Dance", []string{"dance", "dancing", "ballet", "hip hop"}},
	{"Equestrian", []string{"horse", "equestrian", "riding", "pony"}},
	{"Swim", []string{"swim", "swimming", "aquatic", "water"}},
	{"Cooking", []string{"cook", "cooking", "culinary", "baking", "food"}},
}

// Subjects returns the taxonomy labels whose keywords appear in the program
// name or description, in taxonomy order.
func Subjects(name, description string) []string {
	text := strings.ToLower(name + " " + description)
	var found []string
	for _, entry := range SubjectTaxonomy {
		for _, kw := range entry.Keywords {
			if strings.Contains(text, kw) {
				found = append(found, entry.Label)
				break
			}
		}
	}
	return found
}

var scholarshipKeywords = []string{
	"scholarship", "financial aid", "sliding scale", "subsidy",
	"income-based", "need-based", "assistance", "reduced", "free",
}

// HasScholarship reports whether the cost or notes text mentions any
// financial-assistance signal.
func HasScholarship(costText, notesText string) bool {
	combined := strings.ToLower(costText + " " + notesText)
	for _, kw := range scholarshipKeywords {
		if strings.Contains(combined, kw) {
			return true
		}
	}
	return false
}
