package describe

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// MinLength is the shortest description worth keeping.
	MinLength = 40
	// MaxLength is where long descriptions get truncated.
	MaxLength = 500
)

// Elements whose entire subtree is boilerplate, not description text.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"nav":      true,
	"footer":   true,
	"header":   true,
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Extract returns the best description found in an HTML page, or "" when
// nothing of at least MinLength is present. Meta descriptions win over body
// paragraphs; among paragraphs, document order decides.
func Extract(page string) string {
	candidates := metaDescriptions(page)
	candidates = append(candidates, bodyParagraphs(page)...)

	for _, candidate := range candidates {
		text := strings.TrimSpace(candidate)
		if len(text) < MinLength {
			continue
		}
		if len(text) > MaxLength {
			text = truncateAtSentence(text)
		}
		return text
	}
	return ""
}

// metaDescriptions pulls og:description and the standard meta description,
// in that priority order, dropping blanks.
func metaDescriptions(page string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var out []string
	if content, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok {
		if content = strings.TrimSpace(content); content != "" {
			out = append(out, content)
		}
	}
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		if content = strings.TrimSpace(content); content != "" {
			out = append(out, content)
		}
	}
	return out
}

// bodyParagraphs scans the page as a token stream and accumulates the text
// of <p> elements inside <body>, in document order. A nesting counter tracks
// skip-region depth so a <p> inside a <nav> inside a <footer> stays skipped
// until both close. Paragraphs shorter than MinLength are dropped here so
// Extract only sees viable candidates.
func bodyParagraphs(page string) []string {
	tokenizer := html.NewTokenizer(strings.NewReader(page))

	var (
		inBody      bool
		inParagraph bool
		skipNesting int
		current     []string
		paragraphs  []string
	)

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// End of document or malformed input; either way, done.
			return paragraphs

		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if tag == "body" {
				inBody = true
			}
			if skipTags[tag] {
				skipNesting++
			}
			if skipNesting > 0 {
				continue
			}
			if inBody && tag == "p" {
				inParagraph = true
				current = current[:0]
			}

		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if skipTags[tag] && skipNesting > 0 {
				skipNesting--
			}
			if inParagraph && tag == "p" {
				text := whitespaceRe.ReplaceAllString(strings.TrimSpace(strings.Join(current, " ")), " ")
				if len(text) >= MinLength {
					paragraphs = append(paragraphs, text)
				}
				inParagraph = false
				current = current[:0]
			}

		case html.TextToken:
			if skipNesting > 0 || !inParagraph {
				continue
			}
			if text := strings.TrimSpace(string(tokenizer.Text())); text != "" {
				current = append(current, text)
			}
		}
	}
}

// truncateAtSentence cuts text to MaxLength, backing up to the last sentence
// boundary when one exists reasonably deep into the text.
func truncateAtSentence(text string) string {
	truncated := text[:MaxLength]
	if lastPeriod := strings.LastIndex(truncated, "."); lastPeriod > MinLength {
		truncated = truncated[:lastPeriod+1]
	}
	return strings.TrimSpace(truncated)
}
