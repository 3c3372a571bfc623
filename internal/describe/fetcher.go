package describe

import (
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// UserAgent identifies this tool to the sites it fetches.
	UserAgent = "campdata-description-fetcher/1.0 (github.com/vtcampfinder/campdata)"
	// Timeout bounds one page fetch.
	Timeout = 15 * time.Second
	// DefaultRequestDelay separates fetches of different sites.
	DefaultRequestDelay = 800 * time.Millisecond
	// MaxBodyBytes caps how much of a page is read.
	MaxBodyBytes = 200_000
)

// Fetcher retrieves camp websites and extracts description text.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with the standard timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// FetchDescription fetches a URL and returns the best description string, or
// "" on any failure. Only responses declared as HTML are processed, and the
// body read is capped at MaxBodyBytes.
func (f *Fetcher) FetchDescription(rawURL string) string {
	url := NormalizeURL(rawURL)
	if url == "" {
		return ""
	}

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}
	if !strings.Contains(strings.ToLower(resp.Header.Get("Content-Type")), "html") {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return ""
	}
	return Extract(string(body))
}

// NormalizeURL takes the first whitespace-separated token of a webpage field
// (some rows list several URLs) and defaults the scheme to https.
func NormalizeURL(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	url := fields[0]
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return url
}
