package describe

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != UserAgent {
			t.Errorf("expected custom user agent, got %q", got)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><head>
			<meta name="description" content="Day camp sessions for ages 6 to 12 on the Burlington waterfront.">
		</head><body></body></html>`))
	}))
	defer server.Close()

	f := NewFetcher()
	got := f.FetchDescription(server.URL)
	if got != "Day camp sessions for ages 6 to 12 on the Burlington waterfront." {
		t.Errorf("unexpected description: %q", got)
	}
}

func TestFetchDescriptionNonHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	f := NewFetcher()
	if got := f.FetchDescription(server.URL); got != "" {
		t.Errorf("expected empty result for non-HTML content, got %q", got)
	}
}

func TestFetchDescriptionErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	f := NewFetcher()
	if got := f.FetchDescription(server.URL); got != "" {
		t.Errorf("expected empty result for 404, got %q", got)
	}
}

func TestFetchDescriptionUnreachable(t *testing.T) {
	f := NewFetcher()
	if got := f.FetchDescription("http://127.0.0.1:1"); got != "" {
		t.Errorf("expected empty result for unreachable host, got %q", got)
	}
}

func TestFetchDescriptionCapsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		// Filler well past the cap, then a qualifying paragraph that should
		// never be reached.
		w.Write([]byte("<html><body><div>" + strings.Repeat("x", MaxBodyBytes) + "</div>"))
		w.Write([]byte("<p>A perfectly good description paragraph that sits beyond the byte ceiling of the fetcher.</p></body></html>"))
	}))
	defer server.Close()

	f := NewFetcher()
	if got := f.FetchDescription(server.URL); got != "" {
		t.Errorf("expected empty result when description is past the cap, got %q", got)
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"example.org", "https://example.org"},
		{"http://example.org", "http://example.org"},
		{"https://example.org/camps", "https://example.org/camps"},
		{"example.org/a extra.org/b", "https://example.org/a"},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeURL(tt.input); got != tt.expected {
				t.Errorf("NormalizeURL(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
