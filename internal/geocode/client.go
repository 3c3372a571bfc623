package geocode

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the public Nominatim search endpoint.
	DefaultBaseURL = "https://nominatim.openstreetmap.org/search"
	// UserAgent identifies this tool to the geocoding service, per its
	// usage policy.
	UserAgent = "campdata-address-enricher/1.0 (github.com/vtcampfinder/campdata)"
	// Timeout bounds a single search request.
	Timeout = 20 * time.Second
	// ResultLimit is the maximum number of candidate places requested.
	ResultLimit = 3
)

// Address is the structured address block of a search result.
type Address struct {
	HouseNumber  string `json:"house_number"`
	Road         string `json:"road"`
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Hamlet       string `json:"hamlet"`
	Municipality string `json:"municipality"`
	State        string `json:"state"`
	Postcode     string `json:"postcode"`
	CountryCode  string `json:"country_code"`
}

// Locality returns the best city-like field. Nominatim populates different
// fields depending on the place size, so fall through the whole chain.
func (a Address) Locality() string {
	for _, v := range []string{a.City, a.Town, a.Village, a.Hamlet, a.Municipality} {
		if v != "" {
			return v
		}
	}
	return ""
}

// Place is one ranked search result.
type Place struct {
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
}

// Client performs free-text searches against a Nominatim endpoint.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a Client against the public Nominatim endpoint.
func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

// NewClientWithBaseURL creates a Client against a specific endpoint,
// primarily for tests.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: baseURL,
	}
}

// Search issues one free-text query and returns the ranked candidate places.
// Results are requested with structured address details and restricted to
// the US.
func (c *Client) Search(query string) ([]Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	params.Set("limit", fmt.Sprintf("%d", ResultLimit))
	params.Set("countrycodes", "us")

	req, err := http.NewRequest("GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var places []Place
	if err := json.Unmarshal(body, &places); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	return places, nil
}
