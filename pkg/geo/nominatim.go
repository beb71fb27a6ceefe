// Package geo resolves free-text places to coordinates and coordinates back
// to settlement names using Nominatim. Lookups are best effort: every
// failure path degrades to a zero value so callers can keep their defaults.
package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
	userAgent      = "AgroWorldApp/1.0"

	// Nominatim is a nicety, not a dependency; keep the budget short so a
	// slow lookup cannot stall the weather page.
	lookupTimeout = 2 * time.Second
)

type Place struct {
	Lat  float64
	Lon  float64
	Name string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: lookupTimeout},
	}
}

// Search resolves a free-text city to coordinates and a title-cased display
// name. Returns nil on any network failure, malformed payload, or empty
// result set.
func (c *Client) Search(city string) *Place {
	lookupURL := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(city))

	body, err := c.get(lookupURL)
	if err != nil {
		return nil
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil || len(results) == 0 {
		return nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil
	}

	name := results[0].Name
	if name == "" {
		name = city
	}

	return &Place{Lat: lat, Lon: lon, Name: titleCase(name)}
}

// Reverse maps coordinates to the nearest settlement label, preferring city
// over town, village and county. Returns "" when the lookup fails and
// "Unknown Location" when the payload carries no usable address part.
func (c *Client) Reverse(lat, lon float64) string {
	lookupURL := fmt.Sprintf("%s/reverse?lat=%g&lon=%g&format=json", c.baseURL, lat, lon)

	body, err := c.get(lookupURL)
	if err != nil {
		return ""
	}

	var result reverseResult
	if err := json.Unmarshal(body, &result); err != nil {
		return ""
	}

	for _, candidate := range []string{
		result.Address.City,
		result.Address.Town,
		result.Address.Village,
		result.Address.County,
	} {
		if candidate != "" {
			return candidate
		}
	}

	return "Unknown Location"
}

func (c *Client) get(lookupURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding error (status %d)", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

type searchResult struct {
	Lat  string `json:"lat"`
	Lon  string `json:"lon"`
	Name string `json:"name"`
}

type reverseResult struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
	} `json:"address"`
}
