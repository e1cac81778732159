// Package enrich adds TMDB metadata (canonical titles and poster art) to
// an already-merged feed. The step is optional: without an API key it is
// disabled entirely, and a failed lookup never touches the screening.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	posterBaseURL   = "https://image.tmdb.org/t/p/w500"
	lookupTimeout   = 10 * time.Second
	defaultCacheTTL = 7 * 24 * time.Hour
)

// Client is a client for the TMDB search API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *Cache
}

// NewClient creates a new TMDB client. An empty API key yields a disabled
// client; callers check Enabled before use.
func NewClient(apiKey string, cacheTTL time.Duration) *Client {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: lookupTimeout,
		},
		cache: NewCache(cacheTTL),
	}
}

// Enabled reports whether the client is configured with an API key.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Result holds the metadata TMDB returned for one title.
type Result struct {
	Title  string
	Poster string
	Year   string
}

// searchResponse mirrors the TMDB /search/movie payload
type searchResponse struct {
	Results []struct {
		Title       string `json:"title"`
		PosterPath  string `json:"poster_path"`
		ReleaseDate string `json:"release_date"`
	} `json:"results"`
}

// Lookup searches TMDB for a title and returns the best match, or nil when
// TMDB has nothing. A non-empty knownYear narrows the search to that
// release year, disambiguating remakes that share a title. Repeat lookups
// within the cache TTL cost one call.
func (c *Client) Lookup(ctx context.Context, title, knownYear string) (*Result, error) {
	if hit := c.cache.Get(title, knownYear); hit != nil {
		return hit, nil
	}

	params := url.Values{}
	params.Add("query", title)
	params.Add("api_key", c.apiKey)
	if knownYear != "" {
		params.Add("primary_release_year", knownYear)
	}

	reqURL := fmt.Sprintf("%s/search/movie?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching TMDB: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var search searchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	if len(search.Results) == 0 {
		return nil, nil
	}

	best := search.Results[0]
	result := &Result{
		Title: best.Title,
		Year:  yearOf(best.ReleaseDate),
	}
	if best.PosterPath != "" {
		result.Poster = posterBaseURL + best.PosterPath
	}

	c.cache.Set(title, knownYear, result)
	return result, nil
}

// yearOf extracts the year from a TMDB release date ("2025-12-22").
func yearOf(releaseDate string) string {
	if len(releaseDate) < 4 {
		return ""
	}
	return releaseDate[:4]
}
