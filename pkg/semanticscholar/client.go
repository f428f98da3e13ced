package semanticscholar

import (
	"context"
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
	// DefaultAPIURL is the Semantic Scholar Graph API search endpoint.
	DefaultAPIURL = "https://api.semanticscholar.org/graph/v1/paper/search"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// maxLimit is the API's per-request result cap.
	maxLimit = 100

	userAgent = "research-assistant/1.0"
)

// Paper is one search hit.
type Paper struct {
	ID          string
	Title       string
	Abstract    string
	Authors     string // comma-joined
	PublishedAt string // publication date, or bare year when missing
	URL         string
}

// Client is the Semantic Scholar Graph API client. The API key is optional;
// without one requests share the public rate pool.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new Semantic Scholar client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     DefaultAPIURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL overrides the default API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

type searchResponse struct {
	Data []struct {
		PaperID  string `json:"paperId"`
		Title    string `json:"title"`
		Abstract string `json:"abstract"`
		URL      string `json:"url"`
		Year     int    `json:"year"`
		Authors  []struct {
			Name string `json:"name"`
		} `json:"authors"`
		PublicationDate string `json:"publicationDate"`
	} `json:"data"`
}

// Search queries the paper search endpoint for the given keywords.
func (c *Client) Search(ctx context.Context, keywords []string, maxResults int) ([]Paper, error) {
	if maxResults > maxLimit {
		maxResults = maxLimit
	}

	params := url.Values{}
	params.Set("query", buildQuery(keywords))
	params.Set("limit", strconv.Itoa(maxResults))
	params.Set("fields", "title,abstract,url,authors,venue,year,publicationDate")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("semanticscholar: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("semanticscholar: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("semanticscholar: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("semanticscholar: failed to decode response: %w", err)
	}

	papers := make([]Paper, 0, len(result.Data))
	for _, item := range result.Data {
		names := make([]string, 0, len(item.Authors))
		for _, a := range item.Authors {
			names = append(names, a.Name)
		}
		published := item.PublicationDate
		if published == "" && item.Year != 0 {
			published = strconv.Itoa(item.Year)
		}
		papers = append(papers, Paper{
			ID:          item.PaperID,
			Title:       item.Title,
			Abstract:    item.Abstract,
			Authors:     strings.Join(names, ", "),
			PublishedAt: published,
			URL:         item.URL,
		})
	}
	return papers, nil
}

func buildQuery(keywords []string) string {
	terms := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			kw = `"` + kw + `"`
		}
		terms = append(terms, kw)
	}
	return strings.Join(terms, " OR ")
}
