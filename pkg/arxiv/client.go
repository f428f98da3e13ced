package arxiv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultAPIURL is the arXiv Atom query endpoint.
	DefaultAPIURL = "http://export.arxiv.org/api/query"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	userAgent = "research-assistant/1.0"
)

// Client is the arXiv API client.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new arXiv client.
func NewClient() *Client {
	return &Client{
		apiURL:     DefaultAPIURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL overrides the default arXiv API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// Search queries arXiv for the given keywords, newest submissions first.
func (c *Client) Search(ctx context.Context, keywords []string, maxResults int) ([]Paper, error) {
	params := url.Values{}
	params.Set("search_query", buildQuery(keywords))
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("arxiv: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arxiv: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("arxiv: API error %d: %s", resp.StatusCode, string(raw))
	}

	return parseFeed(resp.Body)
}

// buildQuery joins keywords as an all-fields OR query, quoting multi-word
// phrases.
func buildQuery(keywords []string) string {
	terms := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			kw = `"` + kw + `"`
		}
		terms = append(terms, "all:"+kw)
	}
	return strings.Join(terms, " OR ")
}
