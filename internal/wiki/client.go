// Package wiki is a small client for the MediaWiki action API used to answer
// encyclopedia questions.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL       = "https://en.wikipedia.org/w/api.php"
	DefaultSummaryLength = 1800
	DefaultUserAgent     = "parley/1.0 (https://github.com/bgdnvk/parley)"

	NoSummary = "No summary available."
)

// ErrLookupUnavailable wraps any transport, status or decoding failure.
var ErrLookupUnavailable = errors.New("encyclopedia lookup unavailable")

// Client is the HTTP client for the encyclopedia API
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the default Wikipedia endpoint. A zero
// timeout means requests block until the server answers.
func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	return NewClientWithURL(DefaultBaseURL, timeout, logger)
}

// NewClientWithURL creates a client against a specific API URL
func NewClientWithURL(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// SetUserAgent overrides the User-Agent sent with every request.
func (c *Client) SetUserAgent(ua string) {
	if ua != "" {
		c.userAgent = ua
	}
}

// doRequest performs a GET against the API and decodes the JSON body into out.
func (c *Client) doRequest(ctx context.Context, params url.Values, out any) error {
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrLookupUnavailable, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("encyclopedia request", zap.String("url", req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %v", ErrLookupUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", ErrLookupUnavailable, err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: status %d", ErrLookupUnavailable, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to parse response: %v", ErrLookupUnavailable, err)
	}
	return nil
}

// Search returns the title of the first ranked result for term.
func (c *Client) Search(ctx context.Context, term string) (string, bool, error) {
	params := url.Values{}
	params.Set("list", "search")
	params.Set("srsearch", term)

	var resp searchResponse
	if err := c.doRequest(ctx, params, &resp); err != nil {
		return "", false, err
	}
	if resp.Query == nil || len(resp.Query.Search) == 0 {
		return "", false, nil
	}
	return resp.Query.Search[0].Title, true, nil
}

// FetchSummary returns the plain-text intro of the article, cut to maxChars
// characters. A response without pages yields NoSummary.
func (c *Client) FetchSummary(ctx context.Context, title string, maxChars int) (string, error) {
	params := url.Values{}
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("titles", title)

	var resp extractResponse
	if err := c.doRequest(ctx, params, &resp); err != nil {
		return "", err
	}
	if resp.Query == nil || len(resp.Query.Pages) == 0 {
		return NoSummary, nil
	}
	return truncate(resp.Query.Pages[0].Extract, maxChars), nil
}

// Summary is FetchSummary with every failure degraded to NoSummary.
func (c *Client) Summary(ctx context.Context, title string, maxChars int) string {
	summary, err := c.FetchSummary(ctx, title, maxChars)
	if err != nil {
		c.logger.Warn("summary lookup failed", zap.String("title", title), zap.Error(err))
		return NoSummary
	}
	return summary
}

func truncate(s string, maxChars int) string {
	if maxChars < 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
