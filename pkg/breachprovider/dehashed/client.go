// Package dehashed provides a breachprovider.Client backed by the DeHashed v2
// search API.
package dehashed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"breachcheck/pkg/breachprovider"
	"breachcheck/pkg/domain"
	"breachcheck/pkg/serrors"
)

const (
	// DefaultBaseURL is the public DeHashed API endpoint.
	DefaultBaseURL = "https://api.dehashed.com"
	// DefaultPageSize is the number of entries requested per search.
	DefaultPageSize = 100

	apiKeyHeader = "Dehashed-Api-Key"
	// maxErrorBody bounds how much of an error response is kept in the error message.
	maxErrorBody = 512
)

// Client talks to the DeHashed REST API and fulfills the breachprovider.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	pageSize   int
}

// Ensure Client conforms to the breachprovider.Client interface at compile time.
var _ breachprovider.Client = (*Client)(nil)

// New constructs a Client. An empty baseURL uses DefaultBaseURL and a
// non-positive pageSize uses DefaultPageSize.
func New(httpClient *http.Client, baseURL, apiKey string, pageSize int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		pageSize:   pageSize,
	}
}

// Search runs a single page search against /v2/search.
func (c *Client) Search(ctx context.Context, kind domain.SearchKind, value string) (*breachprovider.SearchResult, error) {
	body := encodeSearchRequest(breachprovider.BuildQuery(kind, value), 1, c.pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not reach provider")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not read provider response")
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, serrors.With(serrors.ErrUpstreamAuth, "external service authentication failed")
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrUpstreamQuota, "external service rate limit exceeded")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, serrors.With(serrors.ErrUpstream,
			"provider returned status %d: %s", resp.StatusCode, c.errorBody(b))
	}

	res, err := decodeSearchResponse(b)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not decode provider response")
	}

	return res, nil
}

// errorBody trims and truncates an error response and scrubs the API key in
// case the provider echoes it back.
func (c *Client) errorBody(b []byte) string {
	s := strings.TrimSpace(string(b))
	if c.apiKey != "" {
		s = strings.ReplaceAll(s, c.apiKey, "[redacted]")
	}
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody] + "..."
	}

	return s
}
