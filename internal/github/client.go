// Package github provides the GraphQL client the release bot drives the
// GitHub API with. Every exported method is one named query or mutation.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// DefaultAPIEndpoint is the GraphQL endpoint for github.com
	DefaultAPIEndpoint = "https://api.github.com/graphql"
	// DefaultTimeout is the per-request HTTP timeout
	DefaultTimeout = 30 * time.Second

	maxResponseSize = 10 * 1024 * 1024
)

// ErrUpstream marks transport or API-level failures.
var ErrUpstream = errors.New("upstream API failure")

// ErrNotFound marks a node lookup that resolved to nothing.
var ErrNotFound = errors.New("not found")

// Client issues GraphQL operations against the GitHub API.
type Client struct {
	Token      string
	BaseURL    string
	HTTPClient *http.Client

	// newBackOff builds the retry policy used for rate-limited calls
	newBackOff func() backoff.BackOff
}

// NewClient creates a new GitHub GraphQL client.
func NewClient(token string) *Client {
	return &Client{
		Token:   token,
		BaseURL: DefaultAPIEndpoint,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		newBackOff: defaultBackOff,
	}
}

// WithHTTPClient returns a new client with a custom HTTP client.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	out := *c
	out.HTTPClient = httpClient
	return &out
}

// WithBaseURL returns a new client with a custom endpoint (for testing or
// GitHub Enterprise).
func (c *Client) WithBaseURL(baseURL string) *Client {
	out := *c
	out.BaseURL = baseURL
	return &out
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxElapsedTime = 2 * time.Minute
	return b
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// do posts one GraphQL operation and decodes the data envelope into out.
// Rate-limited responses are retried with exponential backoff; every other
// failure is returned as-is, wrapping ErrUpstream.
func (c *Client) do(ctx context.Context, opName, query string, vars map[string]any, out any) error {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("%s: failed to marshal request: %w", opName, err)
	}

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%s: failed to create request: %w", opName, err))
		}
		req.Header.Set("Authorization", "Bearer "+c.Token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%s: %v: %w", opName, err, ErrUpstream))
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		_ = resp.Body.Close()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%s: failed to read response: %w", opName, err))
		}

		// GitHub signals rate limiting with 429, or 403 once the quota is spent
		if resp.StatusCode == http.StatusTooManyRequests ||
			(resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0") {
			return fmt.Errorf("%s: rate limited (status %d)", opName, resp.StatusCode)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return backoff.Permanent(fmt.Errorf("%s: API error: %s (status %d): %w", opName, body, resp.StatusCode, ErrUpstream))
		}

		var envelope graphQLEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return backoff.Permanent(fmt.Errorf("%s: failed to parse response: %w", opName, err))
		}
		if len(envelope.Errors) > 0 {
			msgs := make([]string, len(envelope.Errors))
			for i, e := range envelope.Errors {
				msgs[i] = e.Message
			}
			return backoff.Permanent(fmt.Errorf("%s: %s: %w", opName, strings.Join(msgs, "; "), ErrUpstream))
		}

		if out != nil {
			if err := json.Unmarshal(envelope.Data, out); err != nil {
				return backoff.Permanent(fmt.Errorf("%s: failed to parse data: %w", opName, err))
			}
		}
		return nil
	}

	return backoff.Retry(op, backoff.WithContext(c.newBackOff(), ctx))
}
