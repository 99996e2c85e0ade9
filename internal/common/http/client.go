// internal/common/http/client.go
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// TokenSource yields the current bearer token, or empty when the session
// holds none. The state store backs it in production.
type TokenSource func() string

// Client wraps net/http with a timeout, bearer-token injection and a
// per-request id header.
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
}

func NewClient(timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
	}
}

// Do executes the request, attaching Authorization and X-Request-ID
// headers. The bearer header is only set when a token is available.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	c.decorate(req)
	return c.httpClient.Do(req)
}

// DoWithContext executes the request bound to ctx.
func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	return c.Do(req)
}

func (c *Client) decorate(req *http.Request) {
	if c.tokens != nil {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
}
