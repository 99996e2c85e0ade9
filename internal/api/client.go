// Package api is the typed client for the remote job-tracker REST API.
// Every response is expected in the `{success, message, data}` envelope;
// success=false is a failure regardless of transport status.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"huntboard/internal/common/errors"
	httpx "huntboard/internal/common/http"
	"huntboard/internal/common/logger"
	"huntboard/internal/common/metrics"
)

// Client talks to the remote API. It is safe for concurrent use.
type Client struct {
	baseURL        string
	httpClient     *httpx.Client
	logger         logger.Logger
	onUnauthorized func()
}

// NewClient creates a client for the API at baseURL. tokens supplies the
// bearer token attached to every request when present.
func NewClient(baseURL string, timeout time.Duration, tokens httpx.TokenSource, log logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpx.NewClient(timeout, tokens),
		logger:     log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// SetUnauthorizedHandler registers the hook invoked on a transport-level
// 401 before the error is returned. The session manager uses it to clear
// persisted credentials and force re-login.
func (c *Client) SetUnauthorizedHandler(fn func()) {
	c.onUnauthorized = fn
}

// envelope is the wrapper the API puts around every JSON response. The
// login endpoint additionally carries the token at the top level.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// doJSON sends a JSON request and decodes the envelope data into out when
// out is non-nil. body may be nil for bodyless requests.
func (c *Client) doJSON(ctx context.Context, resource, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return c.fail(resource, errors.NewSerializationError(err))
		}
		reader = bytes.NewReader(raw)
		contentType = "application/json"
	}

	env, err := c.do(ctx, resource, method, path, query, contentType, reader)
	if err != nil {
		return err
	}
	return c.decodeData(resource, env, out)
}

// do sends the request and enforces the envelope contract. The returned
// envelope is only valid on a nil error.
func (c *Client) do(ctx context.Context, resource, method, path string, query url.Values, contentType string, body io.Reader) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return nil, c.fail(resource, errors.NewHTTPRequestError(err))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	metrics.APIRequestsTotal.WithLabelValues(resource, method).Inc()
	timer := prometheus.NewTimer(metrics.APIRequestDuration.WithLabelValues(resource))
	resp, err := c.httpClient.DoWithContext(ctx, req)
	timer.ObserveDuration()
	if err != nil {
		return nil, c.fail(resource, errors.NewNetworkError(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(resource, errors.NewIOError(err))
	}

	var env envelope
	// Non-envelope bodies (health endpoint, proxy error pages) are
	// tolerated here; the status checks below still apply.
	_ = json.Unmarshal(raw, &env)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, c.fail(resource, errors.NewUnauthorizedError(env.Message))
	case resp.StatusCode == http.StatusNotFound:
		return nil, c.fail(resource, errors.NewNotFoundError(resource, env.Message))
	case resp.StatusCode >= 400:
		return nil, c.fail(resource, errors.NewAPIError(resp.StatusCode, env.Message))
	}

	if env.Success != nil && !*env.Success {
		return nil, c.fail(resource, errors.NewEnvelopeError(env.Message))
	}

	return &env, nil
}

func (c *Client) decodeData(resource string, env *envelope, out interface{}) error {
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return c.fail(resource, errors.NewDeserializationError(err))
	}
	return nil
}

func (c *Client) fail(resource string, err *errors.StandardError) *errors.StandardError {
	metrics.APIRequestsFailed.WithLabelValues(resource, string(err.Code)).Inc()
	c.logger.Warn("api request failed", map[string]interface{}{
		"resource": resource,
		"code":     string(err.Code),
		"message":  err.Message,
		"details":  err.Details,
	})
	return err
}
