// internal/api/health.go
package api

import (
	"context"
	"net/http"
)

const resourceHealth = "health"

// Alive checks the API liveness endpoint. The endpoint does not use the
// response envelope; any 2xx counts as alive.
func (c *Client) Alive(ctx context.Context) error {
	_, err := c.do(ctx, resourceHealth, http.MethodGet, "/alive", nil, "", nil)
	return err
}
