// internal/api/auth.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"huntboard/internal/common/errors"
	"huntboard/internal/models"
)

const resourceAuth = "auth"

// Signup registers a new account. The profile is created separately via
// onboarding.
func (c *Client) Signup(ctx context.Context, creds models.Credentials) error {
	return c.doJSON(ctx, resourceAuth, http.MethodPost, "/api/auth/signup", nil, creds, nil)
}

// Login exchanges credentials for a bearer token. When the account already
// has a candidate profile the API returns it in the envelope data.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, c.fail(resourceAuth, errors.NewSerializationError(err))
	}

	env, err := c.do(ctx, resourceAuth, http.MethodPost, "/api/auth/login",
		nil, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if env.Token == "" {
		return nil, c.fail(resourceAuth, errors.NewEnvelopeError("login response carried no token"))
	}

	result := &models.LoginResult{Token: env.Token}

	// The candidate payload is optional; a shape mismatch is not fatal.
	if len(env.Data) > 0 && string(env.Data) != "null" {
		var cand models.CandidateProfile
		if err := json.Unmarshal(env.Data, &cand); err == nil && cand.ID > 0 {
			result.Candidate = &cand
		}
	}

	return result, nil
}
