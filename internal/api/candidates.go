// internal/api/candidates.go
package api

import (
	"context"
	"fmt"
	"net/http"

	"huntboard/internal/models"
)

const resourceCandidate = "candidate"

// CreateCandidateProfile creates the candidate profile for the
// authenticated account (the onboarding call).
func (c *Client) CreateCandidateProfile(ctx context.Context, input models.CandidateProfileInput) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := c.doJSON(ctx, resourceCandidate, http.MethodPost,
		"/api/candidate-profile/create-candidate-profile", nil, input, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetCandidate fetches one candidate profile by id.
func (c *Client) GetCandidate(ctx context.Context, id int64) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	path := fmt.Sprintf("/api/candidate-profile/get-candidate/%d", id)
	if err := c.doJSON(ctx, resourceCandidate, http.MethodGet, path, nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetAllCandidates fetches the full candidate list. Profile resolution
// scans it for an email match when no cached id works.
func (c *Client) GetAllCandidates(ctx context.Context) ([]models.CandidateProfile, error) {
	var profiles []models.CandidateProfile
	err := c.doJSON(ctx, resourceCandidate, http.MethodGet,
		"/api/candidate-profile/get-all-candidates", nil, nil, &profiles)
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateCandidateActive toggles the candidate's active flag.
func (c *Client) UpdateCandidateActive(ctx context.Context, id int64) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	path := fmt.Sprintf("/api/candidate-profile/update-active/%d", id)
	if err := c.doJSON(ctx, resourceCandidate, http.MethodPut, path, nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteCandidate removes the candidate profile.
func (c *Client) DeleteCandidate(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/candidate-profile/delete-candidate/%d", id)
	return c.doJSON(ctx, resourceCandidate, http.MethodDelete, path, nil, nil, nil)
}
