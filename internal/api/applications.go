// internal/api/applications.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"huntboard/internal/models"
)

const resourceApplication = "job-application"

// AddJobApplication creates a new tracked application.
func (c *Client) AddJobApplication(ctx context.Context, input models.JobApplicationInput) (*models.JobApplication, error) {
	var app models.JobApplication
	err := c.doJSON(ctx, resourceApplication, http.MethodPost,
		"/api/job-application/add-job-application", nil, input, &app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateJobApplication edits an existing application.
func (c *Client) UpdateJobApplication(ctx context.Context, id int64, input models.JobApplicationInput) (*models.JobApplication, error) {
	var app models.JobApplication
	path := fmt.Sprintf("/api/job-application/update-job-application/%d", id)
	if err := c.doJSON(ctx, resourceApplication, http.MethodPut, path, nil, input, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateJobApplicationStatus changes only the status. The status travels
// as a query parameter with an empty body, per the remote contract.
func (c *Client) UpdateJobApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.JobApplication, error) {
	var app models.JobApplication
	path := fmt.Sprintf("/api/job-application/update-job-application-status/%d", id)
	query := url.Values{"jobApplicationStatus": {string(status)}}
	if err := c.doJSON(ctx, resourceApplication, http.MethodPut, path, query, nil, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetJobApplication fetches one application by id.
func (c *Client) GetJobApplication(ctx context.Context, id int64) (*models.JobApplication, error) {
	var app models.JobApplication
	path := fmt.Sprintf("/api/job-application/get-job-application/%d", id)
	if err := c.doJSON(ctx, resourceApplication, http.MethodGet, path, nil, nil, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetCandidateJobApplications lists the applications owned by a candidate.
// A missing data field yields an empty list, not an error.
func (c *Client) GetCandidateJobApplications(ctx context.Context, candidateID int64) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	path := fmt.Sprintf("/api/job-application/get-candidate-job-applications/%d", candidateID)
	if err := c.doJSON(ctx, resourceApplication, http.MethodGet, path, nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// GetAllJobApplications lists every application (admin view).
func (c *Client) GetAllJobApplications(ctx context.Context) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := c.doJSON(ctx, resourceApplication, http.MethodGet,
		"/api/job-application/get-all-job-applications", nil, nil, &apps)
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// DeleteJobApplication removes an application.
func (c *Client) DeleteJobApplication(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/job-application/delete-job-application/%d", id)
	return c.doJSON(ctx, resourceApplication, http.MethodDelete, path, nil, nil, nil)
}
