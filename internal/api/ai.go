// internal/api/ai.go
package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"huntboard/internal/models"
)

const resourceAI = "ai"

// GenerateCoverLetter asks the AI service for a cover letter and keyword
// analysis. The three ids travel as query parameters, the title and
// optional prompt in the JSON body.
func (c *Client) GenerateCoverLetter(ctx context.Context, candidateID, resumeID, jobApplicationID int64, req models.CoverLetterRequest) (*models.CoverLetterAnalysis, error) {
	query := url.Values{}
	query.Set("candidateId", strconv.FormatInt(candidateID, 10))
	query.Set("resumeId", strconv.FormatInt(resumeID, 10))
	query.Set("jobApplicationId", strconv.FormatInt(jobApplicationID, 10))

	var analysis models.CoverLetterAnalysis
	err := c.doJSON(ctx, resourceAI, http.MethodPost,
		"/api/ai/generate-cover-letter", query, req, &analysis)
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}
