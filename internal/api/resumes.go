// internal/api/resumes.go
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"huntboard/internal/common/errors"
	"huntboard/internal/models"
)

const resourceResume = "resume"

// AddResume uploads a resume file. The remote contract is quirky and must
// be preserved: title and optionalUserPrompt travel as query parameters,
// the multipart body carries only the file. The response is the AI summary
// generated from the upload.
func (c *Client) AddResume(ctx context.Context, title, optionalUserPrompt, filename string, file io.Reader) (*models.ResumeSummary, error) {
	query := url.Values{}
	query.Set("title", title)
	if optionalUserPrompt != "" {
		query.Set("optionalUserPrompt", optionalUserPrompt)
	}

	body, contentType, err := multipartBody(filename, file, "")
	if err != nil {
		return nil, c.fail(resourceResume, errors.NewSerializationError(err))
	}

	env, err := c.do(ctx, resourceResume, http.MethodPost,
		"/api/candidate-resume/add-candidate-resume", query, contentType, body)
	if err != nil {
		return nil, err
	}

	var summary models.ResumeSummary
	if err := c.decodeData(resourceResume, env, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// UpdateResume replaces a resume's metadata and optionally its file. Here
// title and resumeUrl are query parameters while the optional file and
// optional prompt travel in the multipart body.
func (c *Client) UpdateResume(ctx context.Context, id int64, title, resumeURL, filename string, file io.Reader, optionalUserPrompt string) (*models.Resume, error) {
	query := url.Values{}
	query.Set("title", title)
	query.Set("resumeUrl", resumeURL)

	body, contentType, err := multipartBody(filename, file, optionalUserPrompt)
	if err != nil {
		return nil, c.fail(resourceResume, errors.NewSerializationError(err))
	}

	path := fmt.Sprintf("/api/candidate-resume/update-candidate-resume/%d", id)
	env, err := c.do(ctx, resourceResume, http.MethodPut, path, query, contentType, body)
	if err != nil {
		return nil, err
	}

	var resume models.Resume
	if err := c.decodeData(resourceResume, env, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// GetResume fetches one resume by id.
func (c *Client) GetResume(ctx context.Context, id int64) (*models.Resume, error) {
	var resume models.Resume
	path := fmt.Sprintf("/api/candidate-resume/get-resume/%d", id)
	if err := c.doJSON(ctx, resourceResume, http.MethodGet, path, nil, nil, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// GetCandidateResumes lists the authenticated candidate's resumes.
func (c *Client) GetCandidateResumes(ctx context.Context) ([]models.Resume, error) {
	var resumes []models.Resume
	err := c.doJSON(ctx, resourceResume, http.MethodGet,
		"/api/candidate-resume/get-candidate-resumes", nil, nil, &resumes)
	if err != nil {
		return nil, err
	}
	return resumes, nil
}

// GetAllResumes lists every resume (admin view).
func (c *Client) GetAllResumes(ctx context.Context) ([]models.Resume, error) {
	var resumes []models.Resume
	err := c.doJSON(ctx, resourceResume, http.MethodGet,
		"/api/candidate-resume/get-all-resumes", nil, nil, &resumes)
	if err != nil {
		return nil, err
	}
	return resumes, nil
}

// DeleteResume removes a resume.
func (c *Client) DeleteResume(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/candidate-resume/delete-resume/%d", id)
	return c.doJSON(ctx, resourceResume, http.MethodDelete, path, nil, nil, nil)
}

// multipartBody builds the multipart form the resume endpoints expect:
// an optional resumeFile part and an optional optionalUserPrompt field.
func multipartBody(filename string, file io.Reader, optionalUserPrompt string) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	if file != nil {
		part, err := w.CreateFormFile("resumeFile", filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, "", err
		}
	}
	if optionalUserPrompt != "" {
		if err := w.WriteField("optionalUserPrompt", optionalUserPrompt); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
