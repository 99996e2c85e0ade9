// internal/models/application.go
package models

import "time"

// ApplicationStatus is the lifecycle status of a job application as the
// remote API defines it.
type ApplicationStatus string

const (
	StatusInterested ApplicationStatus = "INTERESTED"
	StatusApplied    ApplicationStatus = "APPLIED"
	StatusInterview  ApplicationStatus = "INTERVIEW"
	StatusOffer      ApplicationStatus = "OFFER"
	StatusRejected   ApplicationStatus = "REJECTED"
	StatusGhosted    ApplicationStatus = "GHOSTED"
)

// AllStatuses lists every status the remote API accepts, in pipeline order.
var AllStatuses = []ApplicationStatus{
	StatusInterested,
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusRejected,
	StatusGhosted,
}

// IsValid reports whether s is one of the statuses the API accepts.
func (s ApplicationStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Submitted reports whether the application left the INTERESTED stage,
// i.e. it was actually sent to an employer.
func (s ApplicationStatus) Submitted() bool {
	return s.IsValid() && s != StatusInterested
}

// Responded reports whether the status itself records an employer response
// (positive or negative). APPLIED is not a response.
func (s ApplicationStatus) Responded() bool {
	switch s {
	case StatusInterview, StatusOffer, StatusRejected, StatusGhosted:
		return true
	default:
		return false
	}
}

// JobApplication is one tracked application owned by a candidate profile.
type JobApplication struct {
	ID             int64             `json:"id"`
	CompanyName    string            `json:"companyName"`
	JobTitle       string            `json:"jobTitle"`
	JobDescription string            `json:"jobDescription"`
	Status         ApplicationStatus `json:"status"`
	CandidateID    int64             `json:"candidateId"`
	AICoverLetter  string            `json:"aiCoverLetter,omitempty"`
	ExtraNotes     string            `json:"extraNotes,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// JobApplicationInput is the payload for creating or editing an application.
type JobApplicationInput struct {
	CompanyName    string            `json:"companyName"`
	JobTitle       string            `json:"jobTitle"`
	JobDescription string            `json:"jobDescription"`
	Status         ApplicationStatus `json:"status"`
	CandidateID    int64             `json:"candidateId"`
	ExtraNotes     string            `json:"extraNotes,omitempty"`
}
