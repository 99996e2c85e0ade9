// internal/models/ai.go
package models

// CoverLetterRequest is the body for the AI cover letter endpoint. The
// candidate, resume and job application ids travel as query parameters.
type CoverLetterRequest struct {
	Title              string `json:"title"`
	OptionalUserPrompt string `json:"optionalUserPrompt,omitempty"`
}

// CoverLetterAnalysis is the AI generation response: a cover letter plus a
// keyword match analysis against the job description.
type CoverLetterAnalysis struct {
	MatchPercentage  int      `json:"matchPercentage"`
	MatchingKeywords []string `json:"matchingKeywords"`
	MissingKeywords  []string `json:"missingKeywords"`
	CoverLetter      string   `json:"coverLetter"`
	InterviewTips    []string `json:"interviewTips"`
}
