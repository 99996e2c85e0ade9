// internal/models/resume.go
package models

import "strings"

// Resume is an uploaded resume with its AI-generated summary.
type Resume struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	ResumeSummary string `json:"resumeSummary"`
	Skills        string `json:"skills"` // comma-joined, as the API stores it
	FilePath      string `json:"filePath"`
}

// SkillList splits the comma-joined skills string into trimmed entries.
func (r Resume) SkillList() []string {
	if r.Skills == "" {
		return nil
	}
	parts := strings.Split(r.Skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ResumeSummary is the response returned by the upload endpoint, which runs
// AI summarization on the uploaded file.
type ResumeSummary struct {
	ID                  int64  `json:"id"`
	ProfessionalSummary string `json:"professionalSummary"`
	Skills              string `json:"skills"`
	ResumeURL           string `json:"resumeUrl"`
}
