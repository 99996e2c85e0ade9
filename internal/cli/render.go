// internal/cli/render.go
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"huntboard/internal/models"
	"huntboard/internal/stats"
)

func renderApplications(w io.Writer, apps []models.JobApplication) {
	if len(apps) == 0 {
		fmt.Fprintln(w, "No applications tracked yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMPANY\tTITLE\tSTATUS\tCREATED")
	for _, app := range apps {
		created := ""
		if !app.CreatedAt.IsZero() {
			created = app.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			app.ID, app.CompanyName, app.JobTitle, app.Status, created)
	}
	tw.Flush()
}

func renderApplicationDetail(w io.Writer, app *models.JobApplication) {
	fmt.Fprintf(w, "#%d  %s at %s\n", app.ID, app.JobTitle, app.CompanyName)
	fmt.Fprintf(w, "Status:  %s\n", app.Status)
	if !app.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Created: %s\n", app.CreatedAt.Format("2006-01-02"))
	}
	if app.JobDescription != "" {
		fmt.Fprintf(w, "\n%s\n", app.JobDescription)
	}
	if app.ExtraNotes != "" {
		fmt.Fprintf(w, "\nNotes:\n%s\n", app.ExtraNotes)
	}
	if app.AICoverLetter != "" {
		fmt.Fprintf(w, "\nCover letter:\n%s\n", app.AICoverLetter)
	}
}

func renderResumes(w io.Writer, resumes []models.Resume) {
	if len(resumes) == 0 {
		fmt.Fprintln(w, "No resumes uploaded yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSKILLS")
	for _, r := range resumes {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.ID, r.Title, strings.Join(r.SkillList(), ", "))
	}
	tw.Flush()
}

func renderResumeDetail(w io.Writer, r *models.Resume) {
	fmt.Fprintf(w, "#%d  %s\n", r.ID, r.Title)
	if r.FilePath != "" {
		fmt.Fprintf(w, "File: %s\n", r.FilePath)
	}
	if skills := r.SkillList(); len(skills) > 0 {
		fmt.Fprintf(w, "Skills: %s\n", strings.Join(skills, ", "))
	}
	if r.ResumeSummary != "" {
		fmt.Fprintf(w, "\n%s\n", r.ResumeSummary)
	}
}

func renderProfile(w io.Writer, p *models.CandidateProfile) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Candidate\t#%d\n", p.ID)
	fmt.Fprintf(tw, "Name\t%s %s\n", p.FirstName, p.LastName)
	fmt.Fprintf(tw, "Email\t%s\n", p.Email)
	fmt.Fprintf(tw, "Preferred role\t%s\n", p.PreferredRole)
	fmt.Fprintf(tw, "Phone\t%s %s\n", p.CountryPhoneCode, p.PhoneNumber)
	if p.DateOfBirth != "" {
		fmt.Fprintf(tw, "Date of birth\t%s\n", p.DateOfBirth)
	}
	tw.Flush()
}

func renderDashboard(w io.Writer, s stats.Summary) {
	fmt.Fprintln(w, "Job Search Dashboard")
	fmt.Fprintln(w, "====================")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total applications\t%d\n", s.Total)
	fmt.Fprintf(tw, "Applied\t%d\n", s.Applied)
	fmt.Fprintf(tw, "Interviews\t%d\n", s.Interviews)
	fmt.Fprintf(tw, "Offers\t%d\n", s.Offers)
	fmt.Fprintf(tw, "Rejected\t%d\n", s.Rejected)
	fmt.Fprintf(tw, "Ghosted\t%d\n", s.Ghosted)
	fmt.Fprintf(tw, "Effectively ghosted\t%d\n", s.EffectivelyGhosted)
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Response rate: %d%% (%d of %d submitted)\n",
		s.ResponseRate, s.TotalResponses, s.TotalSubmitted)
}

func renderCoverLetter(w io.Writer, a *models.CoverLetterAnalysis) {
	fmt.Fprintf(w, "Match: %d%%\n", a.MatchPercentage)
	if len(a.MatchingKeywords) > 0 {
		fmt.Fprintf(w, "Matching keywords: %s\n", strings.Join(a.MatchingKeywords, ", "))
	}
	if len(a.MissingKeywords) > 0 {
		fmt.Fprintf(w, "Missing keywords:  %s\n", strings.Join(a.MissingKeywords, ", "))
	}
	if a.CoverLetter != "" {
		fmt.Fprintf(w, "\n%s\n", a.CoverLetter)
	}
	if len(a.InterviewTips) > 0 {
		fmt.Fprintln(w, "\nInterview tips:")
		for _, tip := range a.InterviewTips {
			fmt.Fprintf(w, "  - %s\n", tip)
		}
	}
}
