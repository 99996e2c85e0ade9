// Package stats computes the dashboard metrics from an in-memory
// application list. Pure functions, recomputed on every render.
package stats

import (
	"math"
	"time"

	"huntboard/internal/models"
)

// GhostingWindowDays is how long an APPLIED application may sit without a
// status change before it counts as effectively ghosted.
const GhostingWindowDays = 14

// EffectivelyGhosted reports whether app is in APPLIED status and was
// created more than GhostingWindowDays before now (strictly more; an
// application exactly at the boundary does not count).
func EffectivelyGhosted(app models.JobApplication, now time.Time) bool {
	if app.Status != models.StatusApplied {
		return false
	}
	cutoff := now.AddDate(0, 0, -GhostingWindowDays)
	return app.CreatedAt.Before(cutoff)
}

// Summary holds the derived dashboard metrics.
type Summary struct {
	Total      int
	Applied    int
	Interviews int
	Offers     int
	Rejected   int
	Ghosted    int

	EffectivelyGhosted int

	// Response rate inputs:
	// submitted = everything past INTERESTED; responses = explicit
	// responses plus effectively-ghosted APPLIED entries.
	TotalSubmitted    int
	ExplicitResponses int
	TotalResponses    int

	// ResponseRate is round(100 * TotalResponses / TotalSubmitted), or 0
	// when nothing was submitted.
	ResponseRate int
}

// Compute aggregates the list into a Summary.
func Compute(apps []models.JobApplication, now time.Time) Summary {
	var s Summary
	s.Total = len(apps)

	for _, app := range apps {
		switch app.Status {
		case models.StatusApplied:
			s.Applied++
		case models.StatusInterview:
			s.Interviews++
		case models.StatusOffer:
			s.Offers++
		case models.StatusRejected:
			s.Rejected++
		case models.StatusGhosted:
			s.Ghosted++
		}

		if EffectivelyGhosted(app, now) {
			s.EffectivelyGhosted++
		}
		if app.Status.Submitted() {
			s.TotalSubmitted++
		}
		if app.Status.Responded() {
			s.ExplicitResponses++
		}
	}

	s.TotalResponses = s.ExplicitResponses + s.EffectivelyGhosted
	if s.TotalSubmitted > 0 {
		s.ResponseRate = int(math.Round(float64(s.TotalResponses) / float64(s.TotalSubmitted) * 100))
	}
	return s
}
