// internal/stats/stats_test.go
package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"huntboard/internal/models"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func appWith(status models.ApplicationStatus, created time.Time) models.JobApplication {
	return models.JobApplication{Status: status, CreatedAt: created}
}

func TestEffectivelyGhosted(t *testing.T) {
	cutoff := now.AddDate(0, 0, -GhostingWindowDays)

	tests := []struct {
		name     string
		app      models.JobApplication
		expected bool
	}{
		{
			name:     "applied well past the window",
			app:      appWith(models.StatusApplied, now.AddDate(0, 0, -30)),
			expected: true,
		},
		{
			name:     "applied one second past the window",
			app:      appWith(models.StatusApplied, cutoff.Add(-time.Second)),
			expected: true,
		},
		{
			name:     "applied exactly at the window boundary",
			app:      appWith(models.StatusApplied, cutoff),
			expected: false,
		},
		{
			name:     "applied one second inside the window",
			app:      appWith(models.StatusApplied, cutoff.Add(time.Second)),
			expected: false,
		},
		{
			name:     "applied yesterday",
			app:      appWith(models.StatusApplied, now.AddDate(0, 0, -1)),
			expected: false,
		},
		{
			name:     "old but not in applied status",
			app:      appWith(models.StatusInterview, now.AddDate(0, 0, -60)),
			expected: false,
		},
		{
			name:     "old but still only interested",
			app:      appWith(models.StatusInterested, now.AddDate(0, 0, -60)),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EffectivelyGhosted(tt.app, now))
		})
	}
}

func TestComputeEmptyList(t *testing.T) {
	s := Compute(nil, now)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.TotalSubmitted)
	assert.Equal(t, 0, s.TotalResponses)
	assert.Equal(t, 0, s.ResponseRate)
}

func TestComputeResponseRateZeroWhenNothingSubmitted(t *testing.T) {
	apps := []models.JobApplication{
		appWith(models.StatusInterested, now.AddDate(0, 0, -40)),
		appWith(models.StatusInterested, now.AddDate(0, 0, -1)),
	}

	s := Compute(apps, now)

	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 0, s.TotalSubmitted)
	assert.Equal(t, 0, s.ResponseRate)
}

func TestComputeCounts(t *testing.T) {
	recent := now.AddDate(0, 0, -2)
	stale := now.AddDate(0, 0, -20)

	apps := []models.JobApplication{
		appWith(models.StatusInterested, recent),
		appWith(models.StatusInterested, recent),
		appWith(models.StatusApplied, recent),
		appWith(models.StatusApplied, recent),
		appWith(models.StatusApplied, recent),
		appWith(models.StatusApplied, recent),
		appWith(models.StatusApplied, recent),
		appWith(models.StatusApplied, stale), // effectively ghosted
		appWith(models.StatusInterview, recent),
		appWith(models.StatusInterview, recent),
		appWith(models.StatusOffer, recent),
		appWith(models.StatusRejected, recent),
	}

	s := Compute(apps, now)

	assert.Equal(t, 12, s.Total)
	assert.Equal(t, 6, s.Applied)
	assert.Equal(t, 2, s.Interviews)
	assert.Equal(t, 1, s.Offers)
	assert.Equal(t, 1, s.Rejected)
	assert.Equal(t, 0, s.Ghosted)
	assert.Equal(t, 1, s.EffectivelyGhosted)
	assert.Equal(t, 10, s.TotalSubmitted)
	assert.Equal(t, 4, s.ExplicitResponses)
	assert.Equal(t, 5, s.TotalResponses)
	assert.Equal(t, 50, s.ResponseRate)
}

func TestComputeResponseRateRounding(t *testing.T) {
	recent := now.AddDate(0, 0, -2)

	// 1 response out of 3 submitted rounds down, 2 out of 3 rounds up.
	oneOfThree := []models.JobApplication{
		appWith(models.StatusApplied, recent),
		appWith(models.StatusApplied, recent),
		appWith(models.StatusRejected, recent),
	}
	assert.Equal(t, 33, Compute(oneOfThree, now).ResponseRate)

	twoOfThree := []models.JobApplication{
		appWith(models.StatusApplied, recent),
		appWith(models.StatusOffer, recent),
		appWith(models.StatusRejected, recent),
	}
	assert.Equal(t, 67, Compute(twoOfThree, now).ResponseRate)
}

func TestComputeExplicitGhostedIsNotEffectivelyGhosted(t *testing.T) {
	stale := now.AddDate(0, 0, -20)

	s := Compute([]models.JobApplication{appWith(models.StatusGhosted, stale)}, now)

	assert.Equal(t, 1, s.Ghosted)
	assert.Equal(t, 0, s.EffectivelyGhosted)
	assert.Equal(t, 1, s.TotalResponses)
	assert.Equal(t, 100, s.ResponseRate)
}
