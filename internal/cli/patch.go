// internal/cli/patch.go
package cli

import "huntboard/internal/models"

// patchApplicationStatus returns a copy of apps with the status of the
// application matching id replaced. All other entries pass through
// untouched; an unknown id yields an unchanged copy.
func patchApplicationStatus(apps []models.JobApplication, id int64, status models.ApplicationStatus) []models.JobApplication {
	out := make([]models.JobApplication, len(apps))
	copy(out, apps)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
		}
	}
	return out
}
