// internal/cli/dashboard.go
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"huntboard/internal/stats"
)

// NewDashboardCommand creates the dashboard command.
func NewDashboardCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show job search statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := a.requireProfile(ctx); err != nil {
				return err
			}

			apps, err := a.api.GetCandidateJobApplications(ctx, a.session.CandidateID())
			if err != nil {
				return err
			}

			renderDashboard(a.out, stats.Compute(apps, time.Now()))
			return nil
		},
	}
}
