// internal/cli/apps.go
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"huntboard/internal/models"
)

// NewAppsCommand creates the apps command group.
func NewAppsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apps",
		Aliases: []string{"applications"},
		Short:   "Manage tracked job applications",
	}
	cmd.AddCommand(
		newAppsListCommand(rootOpts),
		newAppsShowCommand(rootOpts),
		newAppsAddCommand(rootOpts),
		newAppsEditCommand(rootOpts),
		newAppsStatusCommand(rootOpts),
		newAppsDeleteCommand(rootOpts),
	)
	return cmd
}

func newAppsListCommand(rootOpts *RootOptions) *cobra.Command {
	var statusFilter, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your job applications",
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

			if statusFilter != "" {
				status := models.ApplicationStatus(strings.ToUpper(statusFilter))
				if !status.IsValid() {
					return fmt.Errorf("unknown status %q (one of %s)", statusFilter, statusNames())
				}
				apps = filterByStatus(apps, status)
			}
			if search != "" {
				apps = filterBySearch(apps, search)
			}

			renderApplications(a.out, apps)
			return nil
		},
	}

	cmd.Flags().StringVar(&statusFilter, "status", "", "only show applications with this status")
	cmd.Flags().StringVar(&search, "search", "", "filter by company or title substring")
	return cmd
}

func newAppsShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one application in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := a.requireProfile(ctx); err != nil {
				return err
			}
			app, err := a.api.GetJobApplication(ctx, id)
			if err != nil {
				return err
			}
			renderApplicationDetail(a.out, app)
			return nil
		},
	}
}

func newAppsAddCommand(rootOpts *RootOptions) *cobra.Command {
	var input models.JobApplicationInput
	var status string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Track a new job application",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := models.ApplicationStatus(strings.ToUpper(status))
			if !st.IsValid() {
				return fmt.Errorf("unknown status %q (one of %s)", status, statusNames())
			}

			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := a.requireProfile(ctx); err != nil {
				return err
			}

			input.Status = st
			input.CandidateID = a.session.CandidateID()
			app, err := a.api.AddJobApplication(ctx, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Tracking %s at %s (#%d, %s).\n",
				app.JobTitle, app.CompanyName, app.ID, app.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.CompanyName, "company", "", "company name")
	cmd.Flags().StringVar(&input.JobTitle, "title", "", "job title")
	cmd.Flags().StringVar(&input.JobDescription, "description", "", "job description")
	cmd.Flags().StringVar(&status, "status", string(models.StatusInterested), "initial status")
	cmd.Flags().StringVar(&input.ExtraNotes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newAppsEditCommand(rootOpts *RootOptions) *cobra.Command {
	var company, title, description, notes string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an application's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := a.requireProfile(ctx); err != nil {
				return err
			}

			current, err := a.api.GetJobApplication(ctx, id)
			if err != nil {
				return err
			}
			input := models.JobApplicationInput{
				CompanyName:    current.CompanyName,
				JobTitle:       current.JobTitle,
				JobDescription: current.JobDescription,
				Status:         current.Status,
				CandidateID:    current.CandidateID,
				ExtraNotes:     current.ExtraNotes,
			}
			if cmd.Flags().Changed("company") {
				input.CompanyName = company
			}
			if cmd.Flags().Changed("title") {
				input.JobTitle = title
			}
			if cmd.Flags().Changed("description") {
				input.JobDescription = description
			}
			if cmd.Flags().Changed("notes") {
				input.ExtraNotes = notes
			}

			updated, err := a.api.UpdateJobApplication(ctx, id, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Updated #%d: %s at %s.\n", updated.ID, updated.JobTitle, updated.CompanyName)
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&title, "title", "", "job title")
	cmd.Flags().StringVar(&description, "description", "", "job description")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}

func newAppsStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change an application's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status := models.ApplicationStatus(strings.ToUpper(args[1]))
			if !status.IsValid() {
				return fmt.Errorf("unknown status %q (one of %s)", args[1], statusNames())
			}

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
			if _, err := a.api.UpdateJobApplicationStatus(ctx, id, status); err != nil {
				return err
			}

			// Patch the already-fetched list instead of refetching it.
			renderApplications(a.out, patchApplicationStatus(apps, id, status))
			return nil
		},
	}
}

func newAppsDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Stop tracking an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := a.requireProfile(ctx); err != nil {
				return err
			}
			if err := a.api.DeleteJobApplication(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Deleted application #%d.\n", id)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func statusNames() string {
	names := make([]string, len(models.AllStatuses))
	for i, s := range models.AllStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func filterByStatus(apps []models.JobApplication, status models.ApplicationStatus) []models.JobApplication {
	out := make([]models.JobApplication, 0, len(apps))
	for _, app := range apps {
		if app.Status == status {
			out = append(out, app)
		}
	}
	return out
}

func filterBySearch(apps []models.JobApplication, search string) []models.JobApplication {
	needle := strings.ToLower(search)
	out := make([]models.JobApplication, 0, len(apps))
	for _, app := range apps {
		if strings.Contains(strings.ToLower(app.CompanyName), needle) ||
			strings.Contains(strings.ToLower(app.JobTitle), needle) {
			out = append(out, app)
		}
	}
	return out
}
