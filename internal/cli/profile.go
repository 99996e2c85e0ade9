// internal/cli/profile.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"huntboard/internal/models"
	"huntboard/internal/store"
)

// NewProfileCommand creates the profile command group.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the candidate profile",
	}
	cmd.AddCommand(
		newProfileCreateCommand(rootOpts),
		newProfileShowCommand(rootOpts),
		newProfileActivateCommand(rootOpts),
		newProfileDeleteCommand(rootOpts),
	)
	return cmd
}

func newProfileCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var input models.CandidateProfileInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the candidate profile (onboarding)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := a.requireAuth(ctx); err != nil {
				return err
			}
			if input.Email == "" {
				input.Email = a.session.Email()
			}

			profile, err := a.session.CreateProfile(ctx, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Profile created (candidate #%d).\n", profile.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&input.Email, "email", "", "email (defaults to the login email)")
	cmd.Flags().StringVar(&input.PreferredRole, "role", "", "preferred role")
	cmd.Flags().StringVar(&input.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().StringVar(&input.CountryPhoneCode, "country-code", "", "country phone code, e.g. +49")
	cmd.Flags().StringVar(&input.DateOfBirth, "dob", "", "date of birth (optional)")

	return cmd
}

func newProfileShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved candidate profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			if err := a.requireProfile(cmd.Context()); err != nil {
				return err
			}
			renderProfile(a.out, a.session.Profile())
			return nil
		},
	}
}

func newProfileActivateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "activate",
		Short: "Toggle the candidate's active flag",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := a.requireProfile(ctx); err != nil {
				return err
			}
			profile, err := a.api.UpdateCandidateActive(ctx, a.session.CandidateID())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Candidate #%d active flag toggled.\n", profile.ID)
			return nil
		},
	}
}

func newProfileDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the candidate profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete without --yes")
			}
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := a.requireProfile(ctx); err != nil {
				return err
			}
			id := a.session.CandidateID()
			if err := a.api.DeleteCandidate(ctx, id); err != nil {
				return err
			}
			// The cached id now points at nothing.
			if err := a.store.Remove(store.KeyCandidateID); err != nil {
				a.logger.Warn("failed to drop cached candidate id", map[string]interface{}{
					"error": err.Error(),
				})
			}
			fmt.Fprintf(a.out, "Candidate #%d deleted.\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}
