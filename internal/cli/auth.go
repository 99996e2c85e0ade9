// internal/cli/auth.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"huntboard/internal/session"
)

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the remote API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			if err := a.session.Login(cmd.Context(), email, password); err != nil {
				return err
			}

			if a.session.State() == session.StateProfileResolved {
				fmt.Fprintf(a.out, "Logged in as %s (candidate #%d)\n",
					a.session.Email(), a.session.CandidateID())
				return nil
			}
			fmt.Fprintf(a.out, "Logged in as %s\n", a.session.Email())
			fmt.Fprintln(a.out, "No candidate profile found. Run 'huntboard profile create' to finish onboarding.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewSignupCommand creates the signup command.
func NewSignupCommand(rootOpts *RootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			if err := a.session.Signup(cmd.Context(), email, password); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Account created. Run 'huntboard login' to sign in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewLogoutCommand creates the logout command. Logout never needs the
// network; it only clears local state.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			a.session.Logout()
			fmt.Fprintln(a.out, "Logged out.")
			return nil
		},
	}
}
