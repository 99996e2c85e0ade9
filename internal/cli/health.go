// internal/cli/health.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHealthCommand creates the health command. It needs no session.
func NewHealthCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the remote API is alive",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			if err := a.api.Alive(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "API at %s is alive.\n", a.cfg.API.BaseURL)
			return nil
		},
	}
}
