// internal/cli/ai.go
package cli

import (
	"github.com/spf13/cobra"

	"huntboard/internal/models"
)

// NewCoverLetterCommand creates the cover-letter command.
func NewCoverLetterCommand(rootOpts *RootOptions) *cobra.Command {
	var resumeID int64
	var title, prompt string

	cmd := &cobra.Command{
		Use:   "cover-letter <application-id>",
		Short: "Generate an AI cover letter for an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, err := parseID(args[0])
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

			analysis, err := a.api.GenerateCoverLetter(ctx, a.session.CandidateID(), resumeID, appID,
				models.CoverLetterRequest{Title: title, OptionalUserPrompt: prompt})
			if err != nil {
				return err
			}
			renderCoverLetter(a.out, analysis)
			return nil
		},
	}

	cmd.Flags().Int64Var(&resumeID, "resume", 0, "resume id to base the letter on")
	cmd.Flags().StringVar(&title, "title", "", "letter title")
	cmd.Flags().StringVar(&prompt, "prompt", "", "extra instructions for the AI")
	_ = cmd.MarkFlagRequired("resume")

	return cmd
}
