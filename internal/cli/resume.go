// internal/cli/resume.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewResumeCommand creates the resume command group.
func NewResumeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Manage uploaded resumes",
	}
	cmd.AddCommand(
		newResumeListCommand(rootOpts),
		newResumeShowCommand(rootOpts),
		newResumeUploadCommand(rootOpts),
		newResumeUpdateCommand(rootOpts),
		newResumeDeleteCommand(rootOpts),
	)
	return cmd
}

func newResumeListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your resumes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := a.requireProfile(ctx); err != nil {
				return err
			}
			resumes, err := a.api.GetCandidateResumes(ctx)
			if err != nil {
				return err
			}
			renderResumes(a.out, resumes)
			return nil
		},
	}
}

func newResumeShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one resume with its AI summary",
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
			resume, err := a.api.GetResume(ctx, id)
			if err != nil {
				return err
			}
			renderResumeDetail(a.out, resume)
			return nil
		},
	}
}

func newResumeUploadCommand(rootOpts *RootOptions) *cobra.Command {
	var title, prompt string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a resume for AI summarization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if title == "" {
				title = filepath.Base(path)
			}

			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := a.requireProfile(ctx); err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open resume file: %w", err)
			}
			defer f.Close()

			summary, err := a.api.AddResume(ctx, title, prompt, filepath.Base(path), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Uploaded resume #%d.\n", summary.ID)
			if summary.ProfessionalSummary != "" {
				fmt.Fprintf(a.out, "\nSummary:\n%s\n", summary.ProfessionalSummary)
			}
			if summary.Skills != "" {
				fmt.Fprintf(a.out, "\nSkills: %s\n", summary.Skills)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "resume title (defaults to the file name)")
	cmd.Flags().StringVar(&prompt, "prompt", "", "extra instructions for the AI summary")
	return cmd
}

func newResumeUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var title, resumeURL, file, prompt string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a resume's metadata, optionally replacing the file",
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

			var reader *os.File
			filename := ""
			if file != "" {
				reader, err = os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open resume file: %w", err)
				}
				defer reader.Close()
				filename = filepath.Base(file)
			}

			// A nil *os.File passed as io.Reader is not a nil interface;
			// branch instead of passing reader through.
			if reader != nil {
				updated, err := a.api.UpdateResume(ctx, id, title, resumeURL, filename, reader, prompt)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Updated resume #%d (%s).\n", updated.ID, updated.Title)
				return nil
			}
			updated, err := a.api.UpdateResume(ctx, id, title, resumeURL, "", nil, prompt)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Updated resume #%d (%s).\n", updated.ID, updated.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "resume title")
	cmd.Flags().StringVar(&resumeURL, "url", "", "stored resume URL")
	cmd.Flags().StringVar(&file, "file", "", "replacement resume file (optional)")
	cmd.Flags().StringVar(&prompt, "prompt", "", "extra instructions for the AI summary")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func newResumeDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a resume",
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
			if err := a.api.DeleteResume(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Deleted resume #%d.\n", id)
			return nil
		},
	}
}
