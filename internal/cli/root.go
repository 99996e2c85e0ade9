// Package cli implements the huntboard command tree. Commands restore the
// persisted session before touching candidate data; screens that need a
// candidate profile are gated behind profile resolution.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"huntboard/internal/api"
	"huntboard/internal/common/config"
	"huntboard/internal/common/logger"
	"huntboard/internal/session"
	"huntboard/internal/store"
)

// RootOptions holds the persistent flags shared by every command.
type RootOptions struct {
	ConfigFile string
	Verbose    bool

	Stdout io.Writer
	Stderr io.Writer
}

// NewRootCommand creates the huntboard root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Stdout: os.Stdout, Stderr: os.Stderr}

	cmd := &cobra.Command{
		Use:   "huntboard",
		Short: "Track job applications from the terminal",
		Long: `huntboard is a terminal dashboard for tracking job applications.

It talks to a remote job-tracker API and keeps a local session file, so
logging in once is enough until the token expires.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		NewLoginCommand(opts),
		NewSignupCommand(opts),
		NewLogoutCommand(opts),
		NewProfileCommand(opts),
		NewAppsCommand(opts),
		NewResumeCommand(opts),
		NewCoverLetterCommand(opts),
		NewDashboardCommand(opts),
		NewHealthCommand(opts),
	)

	return cmd
}

// app bundles the wired dependencies a command needs.
type app struct {
	cfg     *config.Config
	logger  logger.Logger
	store   *store.Store
	api     *api.Client
	session *session.Manager
	out     io.Writer
}

func newApp(opts *RootOptions) (*app, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigFile != "" {
		cfg, err = config.LoadFromFile(opts.ConfigFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if opts.Verbose {
		level = "debug"
	}
	log := logger.NewStructured(level, cfg.Logging.Format)

	st, err := store.Open(afero.NewOsFs(), cfg.State.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}

	client := api.NewClient(cfg.API.BaseURL, config.GetDuration(cfg.API.Timeout), st.Token, log)
	sess := session.NewManager(client, st, log)

	return &app{
		cfg:     cfg,
		logger:  log,
		store:   st,
		api:     client,
		session: sess,
		out:     opts.Stdout,
	}, nil
}

// requireAuth restores the session and fails when no valid token exists.
func (a *app) requireAuth(ctx context.Context) error {
	if err := a.session.Restore(ctx); err != nil {
		return err
	}
	if a.session.State() < session.StateAuthenticated {
		return fmt.Errorf("not logged in: run 'huntboard login' first")
	}
	return nil
}

// requireProfile additionally demands a resolved candidate profile.
// Application and resume screens are gated behind this.
func (a *app) requireProfile(ctx context.Context) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	if a.session.State() != session.StateProfileResolved {
		return fmt.Errorf("no candidate profile yet: run 'huntboard profile create' to finish onboarding")
	}
	return nil
}
