package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/witrix-cli/internal/adapters/prompt"
	"github.com/bnema/witrix-cli/internal/domain"
)

func newLoginCmd(a *app) *cobra.Command {
	var (
		username   string
		tokenStdin bool
	)

	cmd := &cobra.Command{
		Use:         "login",
		Short:       "Sign in to the dashboard API",
		Long:        "Sign in with a dashboard username and password. The password is read without echo on a terminal, or as the next line of stdin otherwise.",
		Annotations: routeAnnotation(domain.LoginPath),
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
			if tokenStdin {
				return adoptToken(cmd, a, p)
			}

			username = strings.TrimSpace(username)
			if username == "" {
				value, err := p.Line("Username: ")
				if err != nil {
					return err
				}
				username = strings.TrimSpace(value)
			}
			if username == "" {
				return fmt.Errorf("username is required")
			}

			password, err := p.Password("Password: ")
			if err != nil {
				return err
			}
			if password == "" {
				return fmt.Errorf("password is required")
			}

			if err := withSpinner(cmd.Context(), cmd.OutOrStdout(), "Signing in...", func(ctx context.Context) error {
				return a.session.Login(ctx, username, password)
			}); err != nil {
				return err
			}

			return a.writeSignedIn(cmd, username)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Dashboard username (prompted when empty)")
	cmd.Flags().BoolVar(&tokenStdin, "token-stdin", false, "Read an access token (e.g. from a Discord sign-in) from stdin instead of a password")
	cmd.MarkFlagsMutuallyExclusive("username", "token-stdin")

	return cmd
}

func adoptToken(cmd *cobra.Command, a *app, p *prompt.Prompter) error {
	token, err := p.Password("Access token: ")
	if err != nil {
		return err
	}

	if err := withSpinner(cmd.Context(), cmd.OutOrStdout(), "Checking token...", func(ctx context.Context) error {
		return a.session.AdoptToken(ctx, token)
	}); err != nil {
		return err
	}

	return a.writeSignedIn(cmd, "")
}

func (a *app) writeSignedIn(cmd *cobra.Command, fallback string) error {
	profile := a.session.Profile()
	if profile == nil {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", fallback)
		return err
	}

	a.notify("Signed in")
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", profile.Username, profile.AuthType)
	return err
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the cached profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			wasSignedIn := a.session.IsAuthenticated()
			if err := a.session.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("sign out: %w", err)
			}

			if !wasSignedIn {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return err
			}
			a.notify("Signed out")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return err
		},
	}
}
