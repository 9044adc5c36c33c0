package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/witrix-cli/internal/domain"
)

const (
	// annotationRoute names the dashboard route a command stands for; the
	// route gate runs against it before the command.
	annotationRoute = "route"
	// annotationOffline marks commands that run without config or session.
	annotationOffline = "offline"
)

func Execute() error {
	root, a := newRoot()
	return run(root, a)
}

func newRootCmd() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := newApp()

	rootCmd := &cobra.Command{
		Use:           "wx",
		Short:         "Witrix dashboard client",
		Long:          "wx signs in to the Witrix bot dashboard API, keeps the session and guild selection per API origin, and administers guild settings and member levels from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationOffline] == "true" {
				return nil
			}
			if err := a.wire(cmd); err != nil {
				return err
			}
			return a.guard(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.flushToasts(cmd)
		},
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "Config file (default ~/.witrix/config.toml)")
	rootCmd.PersistentFlags().String(flagAPIURL, "", "Dashboard API base URL (overrides api.base_url)")
	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "Log API and session events to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(a),
		newLogoutCmd(a),
		newStatusCmd(a),
		newGuildCmd(a),
		newRouteCmd(a),
	)

	return rootCmd, a
}

// run executes root and prints the failure the way the user should see it.
// A redirect that already rendered its landing view is not a failure.
func run(root *cobra.Command, a *app) error {
	defer a.close()

	err := root.Execute()
	if err == nil {
		return nil
	}

	var redirect *redirectError
	if errors.As(err, &redirect) && redirect.handled {
		return nil
	}

	_, _ = fmt.Fprintln(root.ErrOrStderr(), "Error:", errorText(err))
	return err
}

func errorText(err error) string {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}

	return err.Error()
}

func routeAnnotation(route string) map[string]string {
	return map[string]string{annotationRoute: route}
}
