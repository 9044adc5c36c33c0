package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/witrix-cli/internal/domain"
)

func newRouteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Inspect dashboard routes and the navigation gate",
	}

	cmd.AddCommand(newRouteListCmd(a), newRouteCheckCmd(a))

	return cmd
}

func newRouteListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the route table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			routes := a.routes.Routes()
			rows := make([][]string, 0, len(routes))
			for _, route := range routes {
				rows = append(rows, []string{route.Path, route.Name, routeFlags(route.Meta), route.Title})
			}
			return writeTable(cmd.OutOrStdout(), []string{"path", "name", "access", "title"}, rows)
		},
	}
}

func newRouteCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Show where navigating to path would lead with the current session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := domain.CleanRoutePath(args[0])
			if err != nil {
				return err
			}

			decision := a.gate.EvaluateTable(a.routes, target, a.session.IsAuthenticated(), a.session.Profile())
			if decision.Allowed() {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "allow")
				return err
			}
			if decision.Reason == "" {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "redirect %s\n", decision.Redirect)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "redirect %s (%s)\n", decision.Redirect, decision.Reason)
			return err
		},
	}
}

func routeFlags(meta domain.RouteMeta) string {
	var flags []string
	if meta.RequiresAuth {
		flags = append(flags, "auth")
	}
	if meta.GuestOnly {
		flags = append(flags, "guest")
	}
	if meta.GuildAdmin {
		flags = append(flags, "guild-admin")
	}
	if len(flags) == 0 {
		return "public"
	}

	return strings.Join(flags, ",")
}
