package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/witrix-cli/internal/application"
	"github.com/bnema/witrix-cli/internal/domain"
)

// redirectError is a navigation the route gate refused. handled redirects
// already rendered their target and exit cleanly.
type redirectError struct {
	from      string
	decision  domain.Decision
	loginPath string
	handled   bool
}

func (e *redirectError) Error() string {
	reason := e.decision.Reason
	if e.decision.Redirect == e.loginPath {
		if reason == "" {
			reason = application.ReasonSignInRequired
		}
		return reason + ": run `wx login`"
	}
	if reason == "" {
		return fmt.Sprintf("redirected from %s to %s", e.from, e.decision.Redirect)
	}

	return reason
}

// guard runs the route gate for cmd's route annotation.
func (a *app) guard(cmd *cobra.Command) error {
	route := cmd.Annotations[annotationRoute]
	if route == "" {
		return nil
	}

	decision := a.gate.EvaluateTable(a.routes, route, a.session.IsAuthenticated(), a.session.Profile())
	if decision.Allowed() {
		return nil
	}
	a.logger.Debug("navigation redirected", "from", route, "to", decision.Redirect, "reason", decision.Reason)

	redirect := &redirectError{from: route, decision: decision, loginPath: a.gate.Config().LoginPath}
	if decision.Redirect != a.gate.Config().LandingPath || decision.Reason == application.ReasonGuildAdmin {
		return redirect
	}

	// Landing on the dashboard is a normal outcome: show it.
	if err := a.writeStatus(cmd, decision.Redirect, decision.Reason); err != nil {
		return err
	}
	redirect.handled = true
	return redirect
}
