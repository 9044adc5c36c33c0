package application

import (
	"testing"

	"github.com/bnema/witrix-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRouteGateEvaluate(t *testing.T) {
	gate := NewRouteGate(DefaultRouteGateConfig())
	table := domain.DefaultRouteTable()

	discordNoAdmin := discordProfile()
	discordAdmin := discordProfile("10")
	admin := domain.Profile{Username: "root", AuthType: domain.AuthTypeAdmin}

	tests := []struct {
		name     string
		target   string
		hasToken bool
		profile  *domain.Profile
		want     domain.Decision
	}{
		{name: "root without token", target: "/", want: domain.RedirectTo("/login", "")},
		{name: "root with token", target: "/", hasToken: true, want: domain.RedirectTo("/dashboard", "")},
		{name: "dashboard without token", target: "/dashboard", want: domain.RedirectTo("/login", ReasonSignInRequired)},
		{name: "nested child inherits auth", target: "/dashboard/servers", want: domain.RedirectTo("/login", ReasonSignInRequired)},
		{name: "dashboard with token", target: "/dashboard", hasToken: true, want: domain.Allow()},
		{name: "login as guest", target: "/login", want: domain.Allow()},
		{name: "login while signed in", target: "/login", hasToken: true, want: domain.RedirectTo("/dashboard", ReasonAlreadySignedIn)},
		{name: "servers for discord without admin", target: "/dashboard/servers", hasToken: true, profile: &discordNoAdmin, want: domain.RedirectTo("/dashboard", ReasonGuildAdmin)},
		{name: "settings for discord without admin", target: "/dashboard/settings/", hasToken: true, profile: &discordNoAdmin, want: domain.RedirectTo("/dashboard", ReasonGuildAdmin)},
		{name: "servers for discord admin", target: "/dashboard/servers", hasToken: true, profile: &discordAdmin, want: domain.Allow()},
		{name: "servers for password admin", target: "/dashboard/servers", hasToken: true, profile: &admin, want: domain.Allow()},
		{name: "servers fails open without profile", target: "/dashboard/servers", hasToken: true, want: domain.Allow()},
		{name: "unknown route allowed", target: "/elsewhere", want: domain.Allow()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gate.EvaluateTable(table, tt.target, tt.hasToken, tt.profile)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRouteGateUsesConfiguredAdminPaths(t *testing.T) {
	gate := NewRouteGate(RouteGateConfig{GuildAdminPaths: []string{"/dashboard/levels"}})
	profile := discordProfile()

	decision := gate.Evaluate("/dashboard/levels", domain.RouteMeta{RequiresAuth: true}, true, &profile)
	assert.Equal(t, domain.RedirectTo(domain.DashboardPath, ReasonGuildAdmin), decision)

	decision = gate.Evaluate("/dashboard/levels/extra", domain.RouteMeta{RequiresAuth: true}, true, &profile)
	assert.True(t, decision.Allowed())
}

func TestRouteGateRuleOrder(t *testing.T) {
	gate := NewRouteGate(DefaultRouteGateConfig())

	// A route marked both requires-auth and guest-only resolves by the first rule.
	meta := domain.RouteMeta{RequiresAuth: true, GuestOnly: true}
	assert.Equal(t, domain.RedirectTo("/login", ReasonSignInRequired), gate.Evaluate("/odd", meta, false, nil))
	assert.Equal(t, domain.RedirectTo("/dashboard", ReasonAlreadySignedIn), gate.Evaluate("/odd", meta, true, nil))
}
