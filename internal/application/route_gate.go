package application

import (
	"github.com/bnema/witrix-cli/internal/domain"
)

const (
	ReasonSignInRequired  = "sign in required"
	ReasonAlreadySignedIn = "already signed in"
	ReasonGuildAdmin      = "guild admin access required"
)

type RouteGateConfig struct {
	LoginPath       string
	LandingPath     string
	GuildAdminPaths []string
}

func DefaultRouteGateConfig() RouteGateConfig {
	return RouteGateConfig{
		LoginPath:       domain.LoginPath,
		LandingPath:     domain.DashboardPath,
		GuildAdminPaths: []string{domain.ServersPath, domain.SettingsPath},
	}
}

// RouteGate decides whether a navigation may proceed. It is pure: the
// caller supplies the token presence and the cached profile.
type RouteGate struct {
	cfg        RouteGateConfig
	adminPaths map[string]struct{}
}

func NewRouteGate(cfg RouteGateConfig) *RouteGate {
	defaults := DefaultRouteGateConfig()
	if cfg.LoginPath == "" {
		cfg.LoginPath = defaults.LoginPath
	}
	if cfg.LandingPath == "" {
		cfg.LandingPath = defaults.LandingPath
	}

	adminPaths := make(map[string]struct{}, len(cfg.GuildAdminPaths))
	for _, raw := range cfg.GuildAdminPaths {
		cleaned, err := domain.CleanRoutePath(raw)
		if err != nil {
			continue
		}
		adminPaths[cleaned] = struct{}{}
	}

	return &RouteGate{cfg: cfg, adminPaths: adminPaths}
}

func (g *RouteGate) Config() RouteGateConfig {
	return g.cfg
}

// Evaluate applies the rules in order; the first that fires wins.
func (g *RouteGate) Evaluate(target string, meta domain.RouteMeta, hasToken bool, cached *domain.Profile) domain.Decision {
	cleaned, err := domain.CleanRoutePath(target)
	if err != nil {
		cleaned = target
	}

	if cleaned == domain.RootPath {
		if hasToken {
			return domain.RedirectTo(g.cfg.LandingPath, "")
		}
		return domain.RedirectTo(g.cfg.LoginPath, "")
	}

	if meta.RequiresAuth && !hasToken {
		return domain.RedirectTo(g.cfg.LoginPath, ReasonSignInRequired)
	}

	if meta.GuestOnly && hasToken {
		return domain.RedirectTo(g.cfg.LandingPath, ReasonAlreadySignedIn)
	}

	if g.isGuildAdminRoute(cleaned, meta) && hasToken && cached != nil {
		if cached.IsDiscord() && cached.AdminGuildIDs.Len() == 0 {
			return domain.RedirectTo(g.cfg.LandingPath, ReasonGuildAdmin)
		}
	}

	return domain.Allow()
}

// EvaluateTable resolves target's metadata from table before evaluating.
func (g *RouteGate) EvaluateTable(table domain.RouteTable, target string, hasToken bool, cached *domain.Profile) domain.Decision {
	_, meta := table.Match(target)
	return g.Evaluate(target, meta, hasToken, cached)
}

func (g *RouteGate) isGuildAdminRoute(target string, meta domain.RouteMeta) bool {
	if meta.GuildAdmin {
		return true
	}
	_, ok := g.adminPaths[target]
	return ok
}
