package domain

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

const (
	RootPath      = "/"
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
	ServersPath   = "/dashboard/servers"
	SettingsPath  = "/dashboard/settings"
)

type RouteMeta struct {
	RequiresAuth bool
	GuestOnly    bool
	GuildAdmin   bool
}

// Merge ORs the flags: a route inherits the restrictions of its parents.
func (m RouteMeta) Merge(other RouteMeta) RouteMeta {
	return RouteMeta{
		RequiresAuth: m.RequiresAuth || other.RequiresAuth,
		GuestOnly:    m.GuestOnly || other.GuestOnly,
		GuildAdmin:   m.GuildAdmin || other.GuildAdmin,
	}
}

type Route struct {
	Path  string
	Name  string
	Title string
	Meta  RouteMeta
}

// Decision is the outcome of a navigation check. An empty Redirect allows it.
type Decision struct {
	Redirect string
	Reason   string
}

func Allow() Decision {
	return Decision{}
}

func RedirectTo(target, reason string) Decision {
	return Decision{Redirect: target, Reason: reason}
}

func (d Decision) Allowed() bool {
	return d.Redirect == ""
}

type RouteTable struct {
	routes []Route
}

func NewRouteTable(routes ...Route) (RouteTable, error) {
	table := RouteTable{routes: make([]Route, 0, len(routes))}
	seen := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		cleaned, err := CleanRoutePath(route.Path)
		if err != nil {
			return RouteTable{}, err
		}
		if _, ok := seen[cleaned]; ok {
			return RouteTable{}, fmt.Errorf("duplicate route %q", cleaned)
		}
		seen[cleaned] = struct{}{}
		route.Path = cleaned
		table.routes = append(table.routes, route)
	}

	sort.SliceStable(table.routes, func(i, j int) bool {
		return table.routes[i].Path < table.routes[j].Path
	})

	return table, nil
}

// DefaultRouteTable mirrors the dashboard's router.
func DefaultRouteTable() RouteTable {
	table, err := NewRouteTable(
		Route{Path: LoginPath, Name: "login", Title: "Sign in - Witrix Bot", Meta: RouteMeta{GuestOnly: true}},
		Route{Path: DashboardPath, Name: "dashboard", Title: "Dashboard - Witrix Bot", Meta: RouteMeta{RequiresAuth: true}},
		Route{Path: ServersPath, Name: "dashboard-servers", Title: "Servers - Witrix Bot", Meta: RouteMeta{GuildAdmin: true}},
		Route{Path: SettingsPath, Name: "dashboard-settings", Title: "Settings - Witrix Bot", Meta: RouteMeta{GuildAdmin: true}},
	)
	if err != nil {
		panic(err)
	}

	return table
}

func (t RouteTable) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Match returns every route on the path from the root to target, outermost
// first, and their merged metadata.
func (t RouteTable) Match(target string) ([]Route, RouteMeta) {
	cleaned, err := CleanRoutePath(target)
	if err != nil {
		return nil, RouteMeta{}
	}

	var matched []Route
	var meta RouteMeta
	for _, route := range t.routes {
		if !pathHasPrefix(cleaned, route.Path) {
			continue
		}
		matched = append(matched, route)
		meta = meta.Merge(route.Meta)
	}

	return matched, meta
}

func (t RouteTable) Lookup(target string) (Route, error) {
	cleaned, err := CleanRoutePath(target)
	if err != nil {
		return Route{}, err
	}

	for _, route := range t.routes {
		if route.Path == cleaned {
			return route, nil
		}
	}

	return Route{}, fmt.Errorf("%w: %s", ErrUnknownRoute, cleaned)
}

// Title is the title of the innermost matched route.
func (t RouteTable) Title(target string) string {
	matched, _ := t.Match(target)
	for i := len(matched) - 1; i >= 0; i-- {
		if matched[i].Title != "" {
			return matched[i].Title
		}
	}

	return "Witrix Bot"
}

func CleanRoutePath(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("route path is empty")
	}
	if !strings.HasPrefix(trimmed, "/") {
		return "", fmt.Errorf("route path %q must start with /", raw)
	}

	return path.Clean(trimmed), nil
}

func pathHasPrefix(target, prefix string) bool {
	if prefix == RootPath {
		return target == RootPath
	}
	if target == prefix {
		return true
	}

	return strings.HasPrefix(target, prefix+"/")
}
