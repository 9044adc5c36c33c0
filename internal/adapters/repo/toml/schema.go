package toml

import (
	"fmt"

	"github.com/bnema/witrix-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Routes  []routeSchema `toml:"routes"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported routes schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type routeSchema struct {
	Path         string `toml:"path"`
	Name         string `toml:"name,omitempty"`
	Title        string `toml:"title,omitempty"`
	RequiresAuth bool   `toml:"requires_auth,omitempty"`
	GuestOnly    bool   `toml:"guest_only,omitempty"`
	GuildAdmin   bool   `toml:"guild_admin,omitempty"`
}

func toSchema(route domain.Route) routeSchema {
	return routeSchema{
		Path:         route.Path,
		Name:         route.Name,
		Title:        route.Title,
		RequiresAuth: route.Meta.RequiresAuth,
		GuestOnly:    route.Meta.GuestOnly,
		GuildAdmin:   route.Meta.GuildAdmin,
	}
}

func fromSchema(route routeSchema) domain.Route {
	return domain.Route{
		Path:  route.Path,
		Name:  route.Name,
		Title: route.Title,
		Meta: domain.RouteMeta{
			RequiresAuth: route.RequiresAuth,
			GuestOnly:    route.GuestOnly,
			GuildAdmin:   route.GuildAdmin,
		},
	}
}
