package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	statusadapter "github.com/bnema/witrix-cli/internal/adapters/render/status"
	"github.com/bnema/witrix-cli/internal/application"
	"github.com/bnema/witrix-cli/internal/domain"
)

type statusJSON struct {
	API             string            `json:"api"`
	Route           string            `json:"route"`
	Title           string            `json:"title"`
	Authenticated   bool              `json:"authenticated"`
	Username        string            `json:"username,omitempty"`
	AuthType        domain.AuthType   `json:"auth_type,omitempty"`
	IsDiscordUser   bool              `json:"is_discord_user"`
	GuildAdmin      bool              `json:"guild_admin"`
	AllowedGuildIDs domain.GuildIDSet `json:"allowed_guild_ids"`
	AdminGuildIDs   domain.GuildIDSet `json:"admin_guild_ids"`
	DefaultGuildID  *domain.GuildID   `json:"default_guild_id"`
	ProfileExpires  string            `json:"profile_expires_at,omitempty"`
	Guilds          []domain.Guild    `json:"guilds"`
	SelectedGuildID *domain.GuildID   `json:"selected_guild_id"`
}

func newStatusCmd(a *app) *cobra.Command {
	var (
		asJSON  bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:         "status",
		Aliases:     []string{"whoami", "dashboard"},
		Short:       "Show the signed-in user and the guild selection",
		Annotations: routeAnnotation(domain.DashboardPath),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if refresh {
				if err := a.session.RefreshProfile(cmd.Context()); err != nil {
					return err
				}
			}
			if asJSON {
				a.guilds.LoadGuilds(cmd.Context())
				return writeJSON(cmd, a.statusJSON(domain.DashboardPath))
			}
			return a.writeStatus(cmd, domain.DashboardPath, "")
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print status as JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Reload the profile from the server first")

	return cmd
}

// writeStatus renders the dashboard landing view titled after route. A
// failed guild fetch shows as an empty list.
func (a *app) writeStatus(cmd *cobra.Command, route, notice string) error {
	snapshot := statusadapter.Snapshot{
		Title:   a.routes.Title(route),
		BaseURL: a.baseURL,
		Notice:  notice,
	}

	if a.session.IsAuthenticated() {
		a.guilds.LoadGuilds(cmd.Context())
		snapshot.GuildsLoaded = !a.interceptor.Fired()
	}
	snapshot.Session = a.session.Session()
	snapshot.Guilds = a.guilds.Context()

	rendered, err := a.statusRenderer(snapshot, statusadapter.RenderOptions{
		Now:      a.clock.Now(),
		CacheTTL: application.ProfileCacheTTL,
	})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func (a *app) statusJSON(route string) statusJSON {
	session := a.session.Session()
	guildCtx := a.guilds.Context()

	out := statusJSON{
		API:             a.baseURL,
		Route:           route,
		Title:           a.routes.Title(route),
		Authenticated:   session.Authenticated(),
		GuildAdmin:      a.session.HasGuildAdminAccess(),
		Guilds:          guildCtx.Guilds,
		SelectedGuildID: guildCtx.SelectedGuildID,
	}
	if out.Guilds == nil {
		out.Guilds = []domain.Guild{}
	}
	if profile := session.Profile; profile != nil {
		out.Username = profile.Username
		out.AuthType = profile.AuthType
		out.IsDiscordUser = profile.IsDiscordUser
		out.AllowedGuildIDs = profile.AllowedGuildIDs
		out.AdminGuildIDs = profile.AdminGuildIDs
		out.DefaultGuildID = profile.DefaultGuildID
		if !profile.ExpiresAt.IsZero() {
			out.ProfileExpires = profile.ExpiresAt.UTC().Format(time.RFC3339)
		}
	}

	return out
}
