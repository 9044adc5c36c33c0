package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/witrix-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Snapshot is everything the status screen shows.
type Snapshot struct {
	Title   string
	BaseURL string
	Session domain.Session
	Guilds  domain.GuildContext
	// GuildsLoaded is false when the guild list was not fetched or failed.
	GuildsLoaded bool
	Notice       string
}

type RenderOptions struct {
	Now      time.Time
	CacheTTL time.Duration
}

func renderView(snapshot Snapshot, opts RenderOptions, s styles) string {
	title := snapshot.Title
	if title == "" {
		title = "Witrix Bot"
	}

	lines := []string{s.title.Render(title)}
	if snapshot.BaseURL != "" {
		lines = append(lines, s.header.Render("api: "+snapshot.BaseURL))
	}
	if snapshot.Notice != "" {
		lines = append(lines, s.notice.Render(snapshot.Notice))
	}

	if !snapshot.Session.Authenticated() {
		lines = append(lines, s.section.Render(s.empty.Render("Not signed in. Run `wx login`.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(renderIdentity(snapshot.Session.Profile, opts, s)))
	lines = append(lines, s.section.Render(renderGuilds(snapshot, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderIdentity(profile *domain.Profile, opts RenderOptions, s styles) string {
	if profile == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.user.Render("Signed in"),
			s.detail.Render("profile: not loaded"),
		)
	}

	parts := []string{
		s.user.Render(fmt.Sprintf("%s (%s)", profile.Username, authLabel(profile.AuthType))),
	}
	access := "yes"
	if !profile.HasGuildAdminAccess() {
		access = "no"
	}
	parts = append(parts, s.key.Render("guild admin: ")+s.detail.Render(access))

	if profile.IsDiscord() {
		parts = append(parts, s.key.Render("guilds: ")+s.detail.Render(
			fmt.Sprintf("%d allowed, %d administered", profile.AllowedGuildIDs.Len(), profile.AdminGuildIDs.Len()),
		))
	}
	if profile.DefaultGuildID != nil {
		parts = append(parts, s.key.Render("default guild: ")+s.detail.Render(profile.DefaultGuildID.String()))
	}

	if !profile.ExpiresAt.IsZero() {
		color := expiryColor(profile.ExpiresAt, opts.Now, opts.CacheTTL)
		parts = append(parts, s.key.Render("profile cache: ")+
			lipgloss.NewStyle().Foreground(color).Render(formatExpiryRelative(profile.ExpiresAt, opts.Now)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderGuilds(snapshot Snapshot, s styles) string {
	header := s.title.Render("Guilds")
	if !snapshot.GuildsLoaded {
		return lipgloss.JoinVertical(lipgloss.Left, header, s.empty.Render("guild list unavailable"))
	}
	if len(snapshot.Guilds.Guilds) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, s.empty.Render("No guilds available."))
	}

	profile := snapshot.Session.Profile
	lines := []string{header}
	for _, guild := range snapshot.Guilds.Guilds {
		selected := snapshot.Guilds.SelectedGuildID != nil && *snapshot.Guilds.SelectedGuildID == guild.ID

		marker := "  "
		name := s.detail.Render(guild.Name)
		if selected {
			marker = "* "
			name = s.selected.Render(guild.Name)
		}

		var badges []string
		if profile != nil && profile.DefaultGuildID != nil && *profile.DefaultGuildID == guild.ID {
			badges = append(badges, "default")
		}
		if profile != nil && profile.IsDiscord() && profile.AdminGuildIDs.Contains(guild.ID) {
			badges = append(badges, "admin")
		}

		line := marker + name + " " + s.badge.Render("("+guild.ID.String()+")")
		if len(badges) > 0 {
			line += " " + s.badge.Render("["+strings.Join(badges, ", ")+"]")
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func authLabel(authType domain.AuthType) string {
	if authType == "" {
		return string(domain.AuthTypeAdmin)
	}

	return string(authType)
}

func formatExpiryRelative(expiresAt, now time.Time) string {
	if now.IsZero() {
		return "expires " + expiresAt.Format(time.RFC3339)
	}
	if !now.Before(expiresAt) {
		return "expired"
	}

	remaining := expiresAt.Sub(now)
	if remaining < 24*time.Hour {
		hours := int(math.Ceil(remaining.Hours()))
		if hours < 1 {
			hours = 1
		}
		return fmt.Sprintf("expires in %d %s (%s)", hours, plural(hours, "hour"), expiresAt.Format("15:04"))
	}

	days := int(math.Ceil(remaining.Hours() / 24))
	return fmt.Sprintf("expires in %d %s (%s)", days, plural(days, "day"), expiresAt.Format("15:04 on 02 Jan"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}

	return unit + "s"
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// 240 is faded grey, 255 bright white on the 256-colour greyscale ramp.
	interpolated := 240.0 + 15.0*normalized
	return lipgloss.Color(fmt.Sprintf("%d", int(interpolated)))
}

// expiryColor brightens as the cache entry ages toward expiry.
func expiryColor(expiresAt, now time.Time, ttl time.Duration) lipgloss.Color {
	if now.IsZero() || !now.Before(expiresAt) || ttl <= 0 {
		return lipgloss.Color("255")
	}

	remaining := expiresAt.Sub(now)
	return interpolateColor(ttl.Seconds()-remaining.Seconds(), 0, ttl.Seconds())
}
