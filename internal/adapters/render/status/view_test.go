package status

import (
	"testing"
	"time"

	"github.com/bnema/witrix-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var renderNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRenderSignedOut(t *testing.T) {
	output, err := Render(Snapshot{Title: "Sign in - Witrix Bot", BaseURL: "http://127.0.0.1:8000"}, RenderOptions{Now: renderNow})

	require.NoError(t, err)
	assert.Contains(t, output, "Sign in - Witrix Bot")
	assert.Contains(t, output, "api: http://127.0.0.1:8000")
	assert.Contains(t, output, "Not signed in")
	assert.NotContains(t, output, "Guilds")
}

func TestRenderDiscordSession(t *testing.T) {
	profile := domain.Profile{
		Username:        "mika",
		AuthType:        domain.AuthTypeDiscord,
		IsDiscordUser:   true,
		AllowedGuildIDs: domain.NewGuildIDSet("10", "20"),
		AdminGuildIDs:   domain.NewGuildIDSet("20"),
		DefaultGuildID:  domain.GuildIDPtr("10"),
		ExpiresAt:       renderNow.Add(3*24*time.Hour + time.Hour),
	}

	output, err := Render(Snapshot{
		Title:   "Dashboard - Witrix Bot",
		Session: domain.Session{Token: "tok", Profile: &profile},
		Guilds: domain.GuildContext{
			Guilds:          []domain.Guild{{ID: "10", Name: "Alpha"}, {ID: "20", Name: "Beta"}},
			SelectedGuildID: domain.GuildIDPtr("20"),
		},
		GuildsLoaded: true,
		Notice:       "already signed in",
	}, RenderOptions{Now: renderNow, CacheTTL: 7 * 24 * time.Hour})

	require.NoError(t, err)
	assert.Contains(t, output, "mika (discord)")
	assert.Contains(t, output, "guild admin: yes")
	assert.Contains(t, output, "2 allowed, 1 administered")
	assert.Contains(t, output, "default guild: 10")
	assert.Contains(t, output, "expires in 4 days")
	assert.Contains(t, output, "already signed in")
	assert.Contains(t, output, "Alpha")
	assert.Contains(t, output, "[default]")
	assert.Contains(t, output, "* ")
	assert.Contains(t, output, "[admin]")
}

func TestRenderSessionWithoutProfile(t *testing.T) {
	output, err := Render(Snapshot{Session: domain.Session{Token: "tok"}}, RenderOptions{Now: renderNow})

	require.NoError(t, err)
	assert.Contains(t, output, "Witrix Bot")
	assert.Contains(t, output, "profile: not loaded")
	assert.Contains(t, output, "guild list unavailable")
}

func TestRenderEmptyGuildList(t *testing.T) {
	profile := domain.Profile{Username: "root", AuthType: domain.AuthTypeAdmin}

	output, err := Render(Snapshot{
		Session:      domain.Session{Token: "tok", Profile: &profile},
		GuildsLoaded: true,
	}, RenderOptions{Now: renderNow})

	require.NoError(t, err)
	assert.Contains(t, output, "root (admin)")
	assert.Contains(t, output, "No guilds available.")
	assert.NotContains(t, output, "profile cache")
}

func TestFormatExpiryRelative(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		want      string
	}{
		{name: "past", expiresAt: renderNow.Add(-time.Minute), want: "expired"},
		{name: "minutes", expiresAt: renderNow.Add(10 * time.Minute), want: "expires in 1 hour (12:10)"},
		{name: "hours", expiresAt: renderNow.Add(5 * time.Hour), want: "expires in 5 hours (17:00)"},
		{name: "one day", expiresAt: renderNow.Add(24 * time.Hour), want: "expires in 1 day (12:00 on 02 Mar)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatExpiryRelative(tt.expiresAt, renderNow))
		})
	}
}

func TestExpiryColorBrightensTowardExpiry(t *testing.T) {
	ttl := 7 * 24 * time.Hour

	assert.Equal(t, "240", string(expiryColor(renderNow.Add(ttl), renderNow, ttl)))
	assert.Equal(t, "255", string(expiryColor(renderNow, renderNow, ttl)))
	assert.Equal(t, "255", string(expiryColor(renderNow.Add(time.Hour), time.Time{}, ttl)))
}
