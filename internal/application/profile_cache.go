package application

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/witrix-cli/internal/domain"
)

const (
	TokenKey         = "witrix_token"
	ProfileCacheKey  = "witrix_user_me"
	SelectedGuildKey = "witrix_selected_guild_id"

	ProfileCacheTTL = 7 * 24 * time.Hour
)

type profileCacheSchema struct {
	Username        string            `json:"username"`
	AuthType        string            `json:"auth_type"`
	AvatarURL       *string           `json:"avatar_url"`
	IsDiscordUser   bool              `json:"is_discord_user"`
	AllowedGuildIDs domain.GuildIDSet `json:"allowed_guild_ids"`
	AdminGuildIDs   domain.GuildIDSet `json:"admin_guild_ids"`
	DefaultGuildID  *domain.GuildID   `json:"default_guild_id"`
	ExpiresAt       string            `json:"expires_at"`
}

func encodeProfileCache(profile domain.Profile) (string, error) {
	payload, err := json.Marshal(profileCacheSchema{
		Username:        profile.Username,
		AuthType:        string(profile.AuthType),
		AvatarURL:       profile.AvatarURL,
		IsDiscordUser:   profile.IsDiscordUser,
		AllowedGuildIDs: profile.AllowedGuildIDs,
		AdminGuildIDs:   profile.AdminGuildIDs,
		DefaultGuildID:  profile.DefaultGuildID,
		ExpiresAt:       profile.ExpiresAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return "", fmt.Errorf("encode profile cache: %w", err)
	}

	return string(payload), nil
}

func decodeProfileCache(raw string) (domain.Profile, error) {
	var entry profileCacheSchema
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return domain.Profile{}, fmt.Errorf("decode profile cache: %w", err)
	}

	// An entry without a stamp cannot be aged out, so it is not trusted.
	expiresAt, err := time.Parse(time.RFC3339Nano, entry.ExpiresAt)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("decode profile cache expiry: %w", err)
	}

	profile := domain.Profile{
		Username:        entry.Username,
		AuthType:        domain.AuthType(entry.AuthType),
		AvatarURL:       entry.AvatarURL,
		IsDiscordUser:   entry.IsDiscordUser,
		AllowedGuildIDs: entry.AllowedGuildIDs,
		AdminGuildIDs:   entry.AdminGuildIDs,
		DefaultGuildID:  entry.DefaultGuildID,
	}.Normalize()
	profile.ExpiresAt = expiresAt

	return profile, nil
}
