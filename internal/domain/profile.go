package domain

import (
	"encoding/json"
	"strings"
	"time"
)

type AuthType string

const (
	AuthTypeAdmin   AuthType = "admin"
	AuthTypeDiscord AuthType = "discord"
)

type Profile struct {
	Username        string
	AuthType        AuthType
	AvatarURL       *string
	IsDiscordUser   bool
	AllowedGuildIDs GuildIDSet
	AdminGuildIDs   GuildIDSet
	DefaultGuildID  *GuildID
	ExpiresAt       time.Time
}

// Session is the authenticated identity: a token and the cached profile.
// An empty token always comes with a nil profile.
type Session struct {
	Token   string
	Profile *Profile
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Expired reports whether the cache stamp has passed. A zero stamp never expires.
func (p Profile) Expired(now time.Time) bool {
	if p.ExpiresAt.IsZero() {
		return false
	}

	return !now.Before(p.ExpiresAt)
}

// HasGuildAdminAccess is true for every non-discord login, and for discord
// logins that administer at least one guild.
func (p Profile) HasGuildAdminAccess() bool {
	if p.AuthType != AuthTypeDiscord {
		return true
	}

	return p.AdminGuildIDs.Len() > 0
}

func (p Profile) IsDiscord() bool {
	return p.AuthType == AuthTypeDiscord
}

// Normalize fills in the defaults for fields the server omitted.
func (p Profile) Normalize() Profile {
	if strings.TrimSpace(string(p.AuthType)) == "" {
		p.AuthType = AuthTypeAdmin
	}
	if p.AvatarURL != nil && strings.TrimSpace(*p.AvatarURL) == "" {
		p.AvatarURL = nil
	}
	if p.DefaultGuildID != nil && strings.TrimSpace(string(*p.DefaultGuildID)) == "" {
		p.DefaultGuildID = nil
	}
	p.AllowedGuildIDs = NewGuildIDSet(p.AllowedGuildIDs.IDs()...)
	p.AdminGuildIDs = NewGuildIDSet(p.AdminGuildIDs.IDs()...)

	return p
}

func (p Profile) Clone() Profile {
	clone := p
	if p.AvatarURL != nil {
		avatar := *p.AvatarURL
		clone.AvatarURL = &avatar
	}
	if p.DefaultGuildID != nil {
		id := *p.DefaultGuildID
		clone.DefaultGuildID = &id
	}
	clone.AllowedGuildIDs = NewGuildIDSet(p.AllowedGuildIDs.IDs()...)
	clone.AdminGuildIDs = NewGuildIDSet(p.AdminGuildIDs.IDs()...)

	return clone
}

// GuildIDSet is an insertion-ordered set of guild ids.
type GuildIDSet struct {
	ids []GuildID
}

func NewGuildIDSet(ids ...GuildID) GuildIDSet {
	set := GuildIDSet{ids: make([]GuildID, 0, len(ids))}
	seen := make(map[GuildID]struct{}, len(ids))
	for _, id := range ids {
		trimmed := GuildID(strings.TrimSpace(string(id)))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		set.ids = append(set.ids, trimmed)
	}

	return set
}

func (s GuildIDSet) Len() int {
	return len(s.ids)
}

func (s GuildIDSet) Contains(id GuildID) bool {
	for _, candidate := range s.ids {
		if candidate == id {
			return true
		}
	}

	return false
}

func (s GuildIDSet) IDs() []GuildID {
	out := make([]GuildID, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s GuildIDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

func (s *GuildIDSet) UnmarshalJSON(data []byte) error {
	var ids []GuildID
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}

	*s = NewGuildIDSet(ids...)
	return nil
}

// TokenGrant is the credential exchange result.
type TokenGrant struct {
	AccessToken string
	TokenType   string
}
