package domain

import (
	"fmt"
	"strings"
)

type Channel struct {
	ID   Snowflake `json:"id"`
	Name string    `json:"name"`
	Type int       `json:"type"`
}

type Role struct {
	ID   Snowflake `json:"id"`
	Name string    `json:"name"`
}

type GuildConfig struct {
	GuildID             GuildID     `json:"guild_id"`
	WelcomeChannelID    *Snowflake  `json:"welcome_channel_id"`
	WelcomeRoleID       *Snowflake  `json:"welcome_role_id"`
	LevelChannelID      *Snowflake  `json:"level_channel_id"`
	RoleSelectChannelID *Snowflake  `json:"role_select_channel_id"`
	SelectableRoles     []Snowflake `json:"selectable_roles"`
}

// GuildConfigUpdate only sends the fields that are set.
type GuildConfigUpdate struct {
	WelcomeChannelID    *Snowflake  `json:"welcome_channel_id,omitempty"`
	WelcomeRoleID       *Snowflake  `json:"welcome_role_id,omitempty"`
	LevelChannelID      *Snowflake  `json:"level_channel_id,omitempty"`
	RoleSelectChannelID *Snowflake  `json:"role_select_channel_id,omitempty"`
	SelectableRoles     []Snowflake `json:"selectable_roles,omitempty"`
}

func (u GuildConfigUpdate) Empty() bool {
	return u.WelcomeChannelID == nil &&
		u.WelcomeRoleID == nil &&
		u.LevelChannelID == nil &&
		u.RoleSelectChannelID == nil &&
		len(u.SelectableRoles) == 0
}

type MemberLevel struct {
	GuildID      GuildID   `json:"guild_id"`
	UserID       Snowflake `json:"user_id"`
	MessageCount int64     `json:"message_count"`
	Level        int64     `json:"level"`
	XP           int64     `json:"xp"`
	DaysOnServer int64     `json:"days_on_server"`
	DisplayName  *string   `json:"display_name,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
}

// Name is the display name, or the user id when the bot has none cached.
func (m MemberLevel) Name() string {
	if m.DisplayName != nil && strings.TrimSpace(*m.DisplayName) != "" {
		return *m.DisplayName
	}

	return m.UserID.String()
}

type MemberLevelUpdate struct {
	MessageCount *int64 `json:"message_count,omitempty"`
	Level        *int64 `json:"level,omitempty"`
	XP           *int64 `json:"xp,omitempty"`
	DaysOnServer *int64 `json:"days_on_server,omitempty"`
}

func (u MemberLevelUpdate) Empty() bool {
	return u.MessageCount == nil && u.Level == nil && u.XP == nil && u.DaysOnServer == nil
}

const (
	MemberListMaxLimit = 100

	SortAsc  = "asc"
	SortDesc = "desc"
)

var MemberOrderFields = []string{"level", "xp", "message_count", "days_on_server"}

// MemberListQuery pages through a guild's members. Zero values are left to
// the server defaults.
type MemberListQuery struct {
	Offset  int
	Limit   int
	OrderBy string
	Order   string
}

func (q MemberListQuery) Validate() error {
	if q.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	if q.Limit < 0 || q.Limit > MemberListMaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", MemberListMaxLimit)
	}
	switch strings.ToLower(q.Order) {
	case "", SortAsc, SortDesc:
	default:
		return fmt.Errorf("unsupported order %q", q.Order)
	}
	if q.OrderBy != "" && !containsString(MemberOrderFields, q.OrderBy) {
		return fmt.Errorf("unsupported order field %q (want one of %s)", q.OrderBy, strings.Join(MemberOrderFields, ", "))
	}

	return nil
}

func containsString(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}

	return false
}
