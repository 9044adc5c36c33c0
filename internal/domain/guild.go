package domain

import (
	"fmt"
	"strings"
)

// GuildID is a Discord snowflake. The server sends it as a JSON number or a
// string; it is always held as a string to avoid float precision loss.
type GuildID string

func (id *GuildID) UnmarshalJSON(data []byte) error {
	raw, err := decodeSnowflake(data)
	if err != nil {
		return fmt.Errorf("decode guild id: %w", err)
	}

	*id = GuildID(raw)
	return nil
}

func (id GuildID) MarshalJSON() ([]byte, error) {
	return encodeSnowflake(string(id))
}

func (id GuildID) String() string {
	return string(id)
}

func GuildIDPtr(id GuildID) *GuildID {
	if strings.TrimSpace(string(id)) == "" {
		return nil
	}

	return &id
}

type Guild struct {
	ID   GuildID `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon"`
}

// GuildContext is the tenant the UI is scoped to. When Guilds is non-empty,
// SelectedGuildID references one of them.
type GuildContext struct {
	Guilds          []Guild
	SelectedGuildID *GuildID
}

func FindGuild(guilds []Guild, id GuildID) (Guild, bool) {
	for _, guild := range guilds {
		if guild.ID == id {
			return guild, true
		}
	}

	return Guild{}, false
}

// ReconcileSelection returns the selection that keeps the context valid for
// guilds: the current one if present, otherwise the first guild, otherwise nil.
func ReconcileSelection(guilds []Guild, selected *GuildID) *GuildID {
	if selected != nil {
		if _, ok := FindGuild(guilds, *selected); ok {
			id := *selected
			return &id
		}
	}
	if len(guilds) == 0 {
		return nil
	}

	id := guilds[0].ID
	return &id
}
