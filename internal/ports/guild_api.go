package ports

import (
	"context"

	"github.com/bnema/witrix-cli/internal/domain"
)

type GuildLister interface {
	ListGuilds(ctx context.Context) ([]domain.Guild, error)
}

type GuildAdminAPI interface {
	Channels(ctx context.Context, guildID domain.GuildID) ([]domain.Channel, error)
	Roles(ctx context.Context, guildID domain.GuildID) ([]domain.Role, error)
	Config(ctx context.Context, guildID domain.GuildID) (domain.GuildConfig, error)
	UpdateConfig(ctx context.Context, guildID domain.GuildID, update domain.GuildConfigUpdate) (domain.GuildConfig, error)
	MemberCount(ctx context.Context, guildID domain.GuildID) (int64, error)
	Members(ctx context.Context, guildID domain.GuildID, query domain.MemberListQuery) ([]domain.MemberLevel, error)
	Member(ctx context.Context, guildID domain.GuildID, userID string) (domain.MemberLevel, error)
	UpdateMemberLevel(ctx context.Context, guildID domain.GuildID, userID string, update domain.MemberLevelUpdate) (domain.MemberLevel, error)
}
