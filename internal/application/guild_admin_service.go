package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/witrix-cli/internal/domain"
	wxlog "github.com/bnema/witrix-cli/internal/log"
	"github.com/bnema/witrix-cli/internal/ports"
)

type GuildSelection interface {
	SelectedGuildID() *domain.GuildID
}

// GuildAdminService runs the per-guild administration calls against the
// explicit guild or, when none is given, the selected one.
type GuildAdminService struct {
	api       ports.GuildAdminAPI
	selection GuildSelection
	logger    *slog.Logger
}

func NewGuildAdminService(api ports.GuildAdminAPI, selection GuildSelection, logger *slog.Logger) *GuildAdminService {
	return &GuildAdminService{
		api:       api,
		selection: selection,
		logger:    wxlog.OrDiscard(logger),
	}
}

// ResolveGuild picks explicit when set, otherwise the current selection.
func (s *GuildAdminService) ResolveGuild(explicit domain.GuildID) (domain.GuildID, error) {
	if id := strings.TrimSpace(string(explicit)); id != "" {
		return domain.GuildID(id), nil
	}
	if s.selection != nil {
		if selected := s.selection.SelectedGuildID(); selected != nil {
			return *selected, nil
		}
	}

	return "", domain.ErrNoGuildSelected
}

func (s *GuildAdminService) Channels(ctx context.Context, explicit domain.GuildID) ([]domain.Channel, error) {
	guildID, err := s.ResolveGuild(explicit)
	if err != nil {
		return nil, err
	}

	channels, err := s.api.Channels(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("list channels of guild %s: %w", guildID, err)
	}
	return channels, nil
}

func (s *GuildAdminService) Roles(ctx context.Context, explicit domain.GuildID) ([]domain.Role, error) {
	guildID, err := s.ResolveGuild(explicit)
	if err != nil {
		return nil, err
	}

	roles, err := s.api.Roles(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("list roles of guild %s: %w", guildID, err)
	}
	return roles, nil
}

func (s *GuildAdminService) Config(ctx context.Context, explicit domain.GuildID) (domain.GuildConfig, error) {
	guildID, err := s.ResolveGuild(explicit)
	if err != nil {
		return domain.GuildConfig{}, err
	}

	cfg, err := s.api.Config(ctx, guildID)
	if err != nil {
		return domain.GuildConfig{}, fmt.Errorf("get config of guild %s: %w", guildID, err)
	}
	return cfg, nil
}

func (s *GuildAdminService) UpdateConfig(ctx context.Context, explicit domain.GuildID, update domain.GuildConfigUpdate) (domain.GuildConfig, error) {
	if update.Empty() {
		return domain.GuildConfig{}, fmt.Errorf("config update has no fields")
	}
	guildID, err := s.ResolveGuild(explicit)
	if err != nil {
		return domain.GuildConfig{}, err
	}

	cfg, err := s.api.UpdateConfig(ctx, guildID, update)
	if err != nil {
		return domain.GuildConfig{}, fmt.Errorf("update config of guild %s: %w", guildID, err)
	}
	s.logger.Info("guild config updated", "guild_id", guildID)
	return cfg, nil
}

func (s *GuildAdminService) MemberCount(ctx context.Context, explicit domain.GuildID) (int64, error) {
	guildID, err := s.ResolveGuild(explicit)
	if err != nil {
		return 0, err
	}

	count, err := s.api.MemberCount(ctx, guildID)
	if err != nil {
		return 0, fmt.Errorf("count members of guild %s: %w", guildID, err)
	}
	return count, nil
}

func (s *GuildAdminService) Members(ctx context.Context, explicit domain.GuildID, query domain.MemberListQuery) ([]domain.MemberLevel, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("validate member query: %w", err)
	}
	query.Order = strings.ToLower(query.Order)

	guildID, err := s.ResolveGuild(explicit)
	if err != nil {
		return nil, err
	}

	members, err := s.api.Members(ctx, guildID, query)
	if err != nil {
		return nil, fmt.Errorf("list members of guild %s: %w", guildID, err)
	}
	return members, nil
}

func (s *GuildAdminService) Member(ctx context.Context, explicit domain.GuildID, userID string) (domain.MemberLevel, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.MemberLevel{}, fmt.Errorf("user id is required")
	}
	guildID, err := s.ResolveGuild(explicit)
	if err != nil {
		return domain.MemberLevel{}, err
	}

	member, err := s.api.Member(ctx, guildID, userID)
	if err != nil {
		return domain.MemberLevel{}, fmt.Errorf("get member %s of guild %s: %w", userID, guildID, err)
	}
	return member, nil
}

func (s *GuildAdminService) UpdateMemberLevel(ctx context.Context, explicit domain.GuildID, userID string, update domain.MemberLevelUpdate) (domain.MemberLevel, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.MemberLevel{}, fmt.Errorf("user id is required")
	}
	if update.Empty() {
		return domain.MemberLevel{}, fmt.Errorf("level update has no fields")
	}
	guildID, err := s.ResolveGuild(explicit)
	if err != nil {
		return domain.MemberLevel{}, err
	}

	member, err := s.api.UpdateMemberLevel(ctx, guildID, userID, update)
	if err != nil {
		return domain.MemberLevel{}, fmt.Errorf("update level of %s in guild %s: %w", userID, guildID, err)
	}
	s.logger.Info("member level updated", "guild_id", guildID, "user_id", userID)
	return member, nil
}
