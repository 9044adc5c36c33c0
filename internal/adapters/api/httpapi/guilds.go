package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bnema/witrix-cli/internal/domain"
)

func (c *Client) ListGuilds(ctx context.Context) ([]domain.Guild, error) {
	var guilds []domain.Guild
	err := c.do(ctx, request{
		op:     "list guilds",
		method: http.MethodGet,
		path:   "/api/guilds",
		token:  c.bearer(),
	}, &guilds)
	if err != nil {
		return nil, err
	}

	return guilds, nil
}

func (c *Client) Channels(ctx context.Context, guildID domain.GuildID) ([]domain.Channel, error) {
	path, err := guildPath(guildID, "channels")
	if err != nil {
		return nil, err
	}

	var channels []domain.Channel
	if err := c.do(ctx, request{op: "list channels", method: http.MethodGet, path: path, token: c.bearer()}, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (c *Client) Roles(ctx context.Context, guildID domain.GuildID) ([]domain.Role, error) {
	path, err := guildPath(guildID, "roles")
	if err != nil {
		return nil, err
	}

	var roles []domain.Role
	if err := c.do(ctx, request{op: "list roles", method: http.MethodGet, path: path, token: c.bearer()}, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (c *Client) Config(ctx context.Context, guildID domain.GuildID) (domain.GuildConfig, error) {
	path, err := guildPath(guildID, "config")
	if err != nil {
		return domain.GuildConfig{}, err
	}

	var cfg domain.GuildConfig
	if err := c.do(ctx, request{op: "get config", method: http.MethodGet, path: path, token: c.bearer()}, &cfg); err != nil {
		return domain.GuildConfig{}, err
	}
	return cfg, nil
}

func (c *Client) UpdateConfig(ctx context.Context, guildID domain.GuildID, update domain.GuildConfigUpdate) (domain.GuildConfig, error) {
	path, err := guildPath(guildID, "config")
	if err != nil {
		return domain.GuildConfig{}, err
	}

	var cfg domain.GuildConfig
	err = c.do(ctx, request{
		op:     "update config",
		method: http.MethodPut,
		path:   path,
		token:  c.bearer(),
		body:   update,
	}, &cfg)
	if err != nil {
		return domain.GuildConfig{}, err
	}
	return cfg, nil
}

func (c *Client) MemberCount(ctx context.Context, guildID domain.GuildID) (int64, error) {
	path, err := guildPath(guildID, "users", "count")
	if err != nil {
		return 0, err
	}

	var payload struct {
		Count int64 `json:"count"`
	}
	if err := c.do(ctx, request{op: "count members", method: http.MethodGet, path: path, token: c.bearer()}, &payload); err != nil {
		return 0, err
	}
	return payload.Count, nil
}

func (c *Client) Members(ctx context.Context, guildID domain.GuildID, query domain.MemberListQuery) ([]domain.MemberLevel, error) {
	path, err := guildPath(guildID, "users")
	if err != nil {
		return nil, err
	}

	values := url.Values{}
	if query.Offset > 0 {
		values.Set("offset", strconv.Itoa(query.Offset))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.OrderBy != "" {
		values.Set("order_by", query.OrderBy)
	}
	if query.Order != "" {
		values.Set("order", strings.ToLower(query.Order))
	}

	var members []domain.MemberLevel
	err = c.do(ctx, request{
		op:     "list members",
		method: http.MethodGet,
		path:   path,
		query:  values,
		token:  c.bearer(),
	}, &members)
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) Member(ctx context.Context, guildID domain.GuildID, userID string) (domain.MemberLevel, error) {
	path, err := guildPath(guildID, "users", url.PathEscape(strings.TrimSpace(userID)))
	if err != nil {
		return domain.MemberLevel{}, err
	}

	var member domain.MemberLevel
	if err := c.do(ctx, request{op: "get member", method: http.MethodGet, path: path, token: c.bearer()}, &member); err != nil {
		return domain.MemberLevel{}, err
	}
	return member, nil
}

func (c *Client) UpdateMemberLevel(ctx context.Context, guildID domain.GuildID, userID string, update domain.MemberLevelUpdate) (domain.MemberLevel, error) {
	path, err := guildPath(guildID, "users", url.PathEscape(strings.TrimSpace(userID)))
	if err != nil {
		return domain.MemberLevel{}, err
	}

	var member domain.MemberLevel
	err = c.do(ctx, request{
		op:     "update member level",
		method: http.MethodPut,
		path:   path,
		token:  c.bearer(),
		body:   update,
	}, &member)
	if err != nil {
		return domain.MemberLevel{}, err
	}
	return member, nil
}
