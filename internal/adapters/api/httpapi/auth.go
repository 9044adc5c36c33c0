package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bnema/witrix-cli/internal/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profileResponse struct {
	Username        string           `json:"username"`
	AuthType        string           `json:"auth_type"`
	AvatarURL       *string          `json:"avatar_url"`
	IsDiscordUser   *bool            `json:"is_discord_user"`
	AllowedGuildIDs []domain.GuildID `json:"allowed_guild_ids"`
	AdminGuildIDs   []domain.GuildID `json:"admin_guild_ids"`
	DefaultGuildID  *domain.GuildID  `json:"default_guild_id"`
}

func (p profileResponse) toDomain() domain.Profile {
	authType := domain.AuthType(strings.ToLower(strings.TrimSpace(p.AuthType)))
	isDiscord := authType == domain.AuthTypeDiscord
	if p.IsDiscordUser != nil {
		isDiscord = *p.IsDiscordUser
	}

	return domain.Profile{
		Username:        p.Username,
		AuthType:        authType,
		AvatarURL:       p.AvatarURL,
		IsDiscordUser:   isDiscord,
		AllowedGuildIDs: domain.NewGuildIDSet(p.AllowedGuildIDs...),
		AdminGuildIDs:   domain.NewGuildIDSet(p.AdminGuildIDs...),
		DefaultGuildID:  p.DefaultGuildID,
	}.Normalize()
}

type defaultGuildRequest struct {
	GuildID *domain.GuildID `json:"guild_id"`
}

func (c *Client) Login(ctx context.Context, username, password string) (domain.TokenGrant, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return domain.TokenGrant{}, errors.New("username and password are required")
	}

	var payload tokenResponse
	err := c.do(ctx, request{
		op:     "login",
		method: http.MethodPost,
		path:   "/api/auth/login",
		body:   loginRequest{Username: username, Password: password},
	}, &payload)
	if err != nil {
		return domain.TokenGrant{}, err
	}

	return domain.TokenGrant{AccessToken: payload.AccessToken, TokenType: payload.TokenType}, nil
}

func (c *Client) GetProfile(ctx context.Context, token string) (domain.Profile, error) {
	var payload profileResponse
	err := c.do(ctx, request{
		op:     "auth check",
		method: http.MethodGet,
		path:   "/api/auth/me",
		token:  token,
	}, &payload)
	if err != nil {
		return domain.Profile{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) SetDefaultGuild(ctx context.Context, token string, guildID *domain.GuildID) (domain.Profile, error) {
	var payload profileResponse
	err := c.do(ctx, request{
		op:     "set default guild",
		method: http.MethodPut,
		path:   "/api/auth/me/default-guild",
		token:  token,
		body:   defaultGuildRequest{GuildID: guildID},
	}, &payload)
	if err != nil {
		return domain.Profile{}, err
	}

	return payload.toDomain(), nil
}
