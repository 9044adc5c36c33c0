package ports

import (
	"context"

	"github.com/bnema/witrix-cli/internal/domain"
)

// AuthAPI is the credential and profile side of the dashboard API.
// Implementations return domain.ErrUnauthorized for a 401.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (domain.TokenGrant, error)
	GetProfile(ctx context.Context, token string) (domain.Profile, error)
	SetDefaultGuild(ctx context.Context, token string, guildID *domain.GuildID) (domain.Profile, error)
}

// TokenSource hands the current bearer token to transports.
type TokenSource interface {
	Token() string
}
