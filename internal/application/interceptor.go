package application

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/bnema/witrix-cli/internal/domain"
	wxlog "github.com/bnema/witrix-cli/internal/log"
	"github.com/bnema/witrix-cli/internal/ports"
)

type SessionExpirer interface {
	ExpireSession(ctx context.Context) error
}

// UnauthorizedInterceptor wraps the API ports. The first call that fails
// with domain.ErrUnauthorized clears the session and navigates to the login
// route; the error itself is passed through unchanged.
type UnauthorizedInterceptor struct {
	session   SessionExpirer
	navigator ports.Navigator
	loginPath string
	logger    *slog.Logger

	fired atomic.Bool
}

func NewUnauthorizedInterceptor(session SessionExpirer, navigator ports.Navigator, loginPath string, logger *slog.Logger) *UnauthorizedInterceptor {
	if loginPath == "" {
		loginPath = domain.LoginPath
	}

	return &UnauthorizedInterceptor{
		session:   session,
		navigator: navigator,
		loginPath: loginPath,
		logger:    wxlog.OrDiscard(logger),
	}
}

// Observe runs the unauthorized sequence when err carries the 401 sentinel.
func (i *UnauthorizedInterceptor) Observe(ctx context.Context, err error) error {
	if err == nil || !errors.Is(err, domain.ErrUnauthorized) {
		return err
	}
	if !i.fired.CompareAndSwap(false, true) {
		return err
	}

	if expireErr := i.session.ExpireSession(context.WithoutCancel(ctx)); expireErr != nil {
		i.logger.Warn("clear expired session", "error", expireErr)
	}
	if i.navigator != nil {
		i.navigator.Navigate(i.loginPath)
	}

	return err
}

// Fired reports whether the unauthorized sequence already ran.
func (i *UnauthorizedInterceptor) Fired() bool {
	return i.fired.Load()
}

func (i *UnauthorizedInterceptor) AuthAPI(next ports.AuthAPI) ports.AuthAPI {
	return &interceptedAuthAPI{next: next, interceptor: i}
}

func (i *UnauthorizedInterceptor) GuildLister(next ports.GuildLister) ports.GuildLister {
	return &interceptedGuildLister{next: next, interceptor: i}
}

func (i *UnauthorizedInterceptor) GuildAdminAPI(next ports.GuildAdminAPI) ports.GuildAdminAPI {
	return &interceptedGuildAdminAPI{next: next, interceptor: i}
}

type interceptedAuthAPI struct {
	next        ports.AuthAPI
	interceptor *UnauthorizedInterceptor
}

// Login is not intercepted: a 401 there is a credential rejection, not an
// expired session.
func (a *interceptedAuthAPI) Login(ctx context.Context, username, password string) (domain.TokenGrant, error) {
	return a.next.Login(ctx, username, password)
}

func (a *interceptedAuthAPI) GetProfile(ctx context.Context, token string) (domain.Profile, error) {
	profile, err := a.next.GetProfile(ctx, token)
	return profile, a.interceptor.Observe(ctx, err)
}

func (a *interceptedAuthAPI) SetDefaultGuild(ctx context.Context, token string, guildID *domain.GuildID) (domain.Profile, error) {
	profile, err := a.next.SetDefaultGuild(ctx, token, guildID)
	return profile, a.interceptor.Observe(ctx, err)
}

type interceptedGuildLister struct {
	next        ports.GuildLister
	interceptor *UnauthorizedInterceptor
}

func (g *interceptedGuildLister) ListGuilds(ctx context.Context) ([]domain.Guild, error) {
	guilds, err := g.next.ListGuilds(ctx)
	return guilds, g.interceptor.Observe(ctx, err)
}

type interceptedGuildAdminAPI struct {
	next        ports.GuildAdminAPI
	interceptor *UnauthorizedInterceptor
}

func (g *interceptedGuildAdminAPI) Channels(ctx context.Context, guildID domain.GuildID) ([]domain.Channel, error) {
	out, err := g.next.Channels(ctx, guildID)
	return out, g.interceptor.Observe(ctx, err)
}

func (g *interceptedGuildAdminAPI) Roles(ctx context.Context, guildID domain.GuildID) ([]domain.Role, error) {
	out, err := g.next.Roles(ctx, guildID)
	return out, g.interceptor.Observe(ctx, err)
}

func (g *interceptedGuildAdminAPI) Config(ctx context.Context, guildID domain.GuildID) (domain.GuildConfig, error) {
	out, err := g.next.Config(ctx, guildID)
	return out, g.interceptor.Observe(ctx, err)
}

func (g *interceptedGuildAdminAPI) UpdateConfig(ctx context.Context, guildID domain.GuildID, update domain.GuildConfigUpdate) (domain.GuildConfig, error) {
	out, err := g.next.UpdateConfig(ctx, guildID, update)
	return out, g.interceptor.Observe(ctx, err)
}

func (g *interceptedGuildAdminAPI) MemberCount(ctx context.Context, guildID domain.GuildID) (int64, error) {
	out, err := g.next.MemberCount(ctx, guildID)
	return out, g.interceptor.Observe(ctx, err)
}

func (g *interceptedGuildAdminAPI) Members(ctx context.Context, guildID domain.GuildID, query domain.MemberListQuery) ([]domain.MemberLevel, error) {
	out, err := g.next.Members(ctx, guildID, query)
	return out, g.interceptor.Observe(ctx, err)
}

func (g *interceptedGuildAdminAPI) Member(ctx context.Context, guildID domain.GuildID, userID string) (domain.MemberLevel, error) {
	out, err := g.next.Member(ctx, guildID, userID)
	return out, g.interceptor.Observe(ctx, err)
}

func (g *interceptedGuildAdminAPI) UpdateMemberLevel(ctx context.Context, guildID domain.GuildID, userID string, update domain.MemberLevelUpdate) (domain.MemberLevel, error) {
	out, err := g.next.UpdateMemberLevel(ctx, guildID, userID, update)
	return out, g.interceptor.Observe(ctx, err)
}
