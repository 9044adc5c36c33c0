package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/witrix-cli/internal/adapters/storage/memory"
	"github.com/bnema/witrix-cli/internal/domain"
	"github.com/bnema/witrix-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedInSession(t *testing.T) (*SessionStore, *memory.Store) {
	t.Helper()

	store := memory.New()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, TokenKey, "tok"))
	require.NoError(t, store.Put(ctx, SelectedGuildKey, "10"))

	session := NewSessionStore(mocks.NewMockAuthAPI(t), store, newFakeClock(sessionNow), nil)
	require.NoError(t, session.Initialize(ctx))
	return session, store
}

func TestUnauthorizedInterceptorExpiresSessionOnce(t *testing.T) {
	session, store := signedInSession(t)
	navigator := mocks.NewMockNavigator(t)
	navigator.EXPECT().Navigate(domain.LoginPath).Return().Once()

	interceptor := NewUnauthorizedInterceptor(session, navigator, "", nil)
	lister := mocks.NewMockGuildLister(t)
	lister.EXPECT().ListGuilds(mockAnyContext()).Return(nil, fmt.Errorf("list guilds: %w", domain.ErrUnauthorized)).Twice()

	wrapped := interceptor.GuildLister(lister)
	_, err := wrapped.ListGuilds(context.Background())
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = wrapped.ListGuilds(context.Background())
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.True(t, interceptor.Fired())
	assert.False(t, session.IsAuthenticated())
	_, err = store.Get(context.Background(), TokenKey)
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
	// The guild selection is not part of the session.
	selected, err := store.Get(context.Background(), SelectedGuildKey)
	require.NoError(t, err)
	assert.Equal(t, "10", selected)
}

func TestUnauthorizedInterceptorIgnoresOtherErrors(t *testing.T) {
	session, _ := signedInSession(t)
	interceptor := NewUnauthorizedInterceptor(session, mocks.NewMockNavigator(t), "", nil)

	admin := mocks.NewMockGuildAdminAPI(t)
	admin.EXPECT().Roles(mockAnyContext(), domain.GuildID("10")).Return(nil, &domain.APIError{Status: 403, Detail: "Forbidden"})

	_, err := interceptor.GuildAdminAPI(admin).Roles(context.Background(), "10")
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.False(t, interceptor.Fired())
	assert.True(t, session.IsAuthenticated())
}

func TestUnauthorizedInterceptorLeavesLoginAlone(t *testing.T) {
	session, _ := signedInSession(t)
	interceptor := NewUnauthorizedInterceptor(session, mocks.NewMockNavigator(t), "", nil)

	api := mocks.NewMockAuthAPI(t)
	api.EXPECT().Login(mockAnyContext(), "mika", "bad").Return(domain.TokenGrant{}, domain.ErrUnauthorized)

	_, err := interceptor.AuthAPI(api).Login(context.Background(), "mika", "bad")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, interceptor.Fired())
	assert.True(t, session.IsAuthenticated())
}

func TestUnauthorizedInterceptorProfileRefresh(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, TokenKey, "tok"))

	api := mocks.NewMockAuthAPI(t)
	api.EXPECT().GetProfile(mockAnyContext(), "tok").Return(domain.Profile{}, domain.ErrUnauthorized)

	navigator := mocks.NewMockNavigator(t)
	navigator.EXPECT().Navigate("/login").Return()

	var session *SessionStore
	interceptor := NewUnauthorizedInterceptor(expirerFunc(func(ctx context.Context) error {
		return session.ExpireSession(ctx)
	}), navigator, domain.LoginPath, nil)
	session = NewSessionStore(interceptor.AuthAPI(api), store, newFakeClock(sessionNow), nil)
	require.NoError(t, session.Initialize(ctx))

	err := session.RefreshProfile(ctx)
	require.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.False(t, session.IsAuthenticated())
	assert.Empty(t, store.Keys())
}

func TestUnauthorizedInterceptorLogsExpireFailure(t *testing.T) {
	navigator := mocks.NewMockNavigator(t)
	navigator.EXPECT().Navigate("/login").Return()

	interceptor := NewUnauthorizedInterceptor(expirerFunc(func(context.Context) error {
		return errors.New("store locked")
	}), navigator, "", nil)

	err := interceptor.Observe(context.Background(), domain.ErrUnauthorized)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.True(t, interceptor.Fired())
}

type expirerFunc func(ctx context.Context) error

func (f expirerFunc) ExpireSession(ctx context.Context) error {
	return f(ctx)
}
