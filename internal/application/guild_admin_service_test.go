package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/witrix-cli/internal/adapters/storage/memory"
	"github.com/bnema/witrix-cli/internal/domain"
	"github.com/bnema/witrix-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectedGuild(t *testing.T, id *domain.GuildID) *GuildStore {
	t.Helper()

	guilds := NewGuildStore(mocks.NewMockGuildLister(t), memory.New(), nil)
	require.NoError(t, guilds.SetSelectedGuildID(context.Background(), id))
	return guilds
}

func TestGuildAdminServiceResolveGuild(t *testing.T) {
	withSelection := NewGuildAdminService(mocks.NewMockGuildAdminAPI(t), selectedGuild(t, domain.GuildIDPtr("10")), nil)
	withoutSelection := NewGuildAdminService(mocks.NewMockGuildAdminAPI(t), selectedGuild(t, nil), nil)

	id, err := withSelection.ResolveGuild(" 20 ")
	require.NoError(t, err)
	assert.Equal(t, domain.GuildID("20"), id)

	id, err = withSelection.ResolveGuild("")
	require.NoError(t, err)
	assert.Equal(t, domain.GuildID("10"), id)

	_, err = withoutSelection.ResolveGuild("")
	require.ErrorIs(t, err, domain.ErrNoGuildSelected)
}

func TestGuildAdminServiceChannelsUsesSelection(t *testing.T) {
	api := mocks.NewMockGuildAdminAPI(t)
	api.EXPECT().Channels(mockAnyContext(), domain.GuildID("10")).Return([]domain.Channel{{ID: "1", Name: "general"}}, nil)

	service := NewGuildAdminService(api, selectedGuild(t, domain.GuildIDPtr("10")), nil)
	channels, err := service.Channels(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []domain.Channel{{ID: "1", Name: "general"}}, channels)
}

func TestGuildAdminServiceWrapsTransportErrors(t *testing.T) {
	api := mocks.NewMockGuildAdminAPI(t)
	api.EXPECT().Config(mockAnyContext(), domain.GuildID("10")).Return(domain.GuildConfig{}, domain.ErrUnauthorized)

	service := NewGuildAdminService(api, nil, nil)
	_, err := service.Config(context.Background(), "10")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Contains(t, err.Error(), "get config of guild 10")
}

func TestGuildAdminServiceMembersValidatesQuery(t *testing.T) {
	api := mocks.NewMockGuildAdminAPI(t)
	service := NewGuildAdminService(api, nil, nil)

	_, err := service.Members(context.Background(), "10", domain.MemberListQuery{Limit: 500})
	require.ErrorContains(t, err, "limit must be between 1 and 100")

	_, err = service.Members(context.Background(), "10", domain.MemberListQuery{Order: "sideways"})
	require.ErrorContains(t, err, "unsupported order")

	_, err = service.Members(context.Background(), "10", domain.MemberListQuery{OrderBy: "karma"})
	require.ErrorContains(t, err, "unsupported order field")

	query := domain.MemberListQuery{Offset: 20, Limit: 10, OrderBy: "xp", Order: "DESC"}
	api.EXPECT().Members(mockAnyContext(), domain.GuildID("10"), domain.MemberListQuery{Offset: 20, Limit: 10, OrderBy: "xp", Order: "desc"}).
		Return([]domain.MemberLevel{{UserID: "u1", Level: 3}}, nil)

	members, err := service.Members(context.Background(), "10", query)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, int64(3), members[0].Level)
}

func TestGuildAdminServiceUpdatesRequireFields(t *testing.T) {
	api := mocks.NewMockGuildAdminAPI(t)
	service := NewGuildAdminService(api, nil, nil)

	_, err := service.UpdateConfig(context.Background(), "10", domain.GuildConfigUpdate{})
	require.ErrorContains(t, err, "no fields")

	_, err = service.UpdateMemberLevel(context.Background(), "10", "u1", domain.MemberLevelUpdate{})
	require.ErrorContains(t, err, "no fields")

	level := int64(5)
	_, err = service.UpdateMemberLevel(context.Background(), "10", " ", domain.MemberLevelUpdate{Level: &level})
	require.ErrorContains(t, err, "user id is required")
}

func TestGuildAdminServiceUpdateMemberLevel(t *testing.T) {
	level := int64(5)
	update := domain.MemberLevelUpdate{Level: &level}

	api := mocks.NewMockGuildAdminAPI(t)
	api.EXPECT().UpdateMemberLevel(mockAnyContext(), domain.GuildID("10"), "u1", update).
		Return(domain.MemberLevel{GuildID: "10", UserID: "u1", Level: 5}, nil)
	api.EXPECT().MemberCount(mockAnyContext(), domain.GuildID("10")).Return(0, errors.New("boom"))

	service := NewGuildAdminService(api, selectedGuild(t, domain.GuildIDPtr("10")), nil)
	member, err := service.UpdateMemberLevel(context.Background(), "", "u1", update)
	require.NoError(t, err)
	assert.Equal(t, int64(5), member.Level)

	_, err = service.MemberCount(context.Background(), "")
	require.ErrorContains(t, err, "count members of guild 10: boom")
}

func TestGuildAdminServiceMember(t *testing.T) {
	name := "Mika"
	api := mocks.NewMockGuildAdminAPI(t)
	api.EXPECT().Member(mockAnyContext(), domain.GuildID("10"), "42").
		Return(domain.MemberLevel{GuildID: "10", UserID: "42", DisplayName: &name}, nil)

	service := NewGuildAdminService(api, selectedGuild(t, domain.GuildIDPtr("10")), nil)
	member, err := service.Member(context.Background(), "", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, "Mika", member.Name())

	_, err = service.Member(context.Background(), "", "")
	require.ErrorContains(t, err, "user id is required")
}
