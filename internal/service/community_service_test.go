package service

import (
	"Ripple/internal/api/dto"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityService_CreateCommunity(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")

	community, err := env.communitySvc.CreateCommunity(ctx, alice.ID, &dto.CommunityCreateDTO{
		Name:        "gophers",
		Description: "go talk",
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, community.CreatorID)
	assert.Equal(t, 1, community.MemberCount)

	// 创建者自动成为 admin 成员
	members, err := env.communitySvc.ListMembers(ctx, community.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, alice.ID, members[0].UserID)
	assert.Equal(t, "admin", members[0].Role)

	t.Run("创建者不存在", func(t *testing.T) {
		_, err := env.communitySvc.CreateCommunity(ctx, "ghost", &dto.CommunityCreateDTO{Name: "x"})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestCommunityService_ToggleMembership(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")
	bob := env.mustCreateUser(t, "bob")

	community, err := env.communitySvc.CreateCommunity(ctx, alice.ID, &dto.CommunityCreateDTO{Name: "gophers"})
	require.NoError(t, err)

	state, err := env.communitySvc.ToggleMembership(ctx, community.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, state.Joined)
	assert.Equal(t, 2, state.MemberCount)

	// 创建者收到 community_join 通知
	list, err := env.notifySvc.ListForUser(ctx, alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "community_join", list[0].Type)
	assert.Equal(t, community.ID, list[0].CommunityID)

	// 再按一次退出
	state, err = env.communitySvc.ToggleMembership(ctx, community.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, state.Joined)
	assert.Equal(t, 1, state.MemberCount)

	t.Run("创建者不能退出", func(t *testing.T) {
		_, err := env.communitySvc.ToggleMembership(ctx, community.ID, alice.ID)
		assert.ErrorIs(t, err, ErrCreatorCannotLeave)
	})

	t.Run("社区不存在", func(t *testing.T) {
		_, err := env.communitySvc.ToggleMembership(ctx, "nope", bob.ID)
		assert.ErrorIs(t, err, ErrCommunityNotFound)
	})
}

func TestCommunityService_ListCommunities(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")

	for _, name := range []string{"one", "two", "three", "four", "five"} {
		_, err := env.communitySvc.CreateCommunity(ctx, alice.ID, &dto.CommunityCreateDTO{Name: name})
		require.NoError(t, err)
	}

	page, err := env.communitySvc.ListCommunities(ctx, "", 3)
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.True(t, page.HasMore)
	require.NotNil(t, page.NextCursor)

	rest, err := env.communitySvc.ListCommunities(ctx, *page.NextCursor, 3)
	require.NoError(t, err)
	assert.Len(t, rest.Items, 2)
	assert.False(t, rest.HasMore)
	assert.Nil(t, rest.NextCursor)
}
