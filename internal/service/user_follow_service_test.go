package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFollowService_ToggleFollow(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")
	bob := env.mustCreateUser(t, "bob")

	state, err := env.userFollowSvc.ToggleFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, state.Following)
	assert.Equal(t, 1, state.FollowerCount)

	// 双方计数
	got, err := env.userSvc.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.FollowingCount)

	// 被关注者收到通知
	unread, err := env.notifySvc.UnreadCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, unread.UnreadCount)

	following, err := env.userFollowSvc.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// 再按一次取关，计数回减
	state, err = env.userFollowSvc.ToggleFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, state.Following)
	assert.Equal(t, 0, state.FollowerCount)

	got, err = env.userSvc.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.FollowingCount)

	t.Run("关注自己被拒", func(t *testing.T) {
		_, err := env.userFollowSvc.ToggleFollow(ctx, alice.ID, alice.ID)
		assert.ErrorIs(t, err, ErrUserFollowSelf)
	})

	t.Run("目标不存在", func(t *testing.T) {
		_, err := env.userFollowSvc.ToggleFollow(ctx, alice.ID, "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserFollowService_Rosters(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")
	bob := env.mustCreateUser(t, "bob")
	carol := env.mustCreateUser(t, "carol")

	_, err := env.userFollowSvc.ToggleFollow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = env.userFollowSvc.ToggleFollow(ctx, carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = env.userFollowSvc.ToggleFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	followers, err := env.userFollowSvc.GetFollowers(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	handles := []string{followers[0].Handle, followers[1].Handle}
	assert.ElementsMatch(t, []string{"bob", "carol"}, handles)

	following, err := env.userFollowSvc.GetFollowing(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].Handle)
}
