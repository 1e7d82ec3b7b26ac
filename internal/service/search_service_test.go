package service

import (
	"Ripple/internal/api/dto"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService_Search(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")

	env.mustCreatePost(t, alice.ID, "Gophers assemble")
	_, err := env.communitySvc.CreateCommunity(ctx, alice.ID, &dto.CommunityCreateDTO{
		Name:        "gopher-den",
		Description: "all things go",
	})
	require.NoError(t, err)

	t.Run("大小写无关", func(t *testing.T) {
		res, err := env.searchSvc.Search(ctx, "GOPHER", "", 10)
		require.NoError(t, err)
		assert.Len(t, res.Items, 2)
	})

	t.Run("按类型过滤", func(t *testing.T) {
		res, err := env.searchSvc.Search(ctx, "gopher", "post", 10)
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "post", res.Items[0].Kind)
		assert.Equal(t, "Gophers assemble", res.Items[0].Post.Content)

		res, err = env.searchSvc.Search(ctx, "gopher", "community", 10)
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "community", res.Items[0].Kind)
	})

	t.Run("用户按昵称和 handle 匹配", func(t *testing.T) {
		res, err := env.searchSvc.Search(ctx, "alice", "user", 10)
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "alice", res.Items[0].User.Handle)
	})

	t.Run("查询过短", func(t *testing.T) {
		_, err := env.searchSvc.Search(ctx, "a", "", 10)
		assert.ErrorIs(t, err, ErrQueryTooShort)

		_, err = env.searchSvc.Search(ctx, "  a  ", "", 10)
		assert.ErrorIs(t, err, ErrQueryTooShort)
	})

	t.Run("无命中返回空集", func(t *testing.T) {
		res, err := env.searchSvc.Search(ctx, "zzzzz", "", 10)
		require.NoError(t, err)
		assert.Empty(t, res.Items)
	})
}

func TestSearchService_TombstoneExcluded(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")
	post := env.mustCreatePost(t, alice.ID, "ephemeral gopher")
	require.NoError(t, env.postSvc.DeletePost(ctx, alice.ID, post.ID))

	res, err := env.searchSvc.Search(ctx, "ephemeral", "post", 10)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestSearchService_LimitCap(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")

	for i := 0; i < 5; i++ {
		env.mustCreatePost(t, alice.ID, "repeated gopher content")
	}

	res, err := env.searchSvc.Search(ctx, "gopher", "post", 3)
	require.NoError(t, err)
	assert.Len(t, res.Items, 3)
}
