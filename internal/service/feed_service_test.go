package service

import (
	"Ripple/internal/api/dto"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedService_Pagination(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")

	const total = 10
	ids := make([]string, 0, total)
	for i := 0; i < total; i++ {
		post := env.mustCreatePost(t, alice.ID, fmt.Sprintf("post %d", i))
		ids = append(ids, post.ID)
	}

	// 逐页翻完，无重复无遗漏
	seen := make(map[string]bool)
	cursor := ""
	for {
		feed, err := env.feedSvc.GetFeed(ctx, "", "", cursor, 4)
		require.NoError(t, err)
		for _, p := range feed.Items {
			assert.False(t, seen[p.ID], "duplicate post %s", p.ID)
			seen[p.ID] = true
		}
		if !feed.HasMore {
			break
		}
		require.NotNil(t, feed.NextCursor)
		cursor = *feed.NextCursor
	}
	assert.Len(t, seen, total)

	t.Run("最新在前", func(t *testing.T) {
		feed, err := env.feedSvc.GetFeed(ctx, "", "", "", total)
		require.NoError(t, err)
		require.Len(t, feed.Items, total)
		// 创建顺序的倒序
		for i, p := range feed.Items {
			assert.Equal(t, ids[total-1-i], p.ID)
		}
	})

	t.Run("未知游标从头开始", func(t *testing.T) {
		feed, err := env.feedSvc.GetFeed(ctx, "", "", "bogus", 4)
		require.NoError(t, err)
		require.Len(t, feed.Items, 4)
		assert.Equal(t, ids[total-1], feed.Items[0].ID)
	})
}

func TestFeedService_TombstoneExcluded(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")

	keep := env.mustCreatePost(t, alice.ID, "keep")
	gone := env.mustCreatePost(t, alice.ID, "gone")
	require.NoError(t, env.postSvc.DeletePost(ctx, alice.ID, gone.ID))

	feed, err := env.feedSvc.GetFeed(ctx, "", "", "", 10)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, keep.ID, feed.Items[0].ID)
}

func TestFeedService_CommunityFilter(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")

	community, err := env.communitySvc.CreateCommunity(ctx, alice.ID, &dto.CommunityCreateDTO{Name: "gophers"})
	require.NoError(t, err)

	env.mustCreatePost(t, alice.ID, "global post")
	inCommunity, err := env.postSvc.CreatePost(ctx, alice.ID, &dto.PostCreateDTO{
		Content:     "community post",
		Type:        "text",
		CommunityID: community.ID,
	})
	require.NoError(t, err)

	feed, err := env.feedSvc.GetFeed(ctx, "", community.ID, "", 10)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, inCommunity.ID, feed.Items[0].ID)

	// 全站流两条都有
	all, err := env.feedSvc.GetFeed(ctx, "", "", "", 10)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}

func TestFeedService_ViewerLikeState(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")
	bob := env.mustCreateUser(t, "bob")
	post := env.mustCreatePost(t, alice.ID, "like state")

	_, err := env.actionSvc.ToggleLike(ctx, post.ID, bob.ID)
	require.NoError(t, err)

	feed, err := env.feedSvc.GetFeed(ctx, bob.ID, "", "", 10)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.True(t, feed.Items[0].IsLiked)

	// 匿名观看者没有点赞状态
	anon, err := env.feedSvc.GetFeed(ctx, "", "", "", 10)
	require.NoError(t, err)
	assert.False(t, anon.Items[0].IsLiked)
}
