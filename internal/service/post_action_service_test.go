package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostActionService_ToggleLike(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")
	bob := env.mustCreateUser(t, "bob")
	post := env.mustCreatePost(t, alice.ID, "like me")

	state, err := env.actionSvc.ToggleLike(ctx, post.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, state.Liked)
	assert.Equal(t, 1, state.LikesCount)

	// 作者收到一条 like 通知
	unread, err := env.notifySvc.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, unread.UnreadCount)

	// 再按一次取消，计数回到原值
	state, err = env.actionSvc.ToggleLike(ctx, post.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, state.Liked)
	assert.Equal(t, 0, state.LikesCount)

	// 第三次重新点赞
	state, err = env.actionSvc.ToggleLike(ctx, post.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, state.Liked)
	assert.Equal(t, 1, state.LikesCount)

	t.Run("自己点赞自己不发通知", func(t *testing.T) {
		before, err := env.notifySvc.UnreadCount(ctx, alice.ID)
		require.NoError(t, err)

		_, err = env.actionSvc.ToggleLike(ctx, post.ID, alice.ID)
		require.NoError(t, err)

		after, err := env.notifySvc.UnreadCount(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, before.UnreadCount, after.UnreadCount)
	})

	t.Run("帖子不存在", func(t *testing.T) {
		_, err := env.actionSvc.ToggleLike(ctx, "nope", bob.ID)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestPostActionService_CounterFloor(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")
	post := env.mustCreatePost(t, alice.ID, "floor")

	// 直接制造重复递减的局面：计数已经是零时取消点赞不得出现负数
	_, err := env.actionSvc.ToggleLike(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	_, err = env.postRepo.Mutate(ctx, post.ID, func(p *model.Post) { p.LikesCount = 0 })
	require.NoError(t, err)

	state, err := env.actionSvc.ToggleLike(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, state.Liked)
	assert.Equal(t, 0, state.LikesCount)
}

func TestPostActionService_Comments(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")
	bob := env.mustCreateUser(t, "bob")
	post := env.mustCreatePost(t, alice.ID, "discuss")

	comment, err := env.actionSvc.CreateComment(ctx, bob.ID, &dto.CommentCreateDTO{
		PostID:  post.ID,
		Content: "first!",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-bob", comment.Nickname)

	got, err := env.postSvc.GetPost(ctx, "", post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CommentCount)

	// 作者收到 comment 通知
	unread, err := env.notifySvc.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, unread.UnreadCount)

	t.Run("评论不存在的帖子", func(t *testing.T) {
		_, err := env.actionSvc.CreateComment(ctx, bob.ID, &dto.CommentCreateDTO{
			PostID:  "nope",
			Content: "x",
		})
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestPostActionService_ListCommentsPagination(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")
	post := env.mustCreatePost(t, alice.ID, "busy thread")

	const total = 7
	for i := 0; i < total; i++ {
		_, err := env.actionSvc.CreateComment(ctx, alice.ID, &dto.CommentCreateDTO{
			PostID:  post.ID,
			Content: fmt.Sprintf("comment %d", i),
		})
		require.NoError(t, err)
	}

	// 逐页翻完，无重复无遗漏
	seen := make(map[string]bool)
	cursor := ""
	pages := 0
	for {
		page, err := env.actionSvc.ListComments(ctx, post.ID, cursor, 3)
		require.NoError(t, err)
		for _, c := range page.Items {
			assert.False(t, seen[c.ID], "duplicate comment %s", c.ID)
			seen[c.ID] = true
		}
		pages++
		if !page.HasMore {
			break
		}
		require.NotNil(t, page.NextCursor)
		cursor = *page.NextCursor
	}
	assert.Len(t, seen, total)
	assert.Equal(t, 3, pages)

	t.Run("未知游标从头开始", func(t *testing.T) {
		page, err := env.actionSvc.ListComments(ctx, post.ID, "bogus-cursor", 3)
		require.NoError(t, err)
		assert.Len(t, page.Items, 3)
		assert.True(t, page.HasMore)
	})
}

func TestPostActionService_RecordView(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")
	post := env.mustCreatePost(t, alice.ID, "watch me")

	require.NoError(t, env.actionSvc.RecordView(ctx, post.ID))
	require.NoError(t, env.actionSvc.RecordView(ctx, post.ID))

	got, err := env.postSvc.GetPost(ctx, "", post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewCount)

	// 未知帖子静默返回
	assert.NoError(t, env.actionSvc.RecordView(ctx, "nope"))
}
