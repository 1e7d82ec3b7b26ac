package service

import (
	"Ripple/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_SelfSuppression(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")

	// 自己触发自己：静默跳过
	require.NoError(t, env.notifySvc.Create(ctx, alice.ID, model.NotifyTypeLike, alice.ID, model.NotifyRelated{}))
	// 接收者为空：静默跳过
	require.NoError(t, env.notifySvc.Create(ctx, "", model.NotifyTypeLike, alice.ID, model.NotifyRelated{}))

	unread, err := env.notifySvc.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unread.UnreadCount)
}

func TestNotificationService_MarkRead(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")
	bob := env.mustCreateUser(t, "bob")

	require.NoError(t, env.notifySvc.Create(ctx, alice.ID, model.NotifyTypeFollow, bob.ID, model.NotifyRelated{}))

	list, err := env.notifySvc.ListForUser(ctx, alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsRead)
	assert.Equal(t, "u-bob", list[0].OriginName)

	require.NoError(t, env.notifySvc.MarkRead(ctx, alice.ID, list[0].ID))

	unread, err := env.notifySvc.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unread.UnreadCount)

	t.Run("重复标记幂等", func(t *testing.T) {
		assert.NoError(t, env.notifySvc.MarkRead(ctx, alice.ID, list[0].ID))
	})

	t.Run("别人的收件箱不可见", func(t *testing.T) {
		err := env.notifySvc.MarkRead(ctx, bob.ID, list[0].ID)
		assert.ErrorIs(t, err, ErrNotificationMissing)

		foreign, err := env.notifySvc.ListForUser(ctx, bob.ID, 10)
		require.NoError(t, err)
		assert.Empty(t, foreign)
	})

	t.Run("未知通知", func(t *testing.T) {
		err := env.notifySvc.MarkRead(ctx, alice.ID, "nope")
		assert.ErrorIs(t, err, ErrNotificationMissing)
	})
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")
	bob := env.mustCreateUser(t, "bob")

	for i := 0; i < 3; i++ {
		require.NoError(t, env.notifySvc.Create(ctx, alice.ID, model.NotifyTypeLike, bob.ID, model.NotifyRelated{}))
	}

	res, err := env.notifySvc.MarkAllRead(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, res.UpdatedCount)

	unread, err := env.notifySvc.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unread.UnreadCount)

	// 已全读后再来一次，零条被修改
	res, err = env.notifySvc.MarkAllRead(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.UpdatedCount)
}
