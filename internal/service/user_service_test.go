package service

import (
	"Ripple/internal/api/dto"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateUser(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	token, err := env.userSvc.CreateUser(ctx, &dto.UserCreateDTO{
		Email:    "alice@example.com",
		Nickname: "Alice",
		Handle:   "alice",
		Bio:      "hello",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.User.ID)
	assert.NotEmpty(t, token.Token)
	assert.Equal(t, "alice", token.User.Handle)

	t.Run("handle 已被占用", func(t *testing.T) {
		_, err := env.userSvc.CreateUser(ctx, &dto.UserCreateDTO{
			Email:    "other@example.com",
			Nickname: "Other",
			Handle:   "alice",
		})
		assert.ErrorIs(t, err, ErrUserHandleExist)
	})

	t.Run("按 handle 查询", func(t *testing.T) {
		user, err := env.userSvc.GetUserByHandle(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, token.User.ID, user.ID)
	})

	t.Run("按 ID 查询", func(t *testing.T) {
		user, err := env.userSvc.GetUser(ctx, token.User.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Nickname)
	})
}

func TestUserService_GetUserNotFound(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.userSvc.GetUser(ctx, "nope")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = env.userSvc.GetUserByHandle(ctx, "nope")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
