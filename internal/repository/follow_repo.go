package repository

import (
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/kv"
	"context"
	"errors"
)

type FollowRepo interface {
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	// Create 写入正向记录和 follower 反向索引
	Create(ctx context.Context, follow *model.Follow) error
	Delete(ctx context.Context, followerID, followingID string) error
	// Followers 某用户的粉丝关系（反向索引范围读）
	Followers(ctx context.Context, userID string) ([]*model.Follow, error)
	// Following 某用户的关注关系（正向范围读）
	Following(ctx context.Context, userID string) ([]*model.Follow, error)
}

type followRepoImpl struct {
	store kv.Store
}

func NewFollowRepo(store kv.Store) FollowRepo {
	return &followRepoImpl{store: store}
}

func followKey(followerID, followingID string) string {
	return consts.FollowKey + followerID + ":" + followingID
}

func followerKey(followingID, followerID string) string {
	return consts.FollowerKey + followingID + ":" + followerID
}

func (s *followRepoImpl) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	_, err := s.store.Get(ctx, followKey(followerID, followingID))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *followRepoImpl) Create(ctx context.Context, follow *model.Follow) error {
	if err := putEntity(ctx, s.store, followKey(follow.FollowerID, follow.FollowingID), follow); err != nil {
		return err
	}
	return putEntity(ctx, s.store, followerKey(follow.FollowingID, follow.FollowerID), follow)
}

func (s *followRepoImpl) Delete(ctx context.Context, followerID, followingID string) error {
	if err := s.store.Delete(ctx, followKey(followerID, followingID)); err != nil {
		return err
	}
	return s.store.Delete(ctx, followerKey(followingID, followerID))
}

func (s *followRepoImpl) Followers(ctx context.Context, userID string) ([]*model.Follow, error) {
	return scanEntities[model.Follow](ctx, s.store, consts.FollowerKey+userID+":")
}

func (s *followRepoImpl) Following(ctx context.Context, userID string) ([]*model.Follow, error) {
	return scanEntities[model.Follow](ctx, s.store, consts.FollowKey+userID+":")
}
