package repository

import (
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/kv"
	"context"
	"errors"
	"strings"
)

type UserRepo interface {
	// Create 写入用户并占用 handle 唯一性索引，handle 已被占用时返回 false
	Create(ctx context.Context, user *model.User) (bool, error)
	GetByID(ctx context.Context, userID string) (*model.User, error)
	GetByHandle(ctx context.Context, handle string) (*model.User, error)
	Save(ctx context.Context, user *model.User) error
	// Mutate 原子读-改-写，用户不存在时返回 kv.ErrKeyNotFound
	Mutate(ctx context.Context, userID string, fn func(*model.User)) (*model.User, error)
	All(ctx context.Context) ([]*model.User, error)
}

type userRepoImpl struct {
	store kv.Store
}

func NewUserRepo(store kv.Store) UserRepo {
	return &userRepoImpl{store: store}
}

func (s *userRepoImpl) Create(ctx context.Context, user *model.User) (bool, error) {
	handleKey := consts.HandleKey + strings.ToLower(user.Handle)
	claimed, err := s.store.SetNX(ctx, handleKey, []byte(user.ID))
	if err != nil || !claimed {
		return false, err
	}
	return true, putEntity(ctx, s.store, consts.UserKey+user.ID, user)
}

func (s *userRepoImpl) GetByID(ctx context.Context, userID string) (*model.User, error) {
	return getEntity[model.User](ctx, s.store, consts.UserKey+userID)
}

func (s *userRepoImpl) GetByHandle(ctx context.Context, handle string) (*model.User, error) {
	raw, err := s.store.Get(ctx, consts.HandleKey+strings.ToLower(handle))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.GetByID(ctx, string(raw))
}

func (s *userRepoImpl) Save(ctx context.Context, user *model.User) error {
	return putEntity(ctx, s.store, consts.UserKey+user.ID, user)
}

func (s *userRepoImpl) Mutate(ctx context.Context, userID string, fn func(*model.User)) (*model.User, error) {
	return updateEntity(ctx, s.store, consts.UserKey+userID, fn)
}

func (s *userRepoImpl) All(ctx context.Context) ([]*model.User, error) {
	return scanEntities[model.User](ctx, s.store, consts.UserKey)
}
