package repository

import (
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/kv"
	"context"
)

type CommunityRepo interface {
	Create(ctx context.Context, community *model.Community) error
	GetByID(ctx context.Context, communityID string) (*model.Community, error)
	Mutate(ctx context.Context, communityID string, fn func(*model.Community)) (*model.Community, error)
	All(ctx context.Context) ([]*model.Community, error)
}

type communityRepoImpl struct {
	store kv.Store
}

func NewCommunityRepo(store kv.Store) CommunityRepo {
	return &communityRepoImpl{store: store}
}

func (s *communityRepoImpl) Create(ctx context.Context, community *model.Community) error {
	return putEntity(ctx, s.store, consts.CommunityKey+community.ID, community)
}

func (s *communityRepoImpl) GetByID(ctx context.Context, communityID string) (*model.Community, error) {
	return getEntity[model.Community](ctx, s.store, consts.CommunityKey+communityID)
}

func (s *communityRepoImpl) Mutate(ctx context.Context, communityID string, fn func(*model.Community)) (*model.Community, error) {
	return updateEntity(ctx, s.store, consts.CommunityKey+communityID, fn)
}

func (s *communityRepoImpl) All(ctx context.Context) ([]*model.Community, error) {
	return scanEntities[model.Community](ctx, s.store, consts.CommunityKey)
}
