package repository

import (
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/kv"
	"context"
)

type VideoRepo interface {
	Create(ctx context.Context, upload *model.VideoUpload) error
	GetByID(ctx context.Context, correlationID string) (*model.VideoUpload, error)
	Mutate(ctx context.Context, correlationID string, fn func(*model.VideoUpload)) (*model.VideoUpload, error)
}

type videoRepoImpl struct {
	store kv.Store
}

func NewVideoRepo(store kv.Store) VideoRepo {
	return &videoRepoImpl{store: store}
}

func (s *videoRepoImpl) Create(ctx context.Context, upload *model.VideoUpload) error {
	return putEntity(ctx, s.store, consts.VideoKey+upload.ID, upload)
}

func (s *videoRepoImpl) GetByID(ctx context.Context, correlationID string) (*model.VideoUpload, error) {
	return getEntity[model.VideoUpload](ctx, s.store, consts.VideoKey+correlationID)
}

func (s *videoRepoImpl) Mutate(ctx context.Context, correlationID string, fn func(*model.VideoUpload)) (*model.VideoUpload, error) {
	return updateEntity(ctx, s.store, consts.VideoKey+correlationID, fn)
}
