package repository

import (
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/kv"
	"context"
)

type PostRepo interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, postID string) (*model.Post, error)
	Save(ctx context.Context, post *model.Post) error
	// Mutate 原子读-改-写，帖子不存在时返回 kv.ErrKeyNotFound
	Mutate(ctx context.Context, postID string, fn func(*model.Post)) (*model.Post, error)
	All(ctx context.Context) ([]*model.Post, error)
	// ByCommunity 通过 cpost 索引做定向范围读，不做全命名空间扫描
	ByCommunity(ctx context.Context, communityID string) ([]*model.Post, error)
}

type postRepoImpl struct {
	store kv.Store
}

func NewPostRepo(store kv.Store) PostRepo {
	return &postRepoImpl{store: store}
}

func (s *postRepoImpl) Create(ctx context.Context, post *model.Post) error {
	if err := putEntity(ctx, s.store, consts.PostKey+post.ID, post); err != nil {
		return err
	}
	if post.CommunityID != "" {
		indexKey := consts.CommPostKey + post.CommunityID + ":" + post.ID
		return s.store.Set(ctx, indexKey, []byte(post.ID))
	}
	return nil
}

func (s *postRepoImpl) GetByID(ctx context.Context, postID string) (*model.Post, error) {
	return getEntity[model.Post](ctx, s.store, consts.PostKey+postID)
}

func (s *postRepoImpl) Save(ctx context.Context, post *model.Post) error {
	return putEntity(ctx, s.store, consts.PostKey+post.ID, post)
}

func (s *postRepoImpl) Mutate(ctx context.Context, postID string, fn func(*model.Post)) (*model.Post, error) {
	return updateEntity(ctx, s.store, consts.PostKey+postID, fn)
}

func (s *postRepoImpl) All(ctx context.Context) ([]*model.Post, error) {
	return scanEntities[model.Post](ctx, s.store, consts.PostKey)
}

func (s *postRepoImpl) ByCommunity(ctx context.Context, communityID string) ([]*model.Post, error) {
	entries, err := s.store.ScanPrefix(ctx, consts.CommPostKey+communityID+":")
	if err != nil {
		return nil, err
	}
	posts := make([]*model.Post, 0, len(entries))
	for _, e := range entries {
		post, err := s.GetByID(ctx, string(e.Value))
		if err != nil {
			return nil, err
		}
		if post == nil {
			// 索引残留，主记录已不存在
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}
