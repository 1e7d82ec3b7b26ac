package repository

import (
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/kv"
	"context"
	"errors"
)

type LikeRepo interface {
	Exists(ctx context.Context, postID, userID string) (bool, error)
	Create(ctx context.Context, like *model.Like) error
	Delete(ctx context.Context, postID, userID string) error
	CountByPost(ctx context.Context, postID string) (int, error)
}

type likeRepoImpl struct {
	store kv.Store
}

func NewLikeRepo(store kv.Store) LikeRepo {
	return &likeRepoImpl{store: store}
}

func likeKey(postID, userID string) string {
	return consts.LikeKey + postID + ":" + userID
}

func (s *likeRepoImpl) Exists(ctx context.Context, postID, userID string) (bool, error) {
	_, err := s.store.Get(ctx, likeKey(postID, userID))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *likeRepoImpl) Create(ctx context.Context, like *model.Like) error {
	return putEntity(ctx, s.store, likeKey(like.PostID, like.UserID), like)
}

func (s *likeRepoImpl) Delete(ctx context.Context, postID, userID string) error {
	return s.store.Delete(ctx, likeKey(postID, userID))
}

func (s *likeRepoImpl) CountByPost(ctx context.Context, postID string) (int, error) {
	entries, err := s.store.ScanPrefix(ctx, consts.LikeKey+postID+":")
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
