package repository

import (
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/kv"
	"context"
)

type CommentRepo interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, postID, commentID string) (*model.Comment, error)
	// ListByPost 单帖评论的定向范围读
	ListByPost(ctx context.Context, postID string) ([]*model.Comment, error)
	CountByPost(ctx context.Context, postID string) (int, error)
}

type commentRepoImpl struct {
	store kv.Store
}

func NewCommentRepo(store kv.Store) CommentRepo {
	return &commentRepoImpl{store: store}
}

func commentKey(postID, commentID string) string {
	return consts.CommentKey + postID + ":" + commentID
}

func (s *commentRepoImpl) Create(ctx context.Context, comment *model.Comment) error {
	return putEntity(ctx, s.store, commentKey(comment.PostID, comment.ID), comment)
}

func (s *commentRepoImpl) GetByID(ctx context.Context, postID, commentID string) (*model.Comment, error) {
	return getEntity[model.Comment](ctx, s.store, commentKey(postID, commentID))
}

func (s *commentRepoImpl) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	return scanEntities[model.Comment](ctx, s.store, consts.CommentKey+postID+":")
}

func (s *commentRepoImpl) CountByPost(ctx context.Context, postID string) (int, error) {
	comments, err := s.ListByPost(ctx, postID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, c := range comments {
		if !c.Tombstoned() {
			count++
		}
	}
	return count, nil
}
