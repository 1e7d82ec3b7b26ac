package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/kv"
	"Ripple/internal/pkg/util"
	"Ripple/internal/repository"
	"context"
	"errors"
	"time"
)

type PostActionService interface {
	// ToggleLike 幂等开关：已点赞则取消并回减计数，未点赞则创建并递增。
	// 点赞时给作者发通知，自己给自己点赞不发。
	ToggleLike(ctx context.Context, postID, userID string) (*dto.LikeStateDTO, error)
	CreateComment(ctx context.Context, userID string, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, postID, cursor string, limit int) (*dto.CommentPageDTO, error)
	// RecordView 浏览计数，帖子不存在时静默返回
	RecordView(ctx context.Context, postID string) error
}

type postActionServiceImpl struct {
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	likeRepo    repository.LikeRepo
	userRepo    repository.UserRepo
	notifySvc   NotificationService
}

func NewPostActionService(
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	likeRepo repository.LikeRepo,
	userRepo repository.UserRepo,
	notifySvc NotificationService,
) PostActionService {
	return &postActionServiceImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
		notifySvc:   notifySvc,
	}
}

// getLivePost 过滤墓碑后的帖子直查
func (s *postActionServiceImpl) getLivePost(ctx context.Context, postID string) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Tombstoned() {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *postActionServiceImpl) ToggleLike(ctx context.Context, postID, userID string) (*dto.LikeStateDTO, error) {
	post, err := s.getLivePost(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked, err := s.likeRepo.Exists(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	if liked {
		if err = s.likeRepo.Delete(ctx, postID, userID); err != nil {
			return nil, err
		}
		post, err = s.postRepo.Mutate(ctx, postID, func(p *model.Post) {
			p.LikesCount = dec(p.LikesCount)
		})
		if err != nil {
			return nil, err
		}
		return &dto.LikeStateDTO{Liked: false, LikesCount: post.LikesCount}, nil
	}

	if err = s.likeRepo.Create(ctx, &model.Like{PostID: postID, UserID: userID, CreatedAt: time.Now()}); err != nil {
		return nil, err
	}
	post, err = s.postRepo.Mutate(ctx, postID, func(p *model.Post) {
		p.LikesCount++
	})
	if err != nil {
		return nil, err
	}

	if err = s.notifySvc.Create(ctx, post.UserID, model.NotifyTypeLike, userID,
		model.NotifyRelated{PostID: postID}); err != nil {
		return nil, err
	}
	return &dto.LikeStateDTO{Liked: true, LikesCount: post.LikesCount}, nil
}

func (s *postActionServiceImpl) CreateComment(ctx context.Context, userID string, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	post, err := s.getLivePost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:        util.NewID(),
		PostID:    req.PostID,
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err = s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if _, err = s.postRepo.Mutate(ctx, req.PostID, func(p *model.Post) {
		p.CommentCount++
	}); err != nil {
		return nil, err
	}

	if err = s.notifySvc.Create(ctx, post.UserID, model.NotifyTypeComment, userID,
		model.NotifyRelated{PostID: req.PostID, CommentID: comment.ID}); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildCommentDTO(comment, author), nil
}

func (s *postActionServiceImpl) ListComments(ctx context.Context, postID, cursor string, limit int) (*dto.CommentPageDTO, error) {
	if limit <= 0 || limit > consts.MaxPageSize {
		limit = consts.DefaultPageSize
	}

	if _, err := s.getLivePost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	live := comments[:0]
	for _, c := range comments {
		if !c.Tombstoned() {
			live = append(live, c)
		}
	}
	sortNewestFirst(live,
		func(c *model.Comment) time.Time { return c.CreatedAt },
		func(c *model.Comment) string { return c.ID })

	page, nextCursor, hasMore := paginateAfter(live, cursor, limit,
		func(c *model.Comment) string { return c.ID })

	items := make([]*dto.CommentDTO, 0, len(page))
	for _, c := range page {
		author, err := s.userRepo.GetByID(ctx, c.UserID)
		if err != nil {
			return nil, err
		}
		items = append(items, s.buildCommentDTO(c, author))
	}
	return &dto.CommentPageDTO{Items: items, NextCursor: nextCursor, HasMore: hasMore}, nil
}

func (s *postActionServiceImpl) RecordView(ctx context.Context, postID string) error {
	_, err := s.postRepo.Mutate(ctx, postID, func(p *model.Post) {
		if !p.Tombstoned() {
			p.ViewCount++
		}
	})
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil
	}
	return err
}

func (s *postActionServiceImpl) buildCommentDTO(comment *model.Comment, author *model.User) *dto.CommentDTO {
	d := &dto.CommentDTO{
		ID:         comment.ID,
		PostID:     comment.PostID,
		UserID:     comment.UserID,
		Content:    comment.Content,
		LikesCount: comment.LikesCount,
		CreatedAt:  fmtTime(comment.CreatedAt),
	}
	if author != nil {
		d.Nickname = author.Nickname
		d.AvatarURL = author.AvatarURL
	}
	return d
}
