package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/pkg/kv"
	"Ripple/internal/pkg/util"
	"Ripple/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"
)

type PostService interface {
	CreatePost(ctx context.Context, userID string, req *dto.PostCreateDTO) (*dto.PostDTO, error)
	// GetPost 墓碑帖子等同不存在
	GetPost(ctx context.Context, viewerID, postID string) (*dto.PostDTO, error)
	// DeletePost 软删除：仅作者可删，打墓碑并回减作者帖子数；
	// 评论与点赞不级联清理，母帖被过滤后它们成为无害孤儿
	DeletePost(ctx context.Context, userID, postID string) error
}

type postServiceImpl struct {
	postRepo      repository.PostRepo
	userRepo      repository.UserRepo
	likeRepo      repository.LikeRepo
	communityRepo repository.CommunityRepo
}

func NewPostService(
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
	likeRepo repository.LikeRepo,
	communityRepo repository.CommunityRepo,
) PostService {
	return &postServiceImpl{
		postRepo:      postRepo,
		userRepo:      userRepo,
		likeRepo:      likeRepo,
		communityRepo: communityRepo,
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID string, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	if req.CommunityID != "" {
		community, err := s.communityRepo.GetByID(ctx, req.CommunityID)
		if err != nil {
			return nil, err
		}
		if community == nil {
			return nil, ErrCommunityNotFound
		}
	}

	post := &model.Post{
		ID:          util.NewID(),
		UserID:      userID,
		Content:     req.Content,
		Type:        req.Type,
		MediaURL:    req.MediaURL,
		CommunityID: req.CommunityID,
		CreatedAt:   time.Now(),
	}
	if err = s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	author, err = s.userRepo.Mutate(ctx, userID, func(u *model.User) {
		u.PostCount++
	})
	if err != nil {
		return nil, err
	}
	if post.CommunityID != "" {
		if _, err = s.communityRepo.Mutate(ctx, post.CommunityID, func(c *model.Community) {
			c.PostCount++
		}); err != nil {
			return nil, err
		}
	}

	return buildPostDTO(post, author, false), nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, viewerID, postID string) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Tombstoned() {
		return nil, ErrPostNotFound
	}

	author, err := s.userRepo.GetByID(ctx, post.UserID)
	if err != nil {
		return nil, err
	}
	isLiked := false
	if viewerID != "" {
		isLiked, err = s.likeRepo.Exists(ctx, postID, viewerID)
		if err != nil {
			return nil, err
		}
	}
	return buildPostDTO(post, author, isLiked), nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, userID, postID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil || post.Tombstoned() {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return ErrPostNotOwned
	}

	now := time.Now()
	if _, err = s.postRepo.Mutate(ctx, postID, func(p *model.Post) {
		if p.DeletedAt == nil {
			p.DeletedAt = &now
		}
	}); err != nil {
		return err
	}

	if _, err = s.userRepo.Mutate(ctx, post.UserID, func(u *model.User) {
		u.PostCount = dec(u.PostCount)
	}); err != nil {
		return err
	}
	if post.CommunityID != "" {
		_, err = s.communityRepo.Mutate(ctx, post.CommunityID, func(c *model.Community) {
			c.PostCount = dec(c.PostCount)
		})
		if errors.Is(err, kv.ErrKeyNotFound) {
			log.WarnContext(ctx, "community missing while deleting post", "community_id", post.CommunityID)
			return nil
		}
		return err
	}
	return nil
}
