package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/repository"
	"context"
	"time"
)

type FeedService interface {
	// GetFeed 全站或社区帖子流。viewerID 为空时不做点赞状态补全；
	// cursor 为上一页最后一条帖子 ID，找不到时静默从头开始。
	GetFeed(ctx context.Context, viewerID, communityID, cursor string, limit int) (*dto.FeedDTO, error)
}

type feedServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
	likeRepo repository.LikeRepo
}

func NewFeedService(postRepo repository.PostRepo, userRepo repository.UserRepo, likeRepo repository.LikeRepo) FeedService {
	return &feedServiceImpl{postRepo: postRepo, userRepo: userRepo, likeRepo: likeRepo}
}

func (s *feedServiceImpl) GetFeed(ctx context.Context, viewerID, communityID, cursor string, limit int) (*dto.FeedDTO, error) {
	if limit <= 0 || limit > consts.MaxPageSize {
		limit = consts.DefaultPageSize
	}

	var posts []*model.Post
	var err error
	if communityID != "" {
		posts, err = s.postRepo.ByCommunity(ctx, communityID)
	} else {
		posts, err = s.postRepo.All(ctx)
	}
	if err != nil {
		return nil, err
	}

	live := posts[:0]
	for _, p := range posts {
		if !p.Tombstoned() {
			live = append(live, p)
		}
	}
	sortNewestFirst(live,
		func(p *model.Post) time.Time { return p.CreatedAt },
		func(p *model.Post) string { return p.ID })

	page, nextCursor, hasMore := paginateAfter(live, cursor, limit,
		func(p *model.Post) string { return p.ID })

	items := make([]*dto.PostDTO, 0, len(page))
	for _, p := range page {
		author, err := s.userRepo.GetByID(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		isLiked := false
		if viewerID != "" {
			isLiked, err = s.likeRepo.Exists(ctx, p.ID, viewerID)
			if err != nil {
				return nil, err
			}
		}
		items = append(items, buildPostDTO(p, author, isLiked))
	}

	return &dto.FeedDTO{Items: items, NextCursor: nextCursor, HasMore: hasMore}, nil
}
