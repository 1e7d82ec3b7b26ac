package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/util"
	"Ripple/internal/repository"
	"context"
	"time"
)

type CommunityService interface {
	// CreateCommunity 创建者自动成为 admin 成员，memberCount 从 1 起
	CreateCommunity(ctx context.Context, creatorID string, req *dto.CommunityCreateDTO) (*dto.CommunityDTO, error)
	GetCommunity(ctx context.Context, communityID string) (*dto.CommunityDTO, error)
	ListCommunities(ctx context.Context, cursor string, limit int) (*dto.CommunityPageDTO, error)
	// ToggleMembership 幂等开关：加入发 community_join 通知给创建者；
	// 创建者退出被拒绝（Forbidden）
	ToggleMembership(ctx context.Context, communityID, userID string) (*dto.MembershipStateDTO, error)
	ListMembers(ctx context.Context, communityID string) ([]*dto.MemberDTO, error)
}

type communityServiceImpl struct {
	communityRepo  repository.CommunityRepo
	membershipRepo repository.MembershipRepo
	userRepo       repository.UserRepo
	notifySvc      NotificationService
}

func NewCommunityService(
	communityRepo repository.CommunityRepo,
	membershipRepo repository.MembershipRepo,
	userRepo repository.UserRepo,
	notifySvc NotificationService,
) CommunityService {
	return &communityServiceImpl{
		communityRepo:  communityRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		notifySvc:      notifySvc,
	}
}

func (s *communityServiceImpl) CreateCommunity(ctx context.Context, creatorID string, req *dto.CommunityCreateDTO) (*dto.CommunityDTO, error) {
	creator, err := s.userRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	community := &model.Community{
		ID:          util.NewID(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		CreatorID:   creatorID,
		MemberCount: 1,
		IsPrivate:   req.IsPrivate,
		CreatedAt:   now,
	}
	if err = s.communityRepo.Create(ctx, community); err != nil {
		return nil, err
	}

	if err = s.membershipRepo.Create(ctx, &model.Membership{
		CommunityID: community.ID,
		UserID:      creatorID,
		Role:        model.RoleAdmin,
		CreatedAt:   now,
	}); err != nil {
		return nil, err
	}
	return buildCommunityDTO(community), nil
}

func (s *communityServiceImpl) GetCommunity(ctx context.Context, communityID string) (*dto.CommunityDTO, error) {
	community, err := s.communityRepo.GetByID(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if community == nil {
		return nil, ErrCommunityNotFound
	}
	return buildCommunityDTO(community), nil
}

func (s *communityServiceImpl) ListCommunities(ctx context.Context, cursor string, limit int) (*dto.CommunityPageDTO, error) {
	if limit <= 0 || limit > consts.MaxPageSize {
		limit = consts.DefaultPageSize
	}

	communities, err := s.communityRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(communities,
		func(c *model.Community) time.Time { return c.CreatedAt },
		func(c *model.Community) string { return c.ID })

	page, nextCursor, hasMore := paginateAfter(communities, cursor, limit,
		func(c *model.Community) string { return c.ID })

	items := make([]*dto.CommunityDTO, 0, len(page))
	for _, c := range page {
		items = append(items, buildCommunityDTO(c))
	}
	return &dto.CommunityPageDTO{Items: items, NextCursor: nextCursor, HasMore: hasMore}, nil
}

func (s *communityServiceImpl) ToggleMembership(ctx context.Context, communityID, userID string) (*dto.MembershipStateDTO, error) {
	community, err := s.communityRepo.GetByID(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if community == nil {
		return nil, ErrCommunityNotFound
	}

	membership, err := s.membershipRepo.Get(ctx, communityID, userID)
	if err != nil {
		return nil, err
	}

	if membership != nil {
		// 退出
		if community.CreatorID == userID {
			return nil, ErrCreatorCannotLeave
		}
		if err = s.membershipRepo.Delete(ctx, communityID, userID); err != nil {
			return nil, err
		}
		community, err = s.communityRepo.Mutate(ctx, communityID, func(c *model.Community) {
			c.MemberCount = dec(c.MemberCount)
		})
		if err != nil {
			return nil, err
		}
		return &dto.MembershipStateDTO{Joined: false, MemberCount: community.MemberCount}, nil
	}

	// 加入
	if err = s.membershipRepo.Create(ctx, &model.Membership{
		CommunityID: communityID,
		UserID:      userID,
		Role:        model.RoleMember,
		CreatedAt:   time.Now(),
	}); err != nil {
		return nil, err
	}
	community, err = s.communityRepo.Mutate(ctx, communityID, func(c *model.Community) {
		c.MemberCount++
	})
	if err != nil {
		return nil, err
	}

	if err = s.notifySvc.Create(ctx, community.CreatorID, model.NotifyTypeCommunityJoin, userID,
		model.NotifyRelated{CommunityID: communityID}); err != nil {
		return nil, err
	}
	return &dto.MembershipStateDTO{Joined: true, MemberCount: community.MemberCount}, nil
}

func (s *communityServiceImpl) ListMembers(ctx context.Context, communityID string) ([]*dto.MemberDTO, error) {
	community, err := s.communityRepo.GetByID(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if community == nil {
		return nil, ErrCommunityNotFound
	}

	memberships, err := s.membershipRepo.ListByCommunity(ctx, communityID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(memberships,
		func(m *model.Membership) time.Time { return m.CreatedAt },
		func(m *model.Membership) string { return m.UserID })

	res := make([]*dto.MemberDTO, 0, len(memberships))
	for _, m := range memberships {
		user, err := s.userRepo.GetByID(ctx, m.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			continue
		}
		res = append(res, &dto.MemberDTO{
			UserID:    user.ID,
			Nickname:  user.Nickname,
			Handle:    user.Handle,
			AvatarURL: user.AvatarURL,
			Role:      m.Role,
			CreatedAt: fmtTime(m.CreatedAt),
		})
	}
	return res, nil
}
