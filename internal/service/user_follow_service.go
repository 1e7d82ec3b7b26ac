package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/repository"
	"context"
	"time"
)

type UserFollowService interface {
	// ToggleFollow 幂等开关：关注时同时递增双方计数并通知被关注者，
	// 取关时回减双方计数。不允许关注自己。
	ToggleFollow(ctx context.Context, userID, targetID string) (*dto.FollowStateDTO, error)
	GetFollowers(ctx context.Context, userID string) ([]*dto.FollowUserDTO, error)
	GetFollowing(ctx context.Context, userID string) ([]*dto.FollowUserDTO, error)
	IsFollowing(ctx context.Context, userID, targetID string) (bool, error)
}

type userFollowServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
	notifySvc  NotificationService
}

func NewUserFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo, notifySvc NotificationService) UserFollowService {
	return &userFollowServiceImpl{followRepo: followRepo, userRepo: userRepo, notifySvc: notifySvc}
}

func (s *userFollowServiceImpl) ToggleFollow(ctx context.Context, userID, targetID string) (*dto.FollowStateDTO, error) {
	if userID == targetID {
		return nil, ErrUserFollowSelf
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	following, err := s.followRepo.Exists(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}

	if following {
		if err = s.followRepo.Delete(ctx, userID, targetID); err != nil {
			return nil, err
		}
		if _, err = s.userRepo.Mutate(ctx, userID, func(u *model.User) {
			u.FollowingCount = dec(u.FollowingCount)
		}); err != nil {
			return nil, err
		}
		target, err = s.userRepo.Mutate(ctx, targetID, func(u *model.User) {
			u.FollowerCount = dec(u.FollowerCount)
		})
		if err != nil {
			return nil, err
		}
		return &dto.FollowStateDTO{Following: false, FollowerCount: target.FollowerCount}, nil
	}

	if err = s.followRepo.Create(ctx, &model.Follow{
		FollowerID:  userID,
		FollowingID: targetID,
		CreatedAt:   time.Now(),
	}); err != nil {
		return nil, err
	}
	if _, err = s.userRepo.Mutate(ctx, userID, func(u *model.User) {
		u.FollowingCount++
	}); err != nil {
		return nil, err
	}
	target, err = s.userRepo.Mutate(ctx, targetID, func(u *model.User) {
		u.FollowerCount++
	})
	if err != nil {
		return nil, err
	}

	if err = s.notifySvc.Create(ctx, targetID, model.NotifyTypeFollow, userID, model.NotifyRelated{}); err != nil {
		return nil, err
	}
	return &dto.FollowStateDTO{Following: true, FollowerCount: target.FollowerCount}, nil
}

func (s *userFollowServiceImpl) GetFollowers(ctx context.Context, userID string) ([]*dto.FollowUserDTO, error) {
	follows, err := s.followRepo.Followers(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(follows,
		func(f *model.Follow) time.Time { return f.CreatedAt },
		func(f *model.Follow) string { return f.FollowerID })
	return s.buildFollowUsers(ctx, follows, func(f *model.Follow) string { return f.FollowerID })
}

func (s *userFollowServiceImpl) GetFollowing(ctx context.Context, userID string) ([]*dto.FollowUserDTO, error) {
	follows, err := s.followRepo.Following(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(follows,
		func(f *model.Follow) time.Time { return f.CreatedAt },
		func(f *model.Follow) string { return f.FollowingID })
	return s.buildFollowUsers(ctx, follows, func(f *model.Follow) string { return f.FollowingID })
}

func (s *userFollowServiceImpl) IsFollowing(ctx context.Context, userID, targetID string) (bool, error) {
	return s.followRepo.Exists(ctx, userID, targetID)
}

func (s *userFollowServiceImpl) buildFollowUsers(ctx context.Context, follows []*model.Follow, pick func(*model.Follow) string) ([]*dto.FollowUserDTO, error) {
	res := make([]*dto.FollowUserDTO, 0, len(follows))
	for _, f := range follows {
		user, err := s.userRepo.GetByID(ctx, pick(f))
		if err != nil {
			return nil, err
		}
		if user == nil {
			continue
		}
		res = append(res, &dto.FollowUserDTO{
			UserID:    user.ID,
			Nickname:  user.Nickname,
			Handle:    user.Handle,
			AvatarURL: user.AvatarURL,
			CreatedAt: fmtTime(f.CreatedAt),
		})
	}
	return res, nil
}
