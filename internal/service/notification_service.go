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

type NotificationService interface {
	// Create 追加一条未读通知。recipient 为空或与 origin 相同（自己触发
	// 自己）时静默跳过，不视为错误。
	Create(ctx context.Context, recipientID, notifyType, originUserID string, related model.NotifyRelated) error
	ListForUser(ctx context.Context, userID string, limit int) ([]*dto.NotificationDTO, error)
	UnreadCount(ctx context.Context, userID string) (*dto.NotifyUnreadDTO, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) (*dto.NotifyMarkAllDTO, error)
}

type notificationServiceImpl struct {
	notifyRepo repository.NotificationRepo
	userRepo   repository.UserRepo
}

func NewNotificationService(notifyRepo repository.NotificationRepo, userRepo repository.UserRepo) NotificationService {
	return &notificationServiceImpl{notifyRepo: notifyRepo, userRepo: userRepo}
}

func (s *notificationServiceImpl) Create(ctx context.Context, recipientID, notifyType, originUserID string, related model.NotifyRelated) error {
	if recipientID == "" || recipientID == originUserID {
		return nil
	}
	notification := &model.Notification{
		ID:           util.NewID(),
		RecipientID:  recipientID,
		Type:         notifyType,
		OriginUserID: originUserID,
		Related:      related,
		IsRead:       false,
		CreatedAt:    time.Now(),
	}
	return s.notifyRepo.Create(ctx, notification)
}

// ListForUser 收件箱，最新在前，补全发起者信息
func (s *notificationServiceImpl) ListForUser(ctx context.Context, userID string, limit int) ([]*dto.NotificationDTO, error) {
	if limit <= 0 || limit > consts.NotifyPageSize {
		limit = consts.NotifyPageSize
	}

	list, err := s.notifyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(list,
		func(n *model.Notification) time.Time { return n.CreatedAt },
		func(n *model.Notification) string { return n.ID })
	if len(list) > limit {
		list = list[:limit]
	}

	res := make([]*dto.NotificationDTO, 0, len(list))
	for _, n := range list {
		d := &dto.NotificationDTO{
			ID:           n.ID,
			Type:         n.Type,
			OriginUserID: n.OriginUserID,
			PostID:       n.Related.PostID,
			CommentID:    n.Related.CommentID,
			CommunityID:  n.Related.CommunityID,
			VideoID:      n.Related.VideoID,
			IsRead:       n.IsRead,
			CreatedAt:    fmtTime(n.CreatedAt),
		}
		if n.OriginUserID != "" {
			origin, err := s.userRepo.GetByID(ctx, n.OriginUserID)
			if err == nil && origin != nil {
				d.OriginName = origin.Nickname
				d.AvatarURL = origin.AvatarURL
			}
		}
		res = append(res, d)
	}
	return res, nil
}

func (s *notificationServiceImpl) UnreadCount(ctx context.Context, userID string) (*dto.NotifyUnreadDTO, error) {
	list, err := s.notifyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	count := 0
	for _, n := range list {
		if !n.IsRead {
			count++
		}
	}
	return &dto.NotifyUnreadDTO{UnreadCount: count}, nil
}

// MarkRead 标记单条已读。键里编入接收者，别人的通知等价于不存在。
func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID, notificationID string) error {
	notification, err := s.notifyRepo.Get(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if notification == nil {
		return ErrNotificationMissing
	}
	if notification.IsRead {
		return nil
	}

	notification.IsRead = true
	notification.ReadAt = util.PtrTime(time.Now())
	return s.notifyRepo.Save(ctx, notification)
}

// MarkAllRead 一键已读，返回实际修改的条数
func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID string) (*dto.NotifyMarkAllDTO, error) {
	list, err := s.notifyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated := 0
	for _, n := range list {
		if n.IsRead {
			continue
		}
		n.IsRead = true
		n.ReadAt = &now
		if err = s.notifyRepo.Save(ctx, n); err != nil {
			return nil, err
		}
		updated++
	}
	return &dto.NotifyMarkAllDTO{UpdatedCount: updated}, nil
}
