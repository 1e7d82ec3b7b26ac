package repository

import (
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/kv"
	"context"
)

type NotificationRepo interface {
	Create(ctx context.Context, notification *model.Notification) error
	// Get 收件人维度的直查，键里编入了接收者，天然隔离他人收件箱
	Get(ctx context.Context, recipientID, notificationID string) (*model.Notification, error)
	Save(ctx context.Context, notification *model.Notification) error
	ListByUser(ctx context.Context, recipientID string) ([]*model.Notification, error)
}

type notificationRepoImpl struct {
	store kv.Store
}

func NewNotificationRepo(store kv.Store) NotificationRepo {
	return &notificationRepoImpl{store: store}
}

func notifyKey(recipientID, notificationID string) string {
	return consts.NotifyKey + recipientID + ":" + notificationID
}

func (s *notificationRepoImpl) Create(ctx context.Context, notification *model.Notification) error {
	return putEntity(ctx, s.store, notifyKey(notification.RecipientID, notification.ID), notification)
}

func (s *notificationRepoImpl) Get(ctx context.Context, recipientID, notificationID string) (*model.Notification, error) {
	return getEntity[model.Notification](ctx, s.store, notifyKey(recipientID, notificationID))
}

func (s *notificationRepoImpl) Save(ctx context.Context, notification *model.Notification) error {
	return putEntity(ctx, s.store, notifyKey(notification.RecipientID, notification.ID), notification)
}

func (s *notificationRepoImpl) ListByUser(ctx context.Context, recipientID string) ([]*model.Notification, error) {
	return scanEntities[model.Notification](ctx, s.store, consts.NotifyKey+recipientID+":")
}
