package repository

import (
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/kv"
	"context"
)

type MembershipRepo interface {
	Get(ctx context.Context, communityID, userID string) (*model.Membership, error)
	// Create 写入成员记录和 ucomm 反向索引
	Create(ctx context.Context, membership *model.Membership) error
	Delete(ctx context.Context, communityID, userID string) error
	ListByCommunity(ctx context.Context, communityID string) ([]*model.Membership, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Membership, error)
	CountByCommunity(ctx context.Context, communityID string) (int, error)
}

type membershipRepoImpl struct {
	store kv.Store
}

func NewMembershipRepo(store kv.Store) MembershipRepo {
	return &membershipRepoImpl{store: store}
}

func memberKey(communityID, userID string) string {
	return consts.MemberKey + communityID + ":" + userID
}

func userCommKey(userID, communityID string) string {
	return consts.UserCommKey + userID + ":" + communityID
}

func (s *membershipRepoImpl) Get(ctx context.Context, communityID, userID string) (*model.Membership, error) {
	return getEntity[model.Membership](ctx, s.store, memberKey(communityID, userID))
}

func (s *membershipRepoImpl) Create(ctx context.Context, membership *model.Membership) error {
	if err := putEntity(ctx, s.store, memberKey(membership.CommunityID, membership.UserID), membership); err != nil {
		return err
	}
	return putEntity(ctx, s.store, userCommKey(membership.UserID, membership.CommunityID), membership)
}

func (s *membershipRepoImpl) Delete(ctx context.Context, communityID, userID string) error {
	if err := s.store.Delete(ctx, memberKey(communityID, userID)); err != nil {
		return err
	}
	return s.store.Delete(ctx, userCommKey(userID, communityID))
}

func (s *membershipRepoImpl) ListByCommunity(ctx context.Context, communityID string) ([]*model.Membership, error) {
	return scanEntities[model.Membership](ctx, s.store, consts.MemberKey+communityID+":")
}

func (s *membershipRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Membership, error) {
	return scanEntities[model.Membership](ctx, s.store, consts.UserCommKey+userID+":")
}

func (s *membershipRepoImpl) CountByCommunity(ctx context.Context, communityID string) (int, error) {
	entries, err := s.store.ScanPrefix(ctx, consts.MemberKey+communityID+":")
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
