package job

import (
	"Ripple/internal/model"
	"Ripple/internal/pkg/kv"
	"Ripple/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterAuditJob_RepairsDrift(t *testing.T) {
	store := kv.NewMemoryStore()
	userRepo := repository.NewUserRepo(store)
	postRepo := repository.NewPostRepo(store)
	likeRepo := repository.NewLikeRepo(store)
	commentRepo := repository.NewCommentRepo(store)
	followRepo := repository.NewFollowRepo(store)
	communityRepo := repository.NewCommunityRepo(store)
	membershipRepo := repository.NewMembershipRepo(store)

	ctx := context.Background()
	now := time.Now()

	alice := &model.User{ID: "u1", Handle: "alice", CreatedAt: now}
	bob := &model.User{ID: "u2", Handle: "bob", CreatedAt: now}
	for _, u := range []*model.User{alice, bob} {
		claimed, err := userRepo.Create(ctx, u)
		require.NoError(t, err)
		require.True(t, claimed)
	}

	// 帖子的冗余计数与关系记录对不上
	post := &model.Post{ID: "p1", UserID: alice.ID, Content: "x", Type: "text", LikesCount: 9, CreatedAt: now}
	require.NoError(t, postRepo.Create(ctx, post))
	require.NoError(t, likeRepo.Create(ctx, &model.Like{PostID: post.ID, UserID: bob.ID, CreatedAt: now}))
	require.NoError(t, commentRepo.Create(ctx, &model.Comment{ID: "c1", PostID: post.ID, UserID: bob.ID, Content: "hi", CreatedAt: now}))

	// 用户关注计数漂移
	require.NoError(t, followRepo.Create(ctx, &model.Follow{FollowerID: bob.ID, FollowingID: alice.ID, CreatedAt: now}))
	_, err := userRepo.Mutate(ctx, alice.ID, func(u *model.User) { u.FollowerCount = 5 })
	require.NoError(t, err)

	// 社区成员计数漂移
	community := &model.Community{ID: "g1", Name: "gophers", CreatorID: alice.ID, MemberCount: 3, CreatedAt: now}
	require.NoError(t, communityRepo.Create(ctx, community))
	require.NoError(t, membershipRepo.Create(ctx, &model.Membership{CommunityID: community.ID, UserID: alice.ID, Role: model.RoleAdmin, CreatedAt: now}))

	job := NewCounterAuditJob(userRepo, postRepo, likeRepo, commentRepo, followRepo, communityRepo, membershipRepo)
	job.Run()

	gotPost, err := postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotPost.LikesCount)
	assert.Equal(t, 1, gotPost.CommentCount)

	gotAlice, err := userRepo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotAlice.FollowerCount)

	gotBob, err := userRepo.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotBob.FollowingCount)

	gotCommunity, err := communityRepo.GetByID(ctx, community.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotCommunity.MemberCount)
}

func TestCounterAuditJob_SkipsTombstonedPosts(t *testing.T) {
	store := kv.NewMemoryStore()
	userRepo := repository.NewUserRepo(store)
	postRepo := repository.NewPostRepo(store)
	likeRepo := repository.NewLikeRepo(store)
	commentRepo := repository.NewCommentRepo(store)
	followRepo := repository.NewFollowRepo(store)
	communityRepo := repository.NewCommunityRepo(store)
	membershipRepo := repository.NewMembershipRepo(store)

	ctx := context.Background()
	now := time.Now()

	// 墓碑帖子的计数不再对账
	post := &model.Post{ID: "p1", UserID: "u1", Content: "x", Type: "text", LikesCount: 9, DeletedAt: &now, CreatedAt: now}
	require.NoError(t, postRepo.Create(ctx, post))

	job := NewCounterAuditJob(userRepo, postRepo, likeRepo, commentRepo, followRepo, communityRepo, membershipRepo)
	job.Run()

	got, err := postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.LikesCount)
}
