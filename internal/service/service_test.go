package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/pkg/kv"
	"Ripple/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSigner 测试用直传签名器
type fakeSigner struct{}

func (fakeSigner) SignPutURL(_ context.Context, objectName string, _ string) (string, error) {
	return "https://upload.test/" + objectName, nil
}

type testEnv struct {
	store *kv.MemoryStore

	userRepo       repository.UserRepo
	postRepo       repository.PostRepo
	commentRepo    repository.CommentRepo
	likeRepo       repository.LikeRepo
	followRepo     repository.FollowRepo
	communityRepo  repository.CommunityRepo
	membershipRepo repository.MembershipRepo
	notifyRepo     repository.NotificationRepo
	videoRepo      repository.VideoRepo

	userSvc       UserService
	userFollowSvc UserFollowService
	feedSvc       FeedService
	postSvc       PostService
	actionSvc     PostActionService
	communitySvc  CommunityService
	notifySvc     NotificationService
	videoSvc      VideoService
	searchSvc     SearchService
}

func newTestEnv() *testEnv {
	store := kv.NewMemoryStore()

	e := &testEnv{
		store:          store,
		userRepo:       repository.NewUserRepo(store),
		postRepo:       repository.NewPostRepo(store),
		commentRepo:    repository.NewCommentRepo(store),
		likeRepo:       repository.NewLikeRepo(store),
		followRepo:     repository.NewFollowRepo(store),
		communityRepo:  repository.NewCommunityRepo(store),
		membershipRepo: repository.NewMembershipRepo(store),
		notifyRepo:     repository.NewNotificationRepo(store),
		videoRepo:      repository.NewVideoRepo(store),
	}

	e.notifySvc = NewNotificationService(e.notifyRepo, e.userRepo)
	e.userSvc = NewUserService(e.userRepo)
	e.userFollowSvc = NewUserFollowService(e.followRepo, e.userRepo, e.notifySvc)
	e.feedSvc = NewFeedService(e.postRepo, e.userRepo, e.likeRepo)
	e.postSvc = NewPostService(e.postRepo, e.userRepo, e.likeRepo, e.communityRepo)
	e.actionSvc = NewPostActionService(e.postRepo, e.commentRepo, e.likeRepo, e.userRepo, e.notifySvc)
	e.communitySvc = NewCommunityService(e.communityRepo, e.membershipRepo, e.userRepo, e.notifySvc)
	e.videoSvc = NewVideoService(e.videoRepo, e.postRepo, e.notifySvc, fakeSigner{})
	e.searchSvc = NewSearchService(e.postRepo, e.userRepo, e.communityRepo)

	return e
}

func (e *testEnv) mustCreateUser(t *testing.T, handle string) *dto.UserDTO {
	t.Helper()
	token, err := e.userSvc.CreateUser(context.Background(), &dto.UserCreateDTO{
		Email:    handle + "@example.com",
		Nickname: "u-" + handle,
		Handle:   handle,
	})
	require.NoError(t, err)
	return token.User
}

func (e *testEnv) mustCreatePost(t *testing.T, userID, content string) *dto.PostDTO {
	t.Helper()
	post, err := e.postSvc.CreatePost(context.Background(), userID, &dto.PostCreateDTO{
		Content: content,
		Type:    "text",
	})
	require.NoError(t, err)
	return post
}
