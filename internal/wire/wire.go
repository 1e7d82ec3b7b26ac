package wire

import (
	"Ripple/internal/api"
	"Ripple/internal/api/handler"
	"Ripple/internal/job"
	"Ripple/internal/pkg/cron"
	"Ripple/internal/pkg/kv"
	"Ripple/internal/repository"
	"Ripple/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	Store   kv.Store
	CronMgr *cron.Manager
}

func BuildApplication(store kv.Store, signer service.UploadSigner) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(store)
	postRepo := repository.NewPostRepo(store)
	commentRepo := repository.NewCommentRepo(store)
	likeRepo := repository.NewLikeRepo(store)
	followRepo := repository.NewFollowRepo(store)
	communityRepo := repository.NewCommunityRepo(store)
	membershipRepo := repository.NewMembershipRepo(store)
	notifyRepo := repository.NewNotificationRepo(store)
	videoRepo := repository.NewVideoRepo(store)

	notifyService := service.NewNotificationService(notifyRepo, userRepo)
	userService := service.NewUserService(userRepo)
	userFollowService := service.NewUserFollowService(followRepo, userRepo, notifyService)
	feedService := service.NewFeedService(postRepo, userRepo, likeRepo)
	postService := service.NewPostService(postRepo, userRepo, likeRepo, communityRepo)
	postActionService := service.NewPostActionService(postRepo, commentRepo, likeRepo, userRepo, notifyService)
	communityService := service.NewCommunityService(communityRepo, membershipRepo, userRepo, notifyService)
	videoService := service.NewVideoService(videoRepo, postRepo, notifyService, signer)
	searchService := service.NewSearchService(postRepo, userRepo, communityRepo)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		UserFollowHandler:   handler.NewUserFollowHandler(userFollowService),
		FeedHandler:         handler.NewFeedHandler(feedService),
		PostHandler:         handler.NewPostHandler(postService),
		PostActionHandler:   handler.NewPostActionHandler(postActionService),
		CommunityHandler:    handler.NewCommunityHandler(communityService),
		NotificationHandler: handler.NewNotificationHandler(notifyService),
		VideoHandler:        handler.NewVideoHandler(videoService),
		SearchHandler:       handler.NewSearchHandler(searchService),
	}

	router := api.SetupRouter(handlers)

	auditJob := job.NewCounterAuditJob(userRepo, postRepo, likeRepo, commentRepo, followRepo, communityRepo, membershipRepo)
	cronMgr := cron.NewCronManager(auditJob)

	return &ApplicationContainer{
		Router:  router,
		Store:   store,
		CronMgr: cronMgr,
	}, nil
}
