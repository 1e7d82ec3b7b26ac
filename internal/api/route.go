package api

import (
	"Ripple/internal/api/middleware"
	"Ripple/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/users")
		{
			// 无需登录即可访问的接口
			userGroup.POST("", group.UserHandler.CreateUser)
			userGroup.GET("/:user_id", group.UserHandler.GetUser)
			userGroup.GET("/handle/:handle", group.UserHandler.GetUserByHandle)
			userGroup.GET("/:user_id/followers", group.UserFollowHandler.GetFollowers)
			userGroup.GET("/:user_id/following", group.UserFollowHandler.GetFollowing)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:user_id/follow", group.UserFollowHandler.ToggleFollow)
				authGroup.GET("/:user_id/follow", group.UserFollowHandler.IsFollowing)
			}
		}

		feedGroup := apiGroup.Group("/feed")
		feedGroup.Use(middleware.AuthOptionalMiddleware())
		{
			feedGroup.GET("", group.FeedHandler.GetFeed)
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/:post_id/comments", group.PostActionHandler.GetComments)
				authOptGroup.POST("/:post_id/view", group.PostActionHandler.RecordView)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
				authGroup.POST("/:post_id/like", group.PostActionHandler.ToggleLike)
				authGroup.POST("/comments", group.PostActionHandler.CreateComment)
			}
		}

		communityGroup := apiGroup.Group("/communities")
		{
			communityGroup.GET("", group.CommunityHandler.ListCommunities)
			communityGroup.GET("/:community_id", group.CommunityHandler.GetCommunity)
			communityGroup.GET("/:community_id/members", group.CommunityHandler.ListMembers)

			authGroup := communityGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.CommunityHandler.CreateCommunity)
				authGroup.POST("/:community_id/membership", group.CommunityHandler.ToggleMembership)
			}
		}

		notifyGroup := apiGroup.Group("/notifications")
		notifyGroup.Use(middleware.AuthMiddleware())
		{
			notifyGroup.GET("", group.NotificationHandler.GetNotificationList)
			notifyGroup.GET("/unread", group.NotificationHandler.GetUnreadCount)
			notifyGroup.POST("/:notification_id/read", group.NotificationHandler.MarkRead)
			notifyGroup.POST("/read/all", group.NotificationHandler.MarkAllRead)
		}

		videoGroup := apiGroup.Group("/video")
		{
			// 转码服务回调，不走用户鉴权
			videoGroup.POST("/uploads/callback", group.VideoHandler.Callback)

			authGroup := videoGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/uploads", group.VideoHandler.RequestUpload)
				authGroup.GET("/uploads/:correlation_id", group.VideoHandler.GetStatus)
			}
		}

		searchGroup := apiGroup.Group("/search")
		{
			searchGroup.GET("", group.SearchHandler.Search)
		}
	}

	return r
}
