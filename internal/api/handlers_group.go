package api

import "Ripple/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	UserFollowHandler   *handler.UserFollowHandler
	FeedHandler         *handler.FeedHandler
	PostHandler         *handler.PostHandler
	PostActionHandler   *handler.PostActionHandler
	CommunityHandler    *handler.CommunityHandler
	NotificationHandler *handler.NotificationHandler
	VideoHandler        *handler.VideoHandler
	SearchHandler       *handler.SearchHandler
}
