package handler

import (
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{feedSvc: feedSvc}
}

// GetFeed 全站流，可选 community_id 过滤出社区流
func (s *FeedHandler) GetFeed(c *gin.Context) {
	viewerID := c.GetString("user_id")
	communityID := c.Query("community_id")
	cursor, limit := getCursorPage(c)

	feed, err := s.feedSvc.GetFeed(c.Request.Context(), viewerID, communityID, cursor, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}
