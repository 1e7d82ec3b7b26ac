package handler

import (
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	userFollowSvc service.UserFollowService
}

func NewUserFollowHandler(userFollowSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{userFollowSvc: userFollowSvc}
}

// ToggleFollow 关注/取关开关，路径里的 user_id 是被关注者
func (s *UserFollowHandler) ToggleFollow(c *gin.Context) {
	userID := c.GetString("user_id")
	targetID := c.Param("user_id")
	if targetID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	state, err := s.userFollowSvc.ToggleFollow(c.Request.Context(), userID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

func (s *UserFollowHandler) GetFollowers(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	followers, err := s.userFollowSvc.GetFollowers(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followers)
}

func (s *UserFollowHandler) GetFollowing(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	following, err := s.userFollowSvc.GetFollowing(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, following)
}

func (s *UserFollowHandler) IsFollowing(c *gin.Context) {
	userID := c.GetString("user_id")
	targetID := c.Param("user_id")
	if targetID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	following, err := s.userFollowSvc.IsFollowing(c.Request.Context(), userID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]bool{"following": following})
}
