package handler

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	communitySvc service.CommunityService
}

func NewCommunityHandler(communitySvc service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communitySvc: communitySvc}
}

func (s *CommunityHandler) CreateCommunity(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.CommunityCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	community, err := s.communitySvc.CreateCommunity(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, community)
}

func (s *CommunityHandler) GetCommunity(c *gin.Context) {
	communityID := c.Param("community_id")
	if communityID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	community, err := s.communitySvc.GetCommunity(c.Request.Context(), communityID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, community)
}

func (s *CommunityHandler) ListCommunities(c *gin.Context) {
	cursor, limit := getCursorPage(c)

	page, err := s.communitySvc.ListCommunities(c.Request.Context(), cursor, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// ToggleMembership 加入/退出社区开关
func (s *CommunityHandler) ToggleMembership(c *gin.Context) {
	userID := c.GetString("user_id")
	communityID := c.Param("community_id")
	if communityID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	state, err := s.communitySvc.ToggleMembership(c.Request.Context(), communityID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

func (s *CommunityHandler) ListMembers(c *gin.Context) {
	communityID := c.Param("community_id")
	if communityID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	members, err := s.communitySvc.ListMembers(c.Request.Context(), communityID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, members)
}
