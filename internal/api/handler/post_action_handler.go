package handler

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{actionSvc: actionSvc}
}

// ToggleLike 点赞/取消点赞开关
func (s *PostActionHandler) ToggleLike(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("post_id")
	if postID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	state, err := s.actionSvc.ToggleLike(c.Request.Context(), postID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

func (s *PostActionHandler) CreateComment(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	comment, err := s.actionSvc.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *PostActionHandler) GetComments(c *gin.Context) {
	postID := c.Param("post_id")
	if postID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	cursor, limit := getCursorPage(c)

	page, err := s.actionSvc.ListComments(c.Request.Context(), postID, cursor, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// RecordView 浏览上报，未知帖子静默吞掉
func (s *PostActionHandler) RecordView(c *gin.Context) {
	postID := c.Param("post_id")
	if postID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.actionSvc.RecordView(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
