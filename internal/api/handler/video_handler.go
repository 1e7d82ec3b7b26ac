package handler

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoSvc service.VideoService
}

func NewVideoHandler(videoSvc service.VideoService) *VideoHandler {
	return &VideoHandler{videoSvc: videoSvc}
}

// RequestUpload 申请直传地址，创建 pending 状态的上传记录
func (s *VideoHandler) RequestUpload(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.VideoUploadRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	upload, err := s.videoSvc.RequestUpload(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, upload)
}

// Callback 转码服务回调（webhook），以 correlation_id 做幂等键
func (s *VideoHandler) Callback(c *gin.Context) {
	var req dto.VideoCallbackDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	status, err := s.videoSvc.CompleteUpload(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}

func (s *VideoHandler) GetStatus(c *gin.Context) {
	userID := c.GetString("user_id")
	correlationID := c.Param("correlation_id")
	if correlationID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	status, err := s.videoSvc.GetStatus(c.Request.Context(), userID, correlationID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}
