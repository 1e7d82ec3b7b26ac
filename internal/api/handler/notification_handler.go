package handler

import (
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/response"
	"Ripple/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifySvc service.NotificationService
}

func NewNotificationHandler(notifySvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifySvc: notifySvc}
}

// GetNotificationList 获取通知列表，最新在前
func (s *NotificationHandler) GetNotificationList(c *gin.Context) {
	userID := c.GetString("user_id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(consts.NotifyPageSize)))
	if err != nil || limit <= 0 {
		limit = consts.NotifyPageSize
	}

	list, err := s.notifySvc.ListForUser(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetUnreadCount 获取未读数
func (s *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID := c.GetString("user_id")

	unread, err := s.notifySvc.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, unread)
}

// MarkRead 标记单条已读
func (s *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.GetString("user_id")
	notificationID := c.Param("notification_id")
	if notificationID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.notifySvc.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// MarkAllRead 一键已读
func (s *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetString("user_id")

	result, err := s.notifySvc.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
