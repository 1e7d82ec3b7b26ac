package model

import (
	"time"
)

const (
	NotifyTypeLike           = "like"
	NotifyTypeComment        = "comment"
	NotifyTypeFollow         = "follow"
	NotifyTypeCommunityJoin  = "community_join"
	NotifyTypeVideoProcessed = "video_processed"
	NotifyTypeVideoFailed    = "video_failed"
)

// NotifyRelated 通知关联的目标实体，按类型选填
type NotifyRelated struct {
	PostID      string `json:"postId,omitempty"`
	CommentID   string `json:"commentId,omitempty"`
	CommunityID string `json:"communityId,omitempty"`
	VideoID     string `json:"videoId,omitempty"`
}

// Notification 收件箱记录，按接收者追加，只有已读标记会被修改
type Notification struct {
	ID           string        `json:"id"`
	RecipientID  string        `json:"recipientId"`
	Type         string        `json:"type"`
	OriginUserID string        `json:"originUserId,omitempty"` // 动作发起者，系统事件为空
	Related      NotifyRelated `json:"related"`
	IsRead       bool          `json:"isRead"`
	CreatedAt    time.Time     `json:"createdAt"`
	ReadAt       *time.Time    `json:"readAt,omitempty"`
}
