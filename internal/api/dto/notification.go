package dto

// NotificationDTO 通知返回对象
type NotificationDTO struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	OriginUserID string `json:"origin_user_id,omitempty"`
	OriginName   string `json:"origin_name,omitempty"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	PostID       string `json:"post_id,omitempty"`
	CommentID    string `json:"comment_id,omitempty"`
	CommunityID  string `json:"community_id,omitempty"`
	VideoID      string `json:"video_id,omitempty"`
	IsRead       bool   `json:"is_read"`
	CreatedAt    string `json:"created_at"`
}

// NotifyUnreadDTO 未读数返回
type NotifyUnreadDTO struct {
	UnreadCount int `json:"unread_count"`
}

// NotifyMarkAllDTO 一键已读返回
type NotifyMarkAllDTO struct {
	UpdatedCount int `json:"updated_count"`
}
