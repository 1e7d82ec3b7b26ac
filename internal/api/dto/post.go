package dto

// PostCreateDTO 发帖请求
type PostCreateDTO struct {
	Content     string `json:"content" binding:"required,max=2000"`
	Type        string `json:"type" binding:"required,oneof=text image video link"`
	MediaURL    string `json:"media_url" binding:"max=512"`
	CommunityID string `json:"community_id"`
}

// PostDTO 帖子返回对象，附带作者信息与观看者点赞状态
type PostDTO struct {
	ID           string `json:"id"`
	Content      string `json:"content"`
	Type         string `json:"type"`
	MediaURL     string `json:"media_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	CommunityID  string `json:"community_id,omitempty"`
	LikesCount   int    `json:"likes_count"`
	CommentCount int    `json:"comment_count"`
	ShareCount   int    `json:"share_count"`
	ViewCount    int    `json:"view_count"`
	CreatedAt    string `json:"created_at"`

	// User
	UserID    string `json:"user_id"`
	Nickname  string `json:"nickname"`
	Handle    string `json:"handle"`
	AvatarURL string `json:"avatar_url"`

	// 观看者视角，未登录时恒为 false
	IsLiked bool `json:"is_liked"`
}

// FeedDTO 帖子分页，cursor 为上一页最后一条的帖子 ID
type FeedDTO struct {
	Items      []*PostDTO `json:"items"`
	NextCursor *string    `json:"next_cursor"`
	HasMore    bool       `json:"has_more"`
}

// LikeStateDTO 点赞开关后的新状态
type LikeStateDTO struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}
