package dto

// CommentCreateDTO 创建评论请求
type CommentCreateDTO struct {
	PostID  string `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required,max=1000"`
}

// CommentDTO 评论返回对象
type CommentDTO struct {
	ID         string `json:"id"`
	PostID     string `json:"post_id"`
	UserID     string `json:"user_id"`
	Nickname   string `json:"nickname"`
	AvatarURL  string `json:"avatar_url"`
	Content    string `json:"content"`
	LikesCount int    `json:"likes_count"`
	CreatedAt  string `json:"created_at"`
}

// CommentPageDTO 评论分页
type CommentPageDTO struct {
	Items      []*CommentDTO `json:"items"`
	NextCursor *string       `json:"next_cursor"`
	HasMore    bool          `json:"has_more"`
}
