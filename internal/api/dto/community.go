package dto

// CommunityCreateDTO 创建社区请求
type CommunityCreateDTO struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	Description string `json:"description" binding:"max=500"`
	Category    string `json:"category" binding:"max=50"`
	IsPrivate   bool   `json:"is_private"`
}

// CommunityDTO 社区返回对象
type CommunityDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CreatorID   string `json:"creator_id"`
	MemberCount int    `json:"member_count"`
	PostCount   int    `json:"post_count"`
	IsPrivate   bool   `json:"is_private"`
	CreatedAt   string `json:"created_at"`
}

// CommunityPageDTO 社区分页
type CommunityPageDTO struct {
	Items      []*CommunityDTO `json:"items"`
	NextCursor *string         `json:"next_cursor"`
	HasMore    bool            `json:"has_more"`
}

// MembershipStateDTO 加入/退出开关后的新状态
type MembershipStateDTO struct {
	Joined      bool `json:"joined"`
	MemberCount int  `json:"member_count"`
}

// MemberDTO 社区成员条目
type MemberDTO struct {
	UserID    string `json:"user_id"`
	Nickname  string `json:"nickname"`
	Handle    string `json:"handle"`
	AvatarURL string `json:"avatar_url"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}
