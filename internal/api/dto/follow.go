package dto

// FollowStateDTO 关注开关后的新状态
type FollowStateDTO struct {
	Following     bool `json:"following"`
	FollowerCount int  `json:"follower_count"`
}

// FollowUserDTO 粉丝/关注列表条目
type FollowUserDTO struct {
	UserID    string `json:"user_id"`
	Nickname  string `json:"nickname"`
	Handle    string `json:"handle"`
	AvatarURL string `json:"avatar_url"`
	CreatedAt string `json:"created_at"`
}
