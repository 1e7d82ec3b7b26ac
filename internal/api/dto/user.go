package dto

// UserCreateDTO 创建用户档案请求
type UserCreateDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Nickname string `json:"nickname" binding:"required,max=50"`
	Handle   string `json:"handle" binding:"required,min=3,max=30,alphanum"`
	Bio      string `json:"bio" binding:"max=200"`
}

// UserDTO 用户返回对象
type UserDTO struct {
	ID             string `json:"id"`
	Nickname       string `json:"nickname"`
	Handle         string `json:"handle"`
	Bio            string `json:"bio"`
	AvatarURL      string `json:"avatar_url"`
	FollowerCount  int    `json:"follower_count"`
	FollowingCount int    `json:"following_count"`
	PostCount      int    `json:"post_count"`
	IsVerified     bool   `json:"is_verified"`
	CreatedAt      string `json:"created_at"`
}

// UserTokenDTO 创建档案后下发的身份凭据
type UserTokenDTO struct {
	User  *UserDTO `json:"user"`
	Token string   `json:"token"`
}
