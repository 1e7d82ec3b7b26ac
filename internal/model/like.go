package model

import (
	"time"
)

// Like 点赞关系记录，键为 (postID, userID)，存在即已点赞
type Like struct {
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
