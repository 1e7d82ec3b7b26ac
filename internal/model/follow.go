package model

import (
	"time"
)

// Follow 关注关系记录，键为 (followerID, followingID)，存在即已关注
type Follow struct {
	FollowerID  string    `json:"followerId"`
	FollowingID string    `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}
