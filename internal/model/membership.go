package model

import (
	"time"
)

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleMember    = "member"
)

// Membership 社区成员记录，键为 (communityID, userID)
type Membership struct {
	CommunityID string    `json:"communityId"`
	UserID      string    `json:"userId"`
	Role        string    `json:"role"` // admin/moderator/member
	CreatedAt   time.Time `json:"createdAt"`
}
