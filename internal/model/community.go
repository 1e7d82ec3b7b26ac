package model

import (
	"time"
)

type Community struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatorID   string    `json:"creatorId"`
	MemberCount int       `json:"memberCount"`
	PostCount   int       `json:"postCount"`
	IsPrivate   bool      `json:"isPrivate"`
	CreatedAt   time.Time `json:"createdAt"`
}
