package model

import (
	"time"
)

type Comment struct {
	ID         string     `json:"id"`
	PostID     string     `json:"postId"`
	UserID     string     `json:"userId"`
	Content    string     `json:"content"`
	LikesCount int        `json:"likesCount"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (c *Comment) Tombstoned() bool {
	return c.DeletedAt != nil
}
