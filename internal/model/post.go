package model

import (
	"time"
)

const (
	PostTypeText  = "text"
	PostTypeImage = "image"
	PostTypeVideo = "video"
	PostTypeLink  = "link"
)

type Post struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Content      string     `json:"content"`
	Type         string     `json:"type"` // text/image/video/link
	MediaURL     string     `json:"mediaUrl,omitempty"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
	CommunityID  string     `json:"communityId,omitempty"`
	LikesCount   int        `json:"likesCount"`
	CommentCount int        `json:"commentCount"`
	ShareCount   int        `json:"shareCount"`
	ViewCount    int        `json:"viewCount"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"` // 墓碑：非空即对所有读取不可见
	CreatedAt    time.Time  `json:"createdAt"`
}

// Tombstoned 帖子是否已被软删除
func (p *Post) Tombstoned() bool {
	return p.DeletedAt != nil
}
