package model

import (
	"time"
)

const (
	VideoStatusPending   = "pending"
	VideoStatusProcessed = "processed"
	VideoStatusFailed    = "failed"
)

// VideoUpload 视频上传状态机，ID 即上传关联 ID（correlation id）。
// pending 经回调恰好一次迁移到 processed 或 failed，终态回调重复投递时幂等接受。
type VideoUpload struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	PostID       string     `json:"postId,omitempty"` // 绑定的帖子，可空
	FileName     string     `json:"fileName"`
	FileSize     int64      `json:"fileSize"`
	ContentType  string     `json:"contentType"`
	StoragePath  string     `json:"storagePath"`
	Status       string     `json:"status"` // pending/processed/failed
	PlaybackURL  string     `json:"playbackUrl,omitempty"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
	Duration     float64    `json:"duration,omitempty"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// Terminal 是否已处于终态
func (v *VideoUpload) Terminal() bool {
	return v.Status == VideoStatusProcessed || v.Status == VideoStatusFailed
}
