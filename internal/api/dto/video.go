package dto

// VideoUploadRequestDTO 申请上传请求
type VideoUploadRequestDTO struct {
	FileName    string `json:"file_name" binding:"required,max=255"`
	FileSize    int64  `json:"file_size" binding:"required,min=1"`
	ContentType string `json:"content_type" binding:"required,max=128"`
	PostID      string `json:"post_id"`
}

// VideoUploadDTO 申请上传返回：关联 ID + 直传地址
type VideoUploadDTO struct {
	CorrelationID string `json:"correlation_id"`
	UploadURL     string `json:"upload_url"`
	Status        string `json:"status"`
}

// VideoCallbackDTO 处理完成回调（webhook），correlation_id 即幂等键
type VideoCallbackDTO struct {
	CorrelationID string  `json:"correlation_id" binding:"required"`
	Success       bool    `json:"success"`
	PlaybackURL   string  `json:"playback_url"`
	ThumbnailURL  string  `json:"thumbnail_url"`
	Duration      float64 `json:"duration"`
	ErrorMessage  string  `json:"error_message"`
}

// VideoStatusDTO 上传状态查询返回
type VideoStatusDTO struct {
	CorrelationID string  `json:"correlation_id"`
	Status        string  `json:"status"`
	PlaybackURL   string  `json:"playback_url,omitempty"`
	ThumbnailURL  string  `json:"thumbnail_url,omitempty"`
	Duration      float64 `json:"duration,omitempty"`
	ErrorMessage  string  `json:"error_message,omitempty"`
}
