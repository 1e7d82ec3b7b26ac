package util

import (
	"github.com/google/uuid"
	"github.com/rs/xid"
)

// NewID 生成按时间单调递增的实体 ID，
// 同一秒内由进程内计数器保证字典序递增
func NewID() string {
	return xid.New().String()
}

// NewCorrelationID 生成视频上传关联 ID，供外部存储回调对账使用
func NewCorrelationID() string {
	return uuid.NewString()
}
