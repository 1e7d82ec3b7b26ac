package util

import (
	"time"
)

// PtrTime 用于将 time.Time 转换为 *time.Time
func PtrTime(t time.Time) *time.Time {
	return &t
}
