package minio

import (
	"Ripple/internal/api/config"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
)

// PresignSigner 基于 MinIO 预签名 URL 的上传签名器
type PresignSigner struct {
	client *minio.Client
	bucket string
	expiry time.Duration
}

func NewPresignSigner() *PresignSigner {
	return &PresignSigner{
		client: Client,
		bucket: VideoBucket,
		expiry: 15 * time.Minute,
	}
}

// SignPutURL 为指定对象生成一次性的上传地址
func (s *PresignSigner) SignPutURL(ctx context.Context, objectName string, contentType string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("minio client is not initialized")
	}

	headers := http.Header{}
	if contentType != "" {
		headers.Set("Content-Type", contentType)
	}

	u, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucket, objectName, s.expiry, nil, headers)
	if err != nil {
		return "", fmt.Errorf("failed to presign upload url: %w", err)
	}
	return u.String(), nil
}

// GetPublicURL 获取文件的公共访问URL
func GetPublicURL(objectName string) string {
	cfg := config.Cfg.MinIO

	protocol := "http"
	if cfg.UseSSL {
		protocol = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", protocol, cfg.Endpoint, VideoBucket, objectName)
}
