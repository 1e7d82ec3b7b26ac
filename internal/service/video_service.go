package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/model"
	"Ripple/internal/pkg/consts"
	"Ripple/internal/pkg/util"
	"Ripple/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"
)

// UploadSigner 外部对象存储协作方：签发客户端直传地址，
// 文件字节不经过本服务
type UploadSigner interface {
	SignPutURL(ctx context.Context, objectName, contentType string) (string, error)
}

type VideoService interface {
	// RequestUpload 创建 pending 状态的上传记录并返回关联 ID 与直传地址
	RequestUpload(ctx context.Context, userID string, req *dto.VideoUploadRequestDTO) (*dto.VideoUploadDTO, error)
	// CompleteUpload 处理转码回调。未知关联 ID 返回 NotFound（容忍，不崩溃）；
	// 已终态的记录幂等地重放同一终态，不报错
	CompleteUpload(ctx context.Context, req *dto.VideoCallbackDTO) (*dto.VideoStatusDTO, error)
	GetStatus(ctx context.Context, userID, correlationID string) (*dto.VideoStatusDTO, error)
}

type videoServiceImpl struct {
	videoRepo repository.VideoRepo
	postRepo  repository.PostRepo
	notifySvc NotificationService
	signer    UploadSigner
}

func NewVideoService(
	videoRepo repository.VideoRepo,
	postRepo repository.PostRepo,
	notifySvc NotificationService,
	signer UploadSigner,
) VideoService {
	return &videoServiceImpl{
		videoRepo: videoRepo,
		postRepo:  postRepo,
		notifySvc: notifySvc,
		signer:    signer,
	}
}

func (s *videoServiceImpl) RequestUpload(ctx context.Context, userID string, req *dto.VideoUploadRequestDTO) (*dto.VideoUploadDTO, error) {
	if !strings.HasPrefix(req.ContentType, consts.MimePrefixVideo) {
		return nil, ErrParamInvalid
	}

	correlationID := util.NewCorrelationID()
	storagePath := "videos/" + correlationID + "/" + req.FileName

	uploadURL, err := s.signer.SignPutURL(ctx, storagePath, req.ContentType)
	if err != nil {
		return nil, err
	}

	upload := &model.VideoUpload{
		ID:          correlationID,
		UserID:      userID,
		PostID:      req.PostID,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		ContentType: req.ContentType,
		StoragePath: storagePath,
		Status:      model.VideoStatusPending,
		CreatedAt:   time.Now(),
	}
	if err = s.videoRepo.Create(ctx, upload); err != nil {
		return nil, err
	}

	return &dto.VideoUploadDTO{
		CorrelationID: correlationID,
		UploadURL:     uploadURL,
		Status:        upload.Status,
	}, nil
}

func (s *videoServiceImpl) CompleteUpload(ctx context.Context, req *dto.VideoCallbackDTO) (*dto.VideoStatusDTO, error) {
	upload, err := s.videoRepo.GetByID(ctx, req.CorrelationID)
	if err != nil {
		return nil, err
	}
	if upload == nil {
		// 回调可能携带未知或过期的关联 ID
		log.WarnContext(ctx, "video callback for unknown correlation id", "correlation_id", req.CorrelationID)
		return nil, ErrUploadNotFound
	}

	// 先记录是否已终态：重复投递只回放状态，不再发通知、不再回写帖子
	wasTerminal := upload.Terminal()

	now := time.Now()
	upload, err = s.videoRepo.Mutate(ctx, req.CorrelationID, func(v *model.VideoUpload) {
		// 重复投递与重试无法区分：已终态的记录保持原终态，幂等接受
		if v.Terminal() {
			return
		}
		if req.Success {
			v.Status = model.VideoStatusProcessed
			v.PlaybackURL = req.PlaybackURL
			v.ThumbnailURL = req.ThumbnailURL
			v.Duration = req.Duration
			v.ErrorMessage = ""
		} else {
			v.Status = model.VideoStatusFailed
			v.ErrorMessage = req.ErrorMessage
		}
		if v.CompletedAt == nil {
			v.CompletedAt = &now
		}
	})
	if err != nil {
		return nil, err
	}
	if wasTerminal {
		return s.buildStatusDTO(upload), nil
	}

	if upload.Status == model.VideoStatusProcessed && upload.PostID != "" {
		if _, err = s.postRepo.Mutate(ctx, upload.PostID, func(p *model.Post) {
			p.MediaURL = upload.PlaybackURL
			p.ThumbnailURL = upload.ThumbnailURL
		}); err != nil {
			log.WarnContext(ctx, "stamp post media failed", "post_id", upload.PostID, "err", err)
		}
	}

	notifyType := model.NotifyTypeVideoProcessed
	if upload.Status == model.VideoStatusFailed {
		notifyType = model.NotifyTypeVideoFailed
	}
	if err = s.notifySvc.Create(ctx, upload.UserID, notifyType, "",
		model.NotifyRelated{VideoID: upload.ID, PostID: upload.PostID}); err != nil {
		return nil, err
	}

	return s.buildStatusDTO(upload), nil
}

func (s *videoServiceImpl) GetStatus(ctx context.Context, userID, correlationID string) (*dto.VideoStatusDTO, error) {
	upload, err := s.videoRepo.GetByID(ctx, correlationID)
	if err != nil {
		return nil, err
	}
	if upload == nil || upload.UserID != userID {
		return nil, ErrUploadNotFound
	}
	return s.buildStatusDTO(upload), nil
}

func (s *videoServiceImpl) buildStatusDTO(upload *model.VideoUpload) *dto.VideoStatusDTO {
	return &dto.VideoStatusDTO{
		CorrelationID: upload.ID,
		Status:        upload.Status,
		PlaybackURL:   upload.PlaybackURL,
		ThumbnailURL:  upload.ThumbnailURL,
		Duration:      upload.Duration,
		ErrorMessage:  upload.ErrorMessage,
	}
}
