package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrQueryTooShort       = errors.New("搜索关键词过短")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrUserHandleExist     = errors.New("用户名已被占用")
	ErrUserFollowSelf      = errors.New("用户不能关注自己")
	ErrPostNotFound        = errors.New("帖子不存在")
	ErrPostNotOwned        = errors.New("只能删除自己的帖子")
	ErrCommentNotFound     = errors.New("评论不存在")
	ErrCommunityNotFound   = errors.New("社区不存在")
	ErrCreatorCannotLeave  = errors.New("创建者不能退出自己的社区")
	ErrNotificationMissing = errors.New("通知不存在")
	ErrUploadNotFound      = errors.New("上传记录不存在")
	UnauthorizedError      = errors.New("权限不足")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrQueryTooShort:       BadRequest,
	ErrUserNotFound:        NotFound,
	ErrUserHandleExist:     BadRequest,
	ErrUserFollowSelf:      BadRequest,
	ErrPostNotFound:        NotFound,
	ErrPostNotOwned:        Forbidden,
	ErrCommentNotFound:     NotFound,
	ErrCommunityNotFound:   NotFound,
	ErrCreatorCannotLeave:  Forbidden,
	ErrNotificationMissing: NotFound,
	ErrUploadNotFound:      NotFound,
	UnauthorizedError:      Unauthorized,
	UnExpectedError:        InternalServerError,
}
