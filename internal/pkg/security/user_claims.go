package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "Ripple"
	JWTExpirationTime        = time.Hour * 24
)

// UserClaims 定义了我们 Token 中需要包含的业务信息。
// 身份校验由外部协作方完成，这里只承载已认证的调用方 user_id。
type UserClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
