package pkg

import (
	"time"

	"terminal-terrace/conduit/config"
	authsdk "terminal-terrace/conduit/packages/auth-sdk"
)

var (
	ErrInvalidToken = authsdk.ErrInvalidToken
	ErrExpiredToken = authsdk.ErrExpiredToken
)

// GenerateAccessToken 生成访问令牌（1 小时有效，sub 为用户 ID）
func GenerateAccessToken(userID string) (string, error) {
	return authsdk.GenerateToken(userID, config.Conf.JWT.Secret, time.Now())
}

// ParseAccessToken 解析并验证访问令牌
func ParseAccessToken(tokenString string) (*authsdk.UserContext, error) {
	return authsdk.ParseToken(tokenString, config.Conf.JWT.Secret)
}
