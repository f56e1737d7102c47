package authsdk

import (
	"net/http"
	"strings"
)

// CookieName 存放访问令牌的 cookie
const CookieName = "auth_token"

// ExtractToken 从请求中提取 JWT token
// 支持两种方式：
// 1. auth_token cookie
// 2. Authorization header (Bearer token)
func ExtractToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		if token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")); token != "" {
			return token, nil
		}
	}

	return "", ErrNoToken
}

// GetUserFromRequest 解析请求携带的身份
// 如果没有 token 或解析失败，返回空的 UserContext（UserID=""）
func GetUserFromRequest(r *http.Request, secret string) *UserContext {
	token, err := ExtractToken(r)
	if err != nil {
		return &UserContext{} // 未登录用户
	}

	user, err := ParseToken(token, secret)
	if err != nil {
		return &UserContext{} // token 无效
	}

	return user
}
