package pkg

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/config"
	authsdk "terminal-terrace/conduit/packages/auth-sdk"
)

const (
	AuthCookie    = authsdk.CookieName
	RefreshCookie = "refresh_token"
)

func secureCookies() bool {
	return config.Conf != nil && config.Conf.Server.IsProduction()
}

func setCookie(c *gin.Context, name, value string, maxAge int) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secureCookies(),
		SameSite: http.SameSiteStrictMode,
	}
	if maxAge < 0 {
		cookie.Expires = time.Unix(0, 0)
	}
	http.SetCookie(c.Writer, cookie)
}

// SetAuthCookie 写入访问令牌，Max-Age 与令牌有效期一致
func SetAuthCookie(c *gin.Context, token string) {
	setCookie(c, AuthCookie, token, int(authsdk.TokenTTL.Seconds()))
}

// SetRefreshCookie 写入刷新令牌
func SetRefreshCookie(c *gin.Context, token string, ttl time.Duration) {
	setCookie(c, RefreshCookie, token, int(ttl.Seconds()))
}

// ClearAuthCookies 清除访问令牌与刷新令牌（Max-Age=0）
func ClearAuthCookies(c *gin.Context) {
	setCookie(c, AuthCookie, "", -1)
	setCookie(c, RefreshCookie, "", -1)
}

// IssueSession 签发访问令牌并写入 cookie
func IssueSession(c *gin.Context, userID string) error {
	token, err := GenerateAccessToken(userID)
	if err != nil {
		return err
	}
	SetAuthCookie(c, token)
	return nil
}
