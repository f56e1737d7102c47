package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/logger"
	"terminal-terrace/conduit/internal/pkg"
)

var (
	guestOnlyPrefixes = []string{"/login", "/signup"}
	protectedPrefixes = []string{"/settings", "/editor", "/api/protected"}
)

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// PageGuard 页面路由守卫
// 令牌有效且用户仍存在才算登录；已登录访问登录/注册页跳回首页，
// 未登录访问受保护页面跳到登录页并清除 cookie
func PageGuard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := resolveUser(c, db)
		path := c.Request.URL.Path

		if userID != "" && hasAnyPrefix(path, guestOnlyPrefixes) {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		if userID == "" && hasAnyPrefix(path, protectedPrefixes) {
			pkg.ClearAuthCookies(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if userID != "" {
			c.Set(ContextUserID, userID)
		}
		c.Next()
	}
}

func resolveUser(c *gin.Context, db *gorm.DB) string {
	user := RequestUser(c)
	if !user.Authenticated() {
		return ""
	}

	exists, err := pkg.UserExists(c.Request.Context(), db, user.UserID)
	if err != nil {
		logger.L().Warn("resolve user failed", zap.String("user_id", user.UserID), zap.Error(err))
		return ""
	}
	if !exists {
		return ""
	}
	return user.UserID
}
