package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/config"
	"terminal-terrace/conduit/internal/database"
	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/pkg"
	authsdk "terminal-terrace/conduit/packages/auth-sdk"
	"terminal-terrace/conduit/packages/response"
)

// ContextUserID gin 上下文中存放当前用户 ID 的 key
const ContextUserID = "user_id"

// parseToken 从 cookie 或 Authorization header 中解析 token
func parseToken(c *gin.Context) (*authsdk.UserContext, error) {
	tokenString, err := authsdk.ExtractToken(c.Request)
	if err != nil {
		return nil, err
	}
	return pkg.ParseAccessToken(tokenString)
}

func notAuthenticated(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Unauthorized),
		response.WithErrorMessage("Not authenticated"),
		response.WithError(err),
	)
}

// JWTAuth JWT 认证中间件（必需认证）
// 令牌有效但用户已被删除时同样返回 401
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := parseToken(c)
		if err != nil {
			dto.ErrorResponse(c, notAuthenticated(err))
			c.Abort()
			return
		}

		exists, err := pkg.UserExists(c.Request.Context(), database.PostgresDB, user.UserID)
		if err != nil {
			dto.ErrorResponse(c, response.Internal(err))
			c.Abort()
			return
		}
		if !exists {
			dto.ErrorResponse(c, notAuthenticated(errors.New("user no longer exists")))
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.UserID)
		c.Next()
	}
}

// OptionalJWTAuth 可选的 JWT 认证中间件（不强制要求认证，但如果有token则解析）
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := parseToken(c); err == nil {
			c.Set(ContextUserID, user.UserID)
		}
		c.Next()
	}
}

// CurrentUserID 取出当前用户 ID，匿名时返回 ""
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// RequestUser 解析请求身份，不校验用户是否存在
func RequestUser(c *gin.Context) *authsdk.UserContext {
	return authsdk.GetUserFromRequest(c.Request, config.Conf.JWT.Secret)
}
