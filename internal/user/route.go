package user

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/middleware"
)

// RegisterRoutes api 为 /api 分组
func RegisterRoutes(api *gin.RouterGroup, handler *UserHandler) {
	api.GET("/profiles/:user_id", middleware.OptionalJWTAuth(), handler.GetProfile)
	api.PUT("/user", middleware.JWTAuth(), handler.UpdateSettings)
}
