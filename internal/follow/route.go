package follow

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/middleware"
)

// RegisterRoutes 注册到 /api/profiles
func RegisterRoutes(r *gin.RouterGroup, service *Service) {
	h := NewHandler(service)
	r.POST("/:user_id/follow", middleware.JWTAuth(), h.Toggle)
}
