package favorite

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/middleware"
)

// RegisterRoutes 注册到 /api/articles
func RegisterRoutes(r *gin.RouterGroup, service *Service) {
	h := NewHandler(service)
	r.POST("/:slug/favorite", middleware.JWTAuth(), h.Toggle)
}
