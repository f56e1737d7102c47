package refresh

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/database"
)

// NewDefaultService 基于全局 Redis 的服务；Redis 未启用时返回 nil
func NewDefaultService() *Service {
	if database.RedisDB == nil {
		return nil
	}
	return NewService(NewRepository(database.RedisDB))
}

func RegisterRoutes(r *gin.RouterGroup, service *Service) {
	if service == nil {
		return
	}
	handler := NewHandler(service)
	r.POST("/refresh", handler.Handle)
}
