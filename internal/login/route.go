package login

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/database"
	"terminal-terrace/conduit/internal/session"
)

// RegisterRoutes 页面表单与 API 共用同一个限流器
func RegisterRoutes(r *gin.RouterGroup, limiter *IPLimiter, sessions *session.Manager) {
	h := NewLoginHandler(NewLoginService(database.PostgresDB), limiter, sessions)
	r.POST("/users/login", h.Handle)
}
