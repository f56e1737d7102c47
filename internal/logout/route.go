package logout

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/session"
)

func RegisterRoutes(r *gin.RouterGroup, sessions *session.Manager) {
	handler := NewLogoutHandler(sessions)
	r.POST("/users/logout", handler.Logout)
}
