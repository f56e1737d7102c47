package register

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/database"
	"terminal-terrace/conduit/internal/session"
)

func RegisterRoutes(r *gin.RouterGroup, sessions *session.Manager) {
	h := NewRegisterHandler(NewRegisterService(database.PostgresDB), sessions)
	r.POST("/users", h.handle)
}
