package logout

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/session"
)

type LogoutHandler struct {
	sessions *session.Manager
}

func NewLogoutHandler(sessions *session.Manager) *LogoutHandler {
	return &LogoutHandler{sessions: sessions}
}

// Logout 用户退出登录
// @Summary 用户退出登录
// @Description 清除 auth_token 和 refresh_token Cookie，并吊销当前刷新令牌
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /api/users/logout [post]
func (h *LogoutHandler) Logout(c *gin.Context) {
	h.sessions.End(c)

	dto.SuccessResponse(c, gin.H{
		"redirect_url": "/login",
	})
}
