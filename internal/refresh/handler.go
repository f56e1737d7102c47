package refresh

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/pkg"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Handle 刷新访问令牌
// @Summary 刷新访问令牌
// @Description 使用 Cookie 中的刷新令牌获取新的访问令牌，新的刷新令牌会自动写回 Cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response{data=RefreshTokenResponse}
// @Failure 401 {object} dto.Response "刷新令牌无效或已过期"
// @Router /api/refresh [post]
func (h *Handler) Handle(c *gin.Context) {
	refreshToken, _ := c.Cookie(pkg.RefreshCookie)

	result, bizErr := h.service.Rotate(c.Request.Context(), refreshToken)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	pkg.SetAuthCookie(c, result.AccessToken)
	pkg.SetRefreshCookie(c, result.NewRefreshToken, RefreshTokenExpiration)

	dto.SuccessResponse(c, RefreshTokenResponse{
		AccessToken: result.AccessToken,
	})
}
