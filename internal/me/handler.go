package me

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/middleware"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/packages/response"
)

type MeHandler struct{}

// GetCurrentUser 获取当前登录用户信息
// @Summary 获取当前用户信息
// @Description 从 Cookie 或 Bearer 令牌获取当前登录用户信息
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response{data=UserInfoResponse}
// @Failure 401 {object} dto.Response "未登录"
// @Router /api/user [get]
func (h *MeHandler) GetCurrentUser(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("Not authenticated"),
		))
		return
	}

	u, bizErr := pkg.GetUserByID(c.Request.Context(), userID)
	if bizErr != nil {
		// 令牌有效但用户已不存在
		if bizErr.Code == response.NotFound {
			bizErr = response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("Not authenticated"),
			)
		}
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, UserInfoResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Bio:      u.Bio,
		Image:    u.Image,
	})
}
