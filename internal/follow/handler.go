package follow

import (
	"errors"

	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/middleware"
	"terminal-terrace/conduit/packages/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ToggleResponse 切换结果
type ToggleResponse struct {
	Following bool `json:"following" example:"true"`
}

// ToBusinessError 把 Toggle 的错误翻译为业务错误
func ToBusinessError(err error) *response.BusinessError {
	switch {
	case errors.Is(err, ErrFollowSelf):
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("You cannot follow yourself"),
		)
	case errors.Is(err, ErrUserNotFound):
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("User not found"),
		)
	default:
		return response.Internal(err)
	}
}

// Toggle 关注/取消关注
// @Summary 关注/取消关注用户
// @Tags profiles
// @Produce json
// @Param user_id path string true "用户 ID"
// @Success 200 {object} dto.Response{data=ToggleResponse}
// @Failure 400 {object} dto.Response "不能关注自己"
// @Failure 401 {object} dto.Response "未登录"
// @Failure 404 {object} dto.Response "用户不存在"
// @Router /api/profiles/{user_id}/follow [post]
func (h *Handler) Toggle(c *gin.Context) {
	following, err := h.service.Toggle(c.Request.Context(), middleware.CurrentUserID(c), c.Param("user_id"))
	if err != nil {
		dto.ErrorResponse(c, ToBusinessError(err))
		return
	}

	dto.SuccessResponse(c, ToggleResponse{Following: following})
}
