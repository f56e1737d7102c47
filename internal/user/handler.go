package user

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/middleware"
	"terminal-terrace/conduit/internal/session"
	"terminal-terrace/conduit/packages/response"
)

type UserHandler struct {
	service  *UserService
	sessions *session.Manager
}

func NewUserHandler(service *UserService, sessions *session.Manager) *UserHandler {
	return &UserHandler{service: service, sessions: sessions}
}

// GetProfile 用户资料
// @Summary 获取用户资料
// @Tags profiles
// @Produce json
// @Param user_id path string true "用户 ID"
// @Success 200 {object} dto.Response{data=ProfileResponse}
// @Failure 404 {object} dto.Response "用户不存在"
// @Router /api/profiles/{user_id} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, bizErr := h.service.GetProfile(c.Request.Context(), c.Param("user_id"), middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, profile)
}

// UpdateSettings 更新当前用户设置
// @Summary 更新设置
// @Description 修改密码后其它设备上的刷新令牌全部失效
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SettingsRequest true "设置"
// @Success 200 {object} dto.Response{data=SettingsResponse}
// @Failure 400 {object} dto.Response "参数错误"
// @Failure 409 {object} dto.Response "邮箱已被注册"
// @Router /api/user [put]
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	resp, bizErr := h.Apply(c, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, resp)
}

// Apply 更新设置并在改密后重建会话，页面表单与 JSON 接口共用
func (h *UserHandler) Apply(c *gin.Context, req SettingsRequest) (*SettingsResponse, *response.BusinessError) {
	userID := middleware.CurrentUserID(c)
	u, passwordChanged, bizErr := h.service.UpdateSettings(c.Request.Context(), userID, req)
	if bizErr != nil {
		return nil, bizErr
	}

	if passwordChanged {
		h.sessions.RevokeAll(c, userID)
		if err := h.sessions.Start(c, u); err != nil {
			return nil, response.Internal(err)
		}
	}

	return &SettingsResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Bio:      u.Bio,
		Image:    u.Image,
	}, nil
}
