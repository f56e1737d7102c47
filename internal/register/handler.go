package register

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/session"
	"terminal-terrace/conduit/packages/response"
)

type RegisterHandler struct {
	service  *RegisterService
	sessions *session.Manager
}

func NewRegisterHandler(service *RegisterService, sessions *session.Manager) *RegisterHandler {
	return &RegisterHandler{service: service, sessions: sessions}
}

// handle 注册
// @Summary 注册
// @Description 创建账号并写入登录 cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} dto.Response{data=RegisterResponse}
// @Failure 400 {object} dto.Response "参数错误"
// @Failure 409 {object} dto.Response "邮箱或用户名已存在"
// @Router /api/users [post]
func (h *RegisterHandler) handle(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	newUser, bizErr := h.service.Register(c.Request.Context(), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	if err := h.sessions.Start(c, newUser); err != nil {
		dto.ErrorResponse(c, response.Internal(err))
		return
	}

	dto.SuccessResponse(c, RegisterResponse{RedirectUrl: "/"})
}
