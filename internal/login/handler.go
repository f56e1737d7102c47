package login

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/session"
	"terminal-terrace/conduit/packages/response"
)

type LoginHandler struct {
	service  *LoginService
	limiter  *IPLimiter
	sessions *session.Manager
}

func NewLoginHandler(service *LoginService, limiter *IPLimiter, sessions *session.Manager) *LoginHandler {
	return &LoginHandler{service: service, limiter: limiter, sessions: sessions}
}

// TooManyAttempts 限流触发时的错误
func TooManyAttempts() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.TooManyRequests),
		response.WithErrorMessage("Too many login attempts"),
	)
}

// Handle 登录
// @Summary 登录
// @Description 邮箱密码登录，成功后写入登录 cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} dto.Response{data=LoginResponse}
// @Failure 400 {object} dto.Response "缺少字段"
// @Failure 401 {object} dto.Response "邮箱或密码错误"
// @Failure 429 {object} dto.Response "尝试次数过多"
// @Router /api/users/login [post]
func (h *LoginHandler) Handle(c *gin.Context) {
	if !h.limiter.Allow(c.ClientIP()) {
		dto.ErrorResponse(c, TooManyAttempts())
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	found, bizErr := h.service.Login(c.Request.Context(), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	if err := h.sessions.Start(c, found); err != nil {
		dto.ErrorResponse(c, response.Internal(err))
		return
	}

	dto.SuccessResponse(c, LoginResponse{RedirectUrl: "/"})
}
