package page

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/login"
	"terminal-terrace/conduit/internal/register"
	"terminal-terrace/conduit/packages/response"
)

func (h *Handler) LoginForm(c *gin.Context) {
	h.renderer.Render(c, http.StatusOK, "login", loginView{base: h.base(c, "Sign in")})
}

func (h *Handler) Login(c *gin.Context) {
	var req login.LoginRequest
	fail := func(bizErr *response.BusinessError) {
		view := loginView{base: h.base(c, "Sign in"), Email: req.Email}
		view.Error = bizErr.Msg
		h.renderer.Render(c, bizErr.Code.HTTPStatus(), "login", view)
	}
	if bizErr := bindForm(c, &req); bizErr != nil {
		fail(bizErr)
		return
	}

	if !h.limiter.Allow(c.ClientIP()) {
		fail(login.TooManyAttempts())
		return
	}

	found, bizErr := h.login.Login(c.Request.Context(), req)
	if bizErr != nil {
		fail(bizErr)
		return
	}

	if err := h.sessions.Start(c, found); err != nil {
		fail(response.Internal(err))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) SignupForm(c *gin.Context) {
	h.renderer.Render(c, http.StatusOK, "signup", signupView{base: h.base(c, "Sign up")})
}

func (h *Handler) Signup(c *gin.Context) {
	var req register.RegisterRequest
	fail := func(bizErr *response.BusinessError) {
		view := signupView{base: h.base(c, "Sign up"), Name: req.Name, Email: req.Email}
		view.Error = bizErr.Msg
		h.renderer.Render(c, bizErr.Code.HTTPStatus(), "signup", view)
	}
	if bizErr := bindForm(c, &req); bizErr != nil {
		fail(bizErr)
		return
	}

	created, bizErr := h.register.Register(c.Request.Context(), req)
	if bizErr != nil {
		fail(bizErr)
		return
	}

	if err := h.sessions.Start(c, created); err != nil {
		fail(response.Internal(err))
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	h.sessions.End(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
