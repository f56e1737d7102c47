// Package page 服务端渲染的页面与表单提交
package page

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/article"
	"terminal-terrace/conduit/internal/comment"
	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/favorite"
	"terminal-terrace/conduit/internal/follow"
	"terminal-terrace/conduit/internal/logger"
	"terminal-terrace/conduit/internal/login"
	"terminal-terrace/conduit/internal/middleware"
	"terminal-terrace/conduit/internal/register"
	"terminal-terrace/conduit/internal/session"
	"terminal-terrace/conduit/internal/user"
	"terminal-terrace/conduit/packages/response"
)

// Deps 页面依赖的各业务服务，与 JSON 接口共用同一批实例
type Deps struct {
	DB        *gorm.DB
	Articles  *article.ArticleService
	Comments  comment.CommentService
	Users     *user.UserService
	Follows   *follow.Service
	Favorites *favorite.Service
	Limiter   *login.IPLimiter
	Sessions  *session.Manager
}

type Handler struct {
	renderer  *Renderer
	users     *user.UserRepository
	articles  *article.ArticleService
	comments  comment.CommentService
	profiles  *user.UserService
	settings  *user.UserHandler
	follows   *follow.Service
	favorites *favorite.Service
	login     *login.LoginService
	limiter   *login.IPLimiter
	register  *register.RegisterService
	sessions  *session.Manager
}

func NewHandler(deps Deps) (*Handler, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	return &Handler{
		renderer:  renderer,
		users:     user.NewUserRepository(deps.DB),
		articles:  deps.Articles,
		comments:  deps.Comments,
		profiles:  deps.Users,
		settings:  user.NewUserHandler(deps.Users, deps.Sessions),
		follows:   deps.Follows,
		favorites: deps.Favorites,
		login:     login.NewLoginService(deps.DB),
		limiter:   deps.Limiter,
		register:  register.NewRegisterService(deps.DB),
		sessions:  deps.Sessions,
	}, nil
}

// base 加载导航栏需要的当前用户
func (h *Handler) base(c *gin.Context, title string) base {
	b := base{Title: title}
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		return b
	}

	u, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		logger.L().Warn("load current user failed", zap.String("user_id", userID), zap.Error(err))
		return b
	}
	b.CurrentUser = u
	return b
}

// renderError 渲染错误页，状态码取自业务码
func (h *Handler) renderError(c *gin.Context, bizErr *response.BusinessError) {
	if bizErr.Code == response.InternalError {
		logger.L().Error("page request failed",
			zap.String("path", c.FullPath()),
			zap.Error(bizErr.Err),
		)
	}

	status := bizErr.Code.HTTPStatus()
	view := errorView{base: h.base(c, http.StatusText(status)), Status: status}
	view.Error = bizErr.Msg
	h.renderer.Render(c, status, "error", view)
}

// requireUser 表单提交需要登录，未登录跳转登录页
func requireUser(c *gin.Context) (string, bool) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		c.Redirect(http.StatusSeeOther, "/login")
		return "", false
	}
	return userID, true
}

// bindForm 表单无法解析时返回 ParseError，由调用方回显到原页面
func bindForm(c *gin.Context, req any) *response.BusinessError {
	if err := c.ShouldBind(req); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage(dto.ValidationMessage(err)),
			response.WithError(err),
		)
	}
	return nil
}

// redirectTarget 只接受站内路径
// 浏览器把 "/\host" 当作 "//host"，含反斜杠的一律拒绝
func redirectTarget(c *gin.Context, fallback string) string {
	next := c.PostForm("redirect")
	if !strings.HasPrefix(next, "/") || strings.ContainsAny(next, "\\\r\n\t") {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || strings.HasPrefix(next, "//") {
		return fallback
	}
	return next
}

func (h *Handler) NotFound(c *gin.Context) {
	h.renderError(c, response.NewBusinessError(
		response.WithErrorCode(response.NotFound),
		response.WithErrorMessage("Page not found"),
	))
}
