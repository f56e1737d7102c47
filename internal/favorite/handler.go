package favorite

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
	Favorited      bool  `json:"favorited" example:"true"`
	FavoritesCount int64 `json:"favorites_count" example:"3"`
}

// ToBusinessError 把 Toggle 的错误翻译为业务错误
func ToBusinessError(err error) *response.BusinessError {
	if errors.Is(err, ErrArticleNotFound) {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("Article not found"),
		)
	}
	if errors.Is(err, ErrUserNotFound) {
		return response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("Not authenticated"),
		)
	}
	return response.Internal(err)
}

// Toggle 收藏/取消收藏
// @Summary 收藏/取消收藏文章
// @Tags articles
// @Produce json
// @Param slug path string true "文章 slug"
// @Success 200 {object} dto.Response{data=ToggleResponse}
// @Failure 401 {object} dto.Response "未登录"
// @Failure 404 {object} dto.Response "文章不存在"
// @Router /api/articles/{slug}/favorite [post]
func (h *Handler) Toggle(c *gin.Context) {
	favorited, count, err := h.service.ToggleBySlug(c.Request.Context(), middleware.CurrentUserID(c), c.Param("slug"))
	if err != nil {
		dto.ErrorResponse(c, ToBusinessError(err))
		return
	}

	dto.SuccessResponse(c, ToggleResponse{Favorited: favorited, FavoritesCount: count})
}
