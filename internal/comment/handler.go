package comment

import (
	"errors"

	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/middleware"
	"terminal-terrace/conduit/packages/response"
)

// CommentHandler 评论处理器
type CommentHandler struct {
	service CommentService
}

// NewCommentHandler 创建处理器实例
func NewCommentHandler(service CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// ToBusinessError 服务层错误转业务错误
func ToBusinessError(err error) *response.BusinessError {
	switch {
	case errors.Is(err, ErrEmptyComment):
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("Comment cannot be empty"),
		)
	case errors.Is(err, ErrArticleNotFound):
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("Article not found"),
		)
	case errors.Is(err, ErrCommentNotFound):
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("Comment not found"),
		)
	case errors.Is(err, ErrUserNotFound):
		return response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("Not authenticated"),
		)
	default:
		return response.Internal(err)
	}
}

// GetArticleComments 获取文章评论
// @Summary 获取文章的评论
// @Tags comments
// @Produce json
// @Param slug path string true "文章 slug"
// @Success 200 {object} dto.Response{data=[]CommentResponse}
// @Failure 404 {object} dto.Response "文章不存在"
// @Router /api/articles/{slug}/comments [get]
func (h *CommentHandler) GetArticleComments(c *gin.Context) {
	comments, err := h.service.ListByArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		dto.ErrorResponse(c, ToBusinessError(err))
		return
	}

	dto.SuccessResponse(c, comments)
}

// CreateComment 发表评论
// @Summary 发表评论
// @Tags comments
// @Accept json
// @Produce json
// @Param slug path string true "文章 slug"
// @Param request body CreateCommentRequest true "评论内容"
// @Success 200 {object} dto.Response{data=CommentResponse}
// @Failure 400 {object} dto.Response "评论为空"
// @Failure 401 {object} dto.Response "未登录"
// @Router /api/articles/{slug}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	comment, err := h.service.Create(c.Request.Context(), c.Param("slug"), middleware.CurrentUserID(c), &req)
	if err != nil {
		dto.ErrorResponse(c, ToBusinessError(err))
		return
	}

	dto.SuccessResponse(c, comment)
}

// DeleteComment 删除评论
// @Summary 删除自己的评论
// @Tags comments
// @Produce json
// @Param slug path string true "文章 slug"
// @Param id path string true "评论 ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "评论不存在或不属于当前用户"
// @Router /api/articles/{slug}/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("slug"), c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		dto.ErrorResponse(c, ToBusinessError(err))
		return
	}

	dto.SuccessResponse(c, nil)
}
