package article

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/middleware"
	"terminal-terrace/conduit/internal/pagination"
)

type ArticleHandler struct {
	articleService *ArticleService
}

func NewArticleHandler(service *ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: service}
}

// ListArticles 首页文章列表
// @Summary 文章列表
// @Description 支持标签过滤、关注流与分页
// @Tags articles
// @Produce json
// @Param tag query string false "标签"
// @Param my_feed query bool false "只看关注的作者"
// @Param page query int false "页码，从 0 开始" default(0)
// @Param amount query int false "每页数量 1-100" default(10)
// @Success 200 {object} dto.Response{data=ArticleListResponse}
// @Router /api/articles [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	p := pagination.FromQuery(c.Request.URL.Query())

	articles, bizErr := h.articleService.List(c.Request.Context(), p, middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, ArticleListResponse{
		Articles: articles,
		Previous: p.PreviousPage().String(),
		Next:     p.NextPage().String(),
	})
}

// GetArticle 获取文章详情
// @Summary 文章详情
// @Tags articles
// @Produce json
// @Param slug path string true "文章 slug"
// @Success 200 {object} dto.Response{data=ArticleResponse}
// @Failure 404 {object} dto.Response "文章不存在"
// @Router /api/articles/{slug} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	art, bizErr := h.articleService.Get(c.Request.Context(), c.Param("slug"), middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, art)
}

// CreateArticle 创建文章
// @Summary 创建文章
// @Tags articles
// @Accept json
// @Produce json
// @Param request body EditorRequest true "文章内容"
// @Success 200 {object} dto.Response{data=EditorResponse}
// @Failure 400 {object} dto.Response "校验失败"
// @Failure 409 {object} dto.Response "同名文章已存在"
// @Router /api/articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req EditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	slug, bizErr := h.articleService.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, EditorResponse{Slug: slug})
}

// UpdateArticle 更新文章
// @Summary 更新文章
// @Tags articles
// @Accept json
// @Produce json
// @Param slug path string true "文章 slug"
// @Param request body EditorRequest true "文章内容"
// @Success 200 {object} dto.Response{data=EditorResponse}
// @Failure 403 {object} dto.Response "不是作者"
// @Failure 404 {object} dto.Response "文章不存在"
// @Router /api/articles/{slug} [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req EditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	slug, bizErr := h.articleService.Update(c.Request.Context(), middleware.CurrentUserID(c), c.Param("slug"), req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, EditorResponse{Slug: slug})
}

// DeleteArticle 删除文章
// @Summary 删除文章
// @Tags articles
// @Produce json
// @Param slug path string true "文章 slug"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "文章不存在或不是作者"
// @Router /api/articles/{slug} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if bizErr := h.articleService.Delete(c.Request.Context(), middleware.CurrentUserID(c), c.Param("slug")); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, nil)
}

// GetTags 热门标签
// @Summary 热门标签
// @Tags articles
// @Produce json
// @Success 200 {object} dto.Response{data=TagsResponse}
// @Router /api/tags [get]
func (h *ArticleHandler) GetTags(c *gin.Context) {
	tags, bizErr := h.articleService.PopularTags(c.Request.Context())
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, TagsResponse{Tags: tags})
}

// GetProfileArticles 个人主页文章
// @Summary 用户的文章或收藏
// @Tags profiles
// @Produce json
// @Param user_id path string true "用户 ID"
// @Param favourites query bool false "返回该用户收藏的文章"
// @Success 200 {object} dto.Response{data=[]ArticleResponse}
// @Router /api/profiles/{user_id}/articles [get]
func (h *ArticleHandler) GetProfileArticles(c *gin.Context) {
	favourites, _ := strconv.ParseBool(c.Query("favourites"))

	articles, bizErr := h.articleService.ListForProfile(c.Request.Context(), c.Param("user_id"), favourites, middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, articles)
}
