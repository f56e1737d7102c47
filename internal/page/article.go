package page

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/article"
	"terminal-terrace/conduit/internal/comment"
	"terminal-terrace/conduit/internal/favorite"
	"terminal-terrace/conduit/internal/middleware"
	"terminal-terrace/conduit/packages/response"
)

// Article 文章详情与评论
func (h *Handler) Article(c *gin.Context) {
	h.renderArticle(c, http.StatusOK, "")
}

func (h *Handler) renderArticle(c *gin.Context, status int, formError string) {
	ctx := c.Request.Context()
	slug := c.Param("slug")
	viewerID := middleware.CurrentUserID(c)

	art, bizErr := h.articles.Get(ctx, slug, viewerID)
	if bizErr != nil {
		h.renderError(c, bizErr)
		return
	}

	comments, err := h.comments.ListByArticle(ctx, slug)
	if err != nil {
		h.renderError(c, comment.ToBusinessError(err))
		return
	}

	view := articleView{
		base:     h.base(c, art.Title),
		Article:  art,
		Comments: comments,
		IsAuthor: viewerID != "" && viewerID == art.Author.UserID,
	}
	view.Error = formError
	h.renderer.Render(c, status, "article", view)
}

func (h *Handler) NewArticleForm(c *gin.Context) {
	h.renderer.Render(c, http.StatusOK, "editor", editorView{base: h.base(c, "New Article")})
}

func (h *Handler) CreateArticle(c *gin.Context) {
	var req article.EditorRequest
	if bizErr := bindForm(c, &req); bizErr != nil {
		h.renderEditor(c, "", req, bizErr)
		return
	}

	slug, bizErr := h.articles.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if bizErr != nil {
		h.renderEditor(c, "", req, bizErr)
		return
	}
	c.Redirect(http.StatusSeeOther, "/article/"+slug)
}

// EditArticleForm 只有作者能打开编辑页
func (h *Handler) EditArticleForm(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	art, bizErr := h.articles.Get(c.Request.Context(), c.Param("slug"), userID)
	if bizErr != nil {
		h.renderError(c, bizErr)
		return
	}
	if art.Author.UserID != userID {
		h.renderError(c, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("You can only edit your own articles"),
		))
		return
	}

	form := article.EditorRequest{
		Title:       art.Title,
		Description: art.Description,
		TagList:     strings.Join(art.TagList, " "),
	}
	if art.Body != nil {
		form.Body = *art.Body
	}
	h.renderer.Render(c, http.StatusOK, "editor", editorView{
		base: h.base(c, "Edit Article"),
		Slug: art.Slug,
		Form: form,
	})
}

func (h *Handler) UpdateArticle(c *gin.Context) {
	slug := c.Param("slug")
	var req article.EditorRequest
	if bizErr := bindForm(c, &req); bizErr != nil {
		h.renderEditor(c, slug, req, bizErr)
		return
	}

	newSlug, bizErr := h.articles.Update(c.Request.Context(), middleware.CurrentUserID(c), slug, req)
	if bizErr != nil {
		if bizErr.Code == response.InvalidParameter || bizErr.Code == response.Conflict {
			h.renderEditor(c, slug, req, bizErr)
			return
		}
		h.renderError(c, bizErr)
		return
	}
	c.Redirect(http.StatusSeeOther, "/article/"+newSlug)
}

func (h *Handler) renderEditor(c *gin.Context, slug string, form article.EditorRequest, bizErr *response.BusinessError) {
	if bizErr.Code == response.InternalError {
		h.renderError(c, bizErr)
		return
	}
	view := editorView{base: h.base(c, "Editor"), Slug: slug, Form: form}
	view.Error = bizErr.Msg
	h.renderer.Render(c, bizErr.Code.HTTPStatus(), "editor", view)
}

func (h *Handler) DeleteArticle(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if bizErr := h.articles.Delete(c.Request.Context(), userID, c.Param("slug")); bizErr != nil {
		h.renderError(c, bizErr)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) CreateComment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	slug := c.Param("slug")
	_, err := h.comments.Create(c.Request.Context(), slug, userID, &comment.CreateCommentRequest{Body: c.PostForm("body")})
	if err != nil {
		bizErr := comment.ToBusinessError(err)
		if bizErr.Code == response.InvalidParameter {
			h.renderArticle(c, bizErr.Code.HTTPStatus(), bizErr.Msg)
			return
		}
		h.renderError(c, bizErr)
		return
	}
	c.Redirect(http.StatusSeeOther, "/article/"+slug)
}

func (h *Handler) DeleteComment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), c.Param("slug"), c.Param("id"), userID); err != nil {
		h.renderError(c, comment.ToBusinessError(err))
		return
	}
	c.Redirect(http.StatusSeeOther, "/article/"+c.Param("slug"))
}

func (h *Handler) ToggleFavorite(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	slug := c.Param("slug")
	if _, _, err := h.favorites.ToggleBySlug(c.Request.Context(), userID, slug); err != nil {
		h.renderError(c, favorite.ToBusinessError(err))
		return
	}
	c.Redirect(http.StatusSeeOther, redirectTarget(c, "/article/"+slug))
}
