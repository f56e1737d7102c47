package page

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/middleware"
	"terminal-terrace/conduit/internal/pagination"
)

// Home 首页：全站/关注流、标签过滤与分页
func (h *Handler) Home(c *gin.Context) {
	p := pagination.FromQuery(c.Request.URL.Query())
	ctx := c.Request.Context()

	articles, bizErr := h.articles.List(ctx, p, middleware.CurrentUserID(c))
	if bizErr != nil {
		h.renderError(c, bizErr)
		return
	}

	tags, bizErr := h.articles.PopularTags(ctx)
	if bizErr != nil {
		h.renderError(c, bizErr)
		return
	}

	links := make([]tagLink, 0, len(tags))
	for _, tag := range tags {
		links = append(links, tagLink{
			Name: tag,
			URL:  pagination.Default().SetAmount(p.Amount).SetTag(tag).String(),
		})
	}

	h.renderer.Render(c, http.StatusOK, "home", homeView{
		base:      h.base(c, "Home"),
		Articles:  articles,
		Tags:      links,
		ActiveTag: p.Tag,
		MyFeed:    p.MyFeed,
		GlobalURL: p.SetTag("").SetMyFeed(false).ResetPage().String(),
		FeedURL:   p.SetTag("").SetMyFeed(true).ResetPage().String(),
		Previous:  p.PreviousPage().String(),
		Next:      p.NextPage().String(),
	})
}
