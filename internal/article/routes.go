package article

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/middleware"
)

// SetupArticleRoutes 设置文章相关路由，r 为 /api 分组
func SetupArticleRoutes(r *gin.RouterGroup, service *ArticleService) {
	articleHandler := NewArticleHandler(service)

	// 文章路由 - 可选认证（用于 fav/following）
	articlesOptional := r.Group("/articles")
	articlesOptional.Use(middleware.OptionalJWTAuth())
	{
		articlesOptional.GET("", articleHandler.ListArticles)
		articlesOptional.GET("/:slug", articleHandler.GetArticle)
	}

	// 文章路由 - 需要认证
	articlesAuth := r.Group("/articles")
	articlesAuth.Use(middleware.JWTAuth())
	{
		articlesAuth.POST("", articleHandler.CreateArticle)
		articlesAuth.PUT("/:slug", articleHandler.UpdateArticle)
		articlesAuth.DELETE("/:slug", articleHandler.DeleteArticle)
	}

	r.GET("/tags", articleHandler.GetTags)
	r.GET("/profiles/:user_id/articles", middleware.OptionalJWTAuth(), articleHandler.GetProfileArticles)
}
