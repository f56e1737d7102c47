package page

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/middleware"
)

// RegisterRoutes 页面路由统一经过 PageGuard
func RegisterRoutes(r *gin.Engine, db *gorm.DB, h *Handler) {
	pages := r.Group("/")
	pages.Use(middleware.PageGuard(db))
	{
		pages.GET("/", h.Home)

		pages.GET("/login", h.LoginForm)
		pages.POST("/login", h.Login)
		pages.GET("/signup", h.SignupForm)
		pages.POST("/signup", h.Signup)
		pages.POST("/logout", h.Logout)

		pages.GET("/settings", h.SettingsForm)
		pages.POST("/settings", h.UpdateSettings)

		pages.GET("/editor", h.NewArticleForm)
		pages.POST("/editor", h.CreateArticle)
		pages.GET("/editor/:slug", h.EditArticleForm)
		pages.POST("/editor/:slug", h.UpdateArticle)

		pages.GET("/article/:slug", h.Article)
		pages.POST("/article/:slug/delete", h.DeleteArticle)
		pages.POST("/article/:slug/comments", h.CreateComment)
		pages.POST("/article/:slug/comments/:id/delete", h.DeleteComment)
		pages.POST("/article/:slug/favorite", h.ToggleFavorite)

		pages.GET("/profile/:user_id", h.Profile)
		pages.POST("/profile/:user_id/follow", h.ToggleFollow)
	}

	r.NoRoute(middleware.PageGuard(db), h.NotFound)
}
