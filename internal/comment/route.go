package comment

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/middleware"
)

// NewDefaultService 由 db 组装评论服务
func NewDefaultService(db *gorm.DB) CommentService {
	return NewCommentService(NewCommentRepository(db))
}

// SetupCommentRoutes 注册评论路由，router 为 /api/articles 分组
func SetupCommentRoutes(router *gin.RouterGroup, service CommentService) {
	handler := NewCommentHandler(service)

	router.GET("/:slug/comments", handler.GetArticleComments)
	router.POST("/:slug/comments", middleware.JWTAuth(), handler.CreateComment)
	router.DELETE("/:slug/comments/:id", middleware.JWTAuth(), handler.DeleteComment)
}
