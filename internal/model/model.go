package model

import (
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/model/article"
	"terminal-terrace/conduit/internal/model/comment"
	"terminal-terrace/conduit/internal/model/follow"
	"terminal-terrace/conduit/internal/model/user"
)

// DateFormat 页面与接口中 created_at 的展示格式
const DateFormat = "02/01/2006 15:04"

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	return db.AutoMigrate(
		// 用户相关
		&user.User{},
		&follow.Follow{},
		// 文章相关
		&article.Article{},
		&article.Tag{},
		&article.ArticleTag{},
		&article.Favorite{},
		// 评论
		&comment.Comment{},
	)
}
