// Package comment 评论模型
package comment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/model/article"
	"terminal-terrace/conduit/internal/model/user"
)

// Comment 文章评论表
type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ArticleID string    `gorm:"type:varchar(36);not null;index" json:"article_id"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	Article *article.Article `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"-"`
	User    *user.User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}

// BeforeCreate GORM钩子：补全主键并拒绝空评论
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.Body == "" {
		return gorm.ErrInvalidData
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
