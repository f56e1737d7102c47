// Package article 文章相关模型
package article

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/model/user"
)

// Article 文章表
type Article struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	AuthorID    string    `gorm:"type:varchar(36);not null;index" json:"author_id"`
	CoverImage  string    `gorm:"type:text" json:"cover_image,omitempty"`
	ReadingTime int       `gorm:"default:0" json:"reading_time"` // 分钟，来自导入数据
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Author *user.User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Article) TableName() string { return "articles" }

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
