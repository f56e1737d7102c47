package article

import (
	"time"

	"terminal-terrace/conduit/internal/model/user"
)

// Favorite 收藏表
type Favorite struct {
	UserID    string    `gorm:"primaryKey;type:varchar(36)" json:"user_id"`
	ArticleID string    `gorm:"primaryKey;type:varchar(36);index" json:"article_id"`
	CreatedAt time.Time `json:"created_at"`

	User    *user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Article *Article   `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Favorite) TableName() string { return "fav_articles" }
