package article

import "time"

// Tag 标签表
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Tag) TableName() string { return "tags" }

// ArticleTag 文章-标签关联表
type ArticleTag struct {
	ArticleID string    `gorm:"primaryKey;type:varchar(36)" json:"article_id"`
	TagID     uint      `gorm:"primaryKey;index" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`

	Article *Article `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"-"`
	Tag     *Tag     `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ArticleTag) TableName() string { return "article_tags" }
