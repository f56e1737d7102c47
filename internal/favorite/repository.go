package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"terminal-terrace/conduit/internal/model/article"
)

type Repository interface {
	Create(ctx context.Context, userID, articleID string) error
	Delete(ctx context.Context, userID, articleID string) error
	Exists(ctx context.Context, userID, articleID string) (bool, error)
	ArticleIDBySlug(ctx context.Context, slug string) (string, error)
	ArticleExists(ctx context.Context, articleID string) (bool, error)
	Count(ctx context.Context, articleID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository { return &repository{db: db} }

func (r *repository) Create(ctx context.Context, userID, articleID string) error {
	fav := &article.Favorite{UserID: userID, ArticleID: articleID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(fav).Error
}

func (r *repository) Delete(ctx context.Context, userID, articleID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&article.Favorite{}).Error
}

func (r *repository) Exists(ctx context.Context, userID, articleID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&article.Favorite{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ArticleIDBySlug 文章不存在时返回 ErrArticleNotFound
func (r *repository) ArticleIDBySlug(ctx context.Context, slug string) (string, error) {
	var a article.Article
	err := r.db.WithContext(ctx).Select("id").Where("slug = ?", slug).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrArticleNotFound
	}
	return a.ID, err
}

func (r *repository) ArticleExists(ctx context.Context, articleID string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&article.Article{}).Where("id = ?", articleID).Count(&cnt).Error
	return cnt > 0, err
}

func (r *repository) Count(ctx context.Context, articleID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&article.Favorite{}).Where("article_id = ?", articleID).Count(&cnt).Error
	return cnt, err
}
