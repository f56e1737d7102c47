package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/metrics"
	"terminal-terrace/conduit/packages/database"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrUserNotFound    = errors.New("user not found")
)

type Service struct {
	db      *gorm.DB
	metrics *metrics.Collector
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, metrics: metrics.Default}
}

// Toggle 收藏/取消收藏，返回切换后的状态（true 表示已收藏）
func (s *Service) Toggle(ctx context.Context, userID, articleID string) (bool, error) {
	var favorited bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		ok, err := repo.ArticleExists(ctx, articleID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrArticleNotFound
		}

		exists, err := repo.Exists(ctx, userID, articleID)
		if err != nil {
			return err
		}
		if exists {
			favorited = false
			return repo.Delete(ctx, userID, articleID)
		}
		favorited = true
		if err := repo.Create(ctx, userID, articleID); err != nil {
			if database.IsForeignKeyViolation(err) {
				return ErrUserNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	s.metrics.Toggle("favorite", favorited)
	return favorited, nil
}

// ToggleBySlug 按 slug 切换收藏，同时返回最新收藏数
func (s *Service) ToggleBySlug(ctx context.Context, userID, slug string) (bool, int64, error) {
	repo := NewRepository(s.db)

	articleID, err := repo.ArticleIDBySlug(ctx, slug)
	if err != nil {
		return false, 0, err
	}

	favorited, err := s.Toggle(ctx, userID, articleID)
	if err != nil {
		return false, 0, err
	}

	count, err := repo.Count(ctx, articleID)
	return favorited, count, err
}
