package follow

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/metrics"
)

var (
	ErrFollowSelf   = errors.New("cannot follow yourself")
	ErrUserNotFound = errors.New("user not found")
)

type Service struct {
	db      *gorm.DB
	newRepo func(*gorm.DB) Repository
	metrics *metrics.Collector
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, newRepo: NewRepository, metrics: metrics.Default}
}

// Toggle 关注/取消关注 influencer，返回切换后的状态（true 表示已关注）
func (s *Service) Toggle(ctx context.Context, followerID, influencerID string) (bool, error) {
	if followerID == influencerID {
		return false, ErrFollowSelf
	}

	var following bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.newRepo(tx)

		ok, err := repo.UserExists(ctx, influencerID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUserNotFound
		}

		exists, err := repo.Exists(ctx, followerID, influencerID)
		if err != nil {
			return err
		}
		if exists {
			following = false
			return repo.Delete(ctx, followerID, influencerID)
		}
		following = true
		return repo.Create(ctx, followerID, influencerID)
	})
	if err != nil {
		return false, err
	}

	s.metrics.Toggle("follow", following)
	return following, nil
}

// Followers 关注 influencer 的人数
func (s *Service) Followers(ctx context.Context, influencerID string) (int64, error) {
	return s.newRepo(s.db).CountFollowers(ctx, influencerID)
}

// IsFollowing follower 是否关注了 influencer
func (s *Service) IsFollowing(ctx context.Context, followerID, influencerID string) (bool, error) {
	if followerID == "" || followerID == influencerID {
		return false, nil
	}
	return s.newRepo(s.db).Exists(ctx, followerID, influencerID)
}
