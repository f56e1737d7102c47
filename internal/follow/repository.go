package follow

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"terminal-terrace/conduit/internal/model/follow"
	"terminal-terrace/conduit/internal/model/user"
)

type Repository interface {
	Create(ctx context.Context, followerID, influencerID string) error
	Delete(ctx context.Context, followerID, influencerID string) error
	Exists(ctx context.Context, followerID, influencerID string) (bool, error)
	UserExists(ctx context.Context, userID string) (bool, error)
	CountFollowers(ctx context.Context, influencerID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository { return &repository{db: db} }

func (r *repository) Create(ctx context.Context, followerID, influencerID string) error {
	f := &follow.Follow{FollowerID: followerID, InfluencerID: influencerID}
	// 幂等：重复关注不报错
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

func (r *repository) Delete(ctx context.Context, followerID, influencerID string) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND influencer_id = ?", followerID, influencerID).
		Delete(&follow.Follow{}).Error
}

func (r *repository) Exists(ctx context.Context, followerID, influencerID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&follow.Follow{}).
		Where("follower_id = ? AND influencer_id = ?", followerID, influencerID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *repository) UserExists(ctx context.Context, userID string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&user.User{}).Where("id = ?", userID).Count(&cnt).Error
	return cnt > 0, err
}

func (r *repository) CountFollowers(ctx context.Context, influencerID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&follow.Follow{}).Where("influencer_id = ?", influencerID).Count(&cnt).Error
	return cnt, err
}
