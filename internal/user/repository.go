package user

import (
	"context"

	"gorm.io/gorm"

	userModel "terminal-terrace/conduit/internal/model/user"
)

// UserRepository 用户数据访问层
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库实例
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID 不存在时返回 gorm.ErrRecordNotFound
func (r *UserRepository) FindByID(ctx context.Context, userID string) (*userModel.User, error) {
	var u userModel.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateSettings 只写入设置页可修改的列，password 为空表示不修改
func (r *UserRepository) UpdateSettings(ctx context.Context, userID string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&userModel.User{}).
		Where("id = ?", userID).
		Updates(fields).Error
}
