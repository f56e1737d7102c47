package pkg

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/database"
	"terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/packages/response"
)

// GetUserByID retrieves a user by their ID
func GetUserByID(ctx context.Context, userID string) (*user.User, *response.BusinessError) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("Invalid user id"),
		)
	}

	var foundUser user.User
	result := database.PostgresDB.WithContext(ctx).Where("id = ?", userID).First(&foundUser)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("User not found"),
			)
		}
		return nil, response.Internal(result.Error)
	}

	return &foundUser, nil
}

// UserExists 令牌里的用户是否仍然存在
func UserExists(ctx context.Context, db *gorm.DB, userID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&user.User{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}
