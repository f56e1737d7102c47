package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/follow"
	userModel "terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/packages/database"
	"terminal-terrace/conduit/packages/response"
)

// UserService 用户服务层
type UserService struct {
	repo    *UserRepository
	follows *follow.Service
}

// NewUserService 创建用户服务实例
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		repo:    NewUserRepository(db),
		follows: follow.NewService(db),
	}
}

func notFound() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.NotFound),
		response.WithErrorMessage("User not found"),
	)
}

func invalid(msg string) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.InvalidParameter),
		response.WithErrorMessage(msg),
	)
}

// GetProfile 查看资料，viewerID 为空表示未登录
func (s *UserService) GetProfile(ctx context.Context, profileID, viewerID string) (*ProfileResponse, *response.BusinessError) {
	if _, err := uuid.Parse(profileID); err != nil {
		return nil, notFound()
	}

	u, err := s.repo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound()
		}
		return nil, response.Internal(err)
	}

	profile := &ProfileResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
	}

	profile.Followers, err = s.follows.Followers(ctx, u.ID)
	if err != nil {
		return nil, response.Internal(err)
	}
	if viewerID != "" {
		following, err := s.follows.IsFollowing(ctx, viewerID, u.ID)
		if err != nil {
			return nil, response.Internal(err)
		}
		profile.Following = &following
	}
	return profile, nil
}

// UpdateSettings 更新设置，passwordChanged 为 true 时调用方需要吊销旧会话
func (s *UserService) UpdateSettings(ctx context.Context, userID string, req SettingsRequest) (u *userModel.User, passwordChanged bool, bizErr *response.BusinessError) {
	if req.Password != req.ConfirmPassword {
		return nil, false, invalid("Passwords do not match")
	}

	bio, err := pkg.NormalizeBio(req.Bio)
	if err != nil {
		return nil, false, invalid(err.Error())
	}
	image, err := pkg.NormalizeImage(req.Image)
	if err != nil {
		return nil, false, invalid(err.Error())
	}

	email := pkg.NormalizeEmail(req.Email)
	if err := pkg.ValidateEmail(email); err != nil {
		return nil, false, invalid(err.Error())
	}

	fields := map[string]any{
		"bio":        bio,
		"image":      image,
		"email":      email,
		"email_hash": pkg.HashEmail(email),
	}

	if req.Password != "" {
		if err := pkg.ValidatePassword(req.Password); err != nil {
			return nil, false, invalid(err.Error())
		}
		hashed, err := pkg.HashPassword(req.Password)
		if err != nil {
			return nil, false, response.Internal(err)
		}
		fields["password"] = hashed
		passwordChanged = true
	}

	if err := s.repo.UpdateSettings(ctx, userID, fields); err != nil {
		err = database.TranslateError(err)
		if column, ok := database.DuplicateColumn(err); ok && column == "email" {
			return nil, false, response.NewBusinessError(
				response.WithErrorCode(response.Conflict),
				response.WithErrorMessage("Email already registered"),
				response.WithError(err),
			)
		}
		return nil, false, response.Internal(err)
	}

	u, err = s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, notFound()
		}
		return nil, false, response.Internal(err)
	}
	return u, passwordChanged, nil
}
