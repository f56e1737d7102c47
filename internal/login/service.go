package login

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/packages/response"
)

type LoginService struct {
	db *gorm.DB
}

func NewLoginService(db *gorm.DB) *LoginService {
	return &LoginService{db: db}
}

func invalidCredentials() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Unauthorized),
		response.WithErrorMessage("Invalid credentials"),
	)
}

// Login 邮箱密码登录；用户不存在与密码错误返回同一条消息
func (s *LoginService) Login(ctx context.Context, req LoginRequest) (*user.User, *response.BusinessError) {
	email := pkg.NormalizeEmail(req.Email)
	if email == "" || strings.TrimSpace(req.Password) == "" {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("All fields are required"),
		)
	}

	var found user.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidCredentials()
		}
		return nil, response.Internal(err)
	}

	if !pkg.CheckPassword(found.PasswordHash, req.Password) {
		return nil, invalidCredentials()
	}

	return &found, nil
}
