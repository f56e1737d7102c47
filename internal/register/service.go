package register

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/packages/database"
	"terminal-terrace/conduit/packages/response"
)

type RegisterService struct {
	db *gorm.DB
}

func NewRegisterService(db *gorm.DB) *RegisterService {
	return &RegisterService{db: db}
}

// Register 只支持邮箱密码注册，用户名由显示名生成
func (s *RegisterService) Register(ctx context.Context, req RegisterRequest) (*user.User, *response.BusinessError) {
	// 1. 参数校验
	email := pkg.NormalizeEmail(req.Email)
	if err := validateRequest(req.Name, email, req.Password); err != nil {
		return nil, err
	}

	// 2. 生成用户名
	username, err := pkg.GenerateUsername(req.Name)
	if err != nil {
		return nil, response.Internal(err)
	}

	// 3. 密码加密
	hashedPassword, err := pkg.HashPassword(req.Password)
	if err != nil {
		return nil, response.Internal(err)
	}

	// 4. 创建用户，唯一约束冲突交给数据库判断
	newUser := &user.User{
		Name:         req.Name,
		Username:     username,
		Email:        email,
		EmailHash:    pkg.HashEmail(email),
		PasswordHash: hashedPassword,
	}
	if err := s.db.WithContext(ctx).Create(newUser).Error; err != nil {
		return nil, duplicateError(database.TranslateError(err))
	}

	return newUser, nil
}

func validateRequest(name, email, password string) *response.BusinessError {
	for _, err := range []error{
		pkg.ValidateName(name),
		pkg.ValidateEmail(email),
		pkg.ValidatePassword(password),
	} {
		if err != nil {
			return response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage(err.Error()),
			)
		}
	}
	return nil
}

// duplicateError 把唯一约束冲突翻译成 409
func duplicateError(err error) *response.BusinessError {
	if !errors.Is(err, database.ErrDuplicate) {
		return response.Internal(err)
	}

	column, _ := database.DuplicateColumn(err)
	switch column {
	case "email":
		return response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("Email already registered"),
			response.WithError(err),
		)
	case "username":
		return response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("Username already taken"),
			response.WithError(err),
		)
	default:
		return response.Internal(err)
	}
}
