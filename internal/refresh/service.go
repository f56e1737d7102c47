package refresh

import (
	"context"
	"errors"

	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/packages/response"
)

// Service 刷新令牌的签发、轮换与吊销
type Service struct {
	repo Repository
}

// NewService 创建刷新令牌服务实例
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Issue 为用户签发新的刷新令牌
func (s *Service) Issue(ctx context.Context, data TokenData) (string, error) {
	token, err := pkg.GenerateRandomToken()
	if err != nil {
		return "", err
	}
	if err := s.repo.Create(ctx, token, data); err != nil {
		return "", err
	}
	return token, nil
}

// RefreshResult 轮换结果
type RefreshResult struct {
	UserID          string
	AccessToken     string
	NewRefreshToken string
}

// Rotate 校验旧令牌、作废并签发新的访问令牌与刷新令牌
func (s *Service) Rotate(ctx context.Context, refreshToken string) (*RefreshResult, *response.BusinessError) {
	if refreshToken == "" {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("Refresh token missing"),
		)
	}

	// 1. 验证 refresh token
	tokenData, err := s.repo.Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("Refresh token invalid or expired"),
			)
		}
		return nil, response.Internal(err)
	}

	// 2. 撤销旧的 refresh token
	if err := s.repo.Delete(ctx, refreshToken); err != nil {
		return nil, response.Internal(err)
	}

	// 3. 生成新的 access token
	accessToken, err := pkg.GenerateAccessToken(tokenData.UserID)
	if err != nil {
		return nil, response.Internal(err)
	}

	// 4. 生成并存储新的 refresh token
	newRefreshToken, err := s.Issue(ctx, *tokenData)
	if err != nil {
		return nil, response.Internal(err)
	}

	return &RefreshResult{
		UserID:          tokenData.UserID,
		AccessToken:     accessToken,
		NewRefreshToken: newRefreshToken,
	}, nil
}

// Revoke 作废单个刷新令牌
func (s *Service) Revoke(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.repo.Delete(ctx, refreshToken)
}

// RevokeAll 作废用户的全部刷新令牌
func (s *Service) RevokeAll(ctx context.Context, userID string) error {
	return s.repo.DeleteAllByUserID(ctx, userID)
}

// Sessions 用户当前的活跃会话数
func (s *Service) Sessions(ctx context.Context, userID string) (int, error) {
	return s.repo.CountActiveSessionsByUserID(ctx, userID)
}
