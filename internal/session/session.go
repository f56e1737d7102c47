// Package session 负责登录态的建立与销毁（访问令牌 cookie + 可选的刷新令牌）
package session

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terminal-terrace/conduit/internal/logger"
	"terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/internal/pkg"
	"terminal-terrace/conduit/internal/refresh"
)

type Manager struct {
	refresh *refresh.Service // nil 表示未启用 Redis
}

func NewManager(refreshService *refresh.Service) *Manager {
	return &Manager{refresh: refreshService}
}

// Start 写入访问令牌 cookie，启用 Redis 时同时签发刷新令牌
func (m *Manager) Start(c *gin.Context, u *user.User) error {
	if err := pkg.IssueSession(c, u.ID); err != nil {
		return err
	}
	if m.refresh == nil {
		return nil
	}

	token, err := m.refresh.Issue(c.Request.Context(), refresh.TokenData{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
	})
	if err != nil {
		// 刷新令牌只是锦上添花，访问令牌已经可用
		logger.L().Warn("issue refresh token failed", zap.String("user_id", u.ID), zap.Error(err))
		return nil
	}
	pkg.SetRefreshCookie(c, token, refresh.RefreshTokenExpiration)
	return nil
}

// End 清除 cookie 并吊销当前刷新令牌
func (m *Manager) End(c *gin.Context) {
	if m.refresh != nil {
		if token, err := c.Cookie(pkg.RefreshCookie); err == nil && token != "" {
			if err := m.refresh.Revoke(c.Request.Context(), token); err != nil {
				logger.L().Warn("revoke refresh token failed", zap.Error(err))
			}
		}
	}
	pkg.ClearAuthCookies(c)
}

// ActiveSessions 仍有效的刷新令牌数；未启用 Redis 或查询失败时 ok 为 false
func (m *Manager) ActiveSessions(ctx context.Context, userID string) (n int, ok bool) {
	if m.refresh == nil {
		return 0, false
	}
	n, err := m.refresh.Sessions(ctx, userID)
	if err != nil {
		logger.L().Warn("count sessions failed", zap.String("user_id", userID), zap.Error(err))
		return 0, false
	}
	return n, true
}

// RevokeAll 吊销用户的全部刷新令牌（修改密码后调用）
func (m *Manager) RevokeAll(c *gin.Context, userID string) {
	if m.refresh == nil {
		return
	}
	if err := m.refresh.RevokeAll(c.Request.Context(), userID); err != nil {
		logger.L().Warn("revoke all refresh tokens failed", zap.String("user_id", userID), zap.Error(err))
	}
}
