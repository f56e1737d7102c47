package refresh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"terminal-terrace/conduit/packages/database"
)

const (
	// RefreshToken 有效期：7天
	RefreshTokenExpiration = 7 * 24 * time.Hour
	// RefreshToken Redis key 前缀
	RefreshTokenPrefix = "refresh_token:"
	// 用户的 RefreshToken 集合 key 前缀（用于吊销用户的所有 session）
	UserRefreshTokensPrefix = "user_refresh_tokens:"
)

var ErrTokenNotFound = errors.New("refresh token not found or expired")

// TokenData 令牌数据结构
type TokenData struct {
	UserID   string
	Username string
	Email    string
}

// Repository 刷新令牌数据访问层
type Repository interface {
	Create(ctx context.Context, token string, data TokenData) error
	Get(ctx context.Context, token string) (*TokenData, error)
	Delete(ctx context.Context, token string) error
	DeleteAllByUserID(ctx context.Context, userID string) error
	CountActiveSessionsByUserID(ctx context.Context, userID string) (int, error)
}

type redisRepository struct {
	redis *database.RedisClient
}

// NewRepository 创建基于 Redis 的刷新令牌仓库
func NewRepository(redisClient *database.RedisClient) Repository {
	return &redisRepository{redis: redisClient}
}

// Create 存储刷新令牌，并登记到用户的令牌集合
func (r *redisRepository) Create(ctx context.Context, token string, data TokenData) error {
	key := RefreshTokenPrefix + token
	userTokensKey := UserRefreshTokensPrefix + data.UserID

	pipe := r.redis.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		"user_id":  data.UserID,
		"username": data.Username,
		"email":    data.Email,
	})
	pipe.Expire(ctx, key, RefreshTokenExpiration)
	pipe.SAdd(ctx, userTokensKey, token)
	pipe.Expire(ctx, userTokensKey, RefreshTokenExpiration)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("存储令牌失败: %w", err)
	}
	return nil
}

// Get 获取刷新令牌信息
func (r *redisRepository) Get(ctx context.Context, token string) (*TokenData, error) {
	tokenData, err := r.redis.HGetAll(ctx, RefreshTokenPrefix+token).Result()
	if err != nil {
		return nil, fmt.Errorf("获取令牌信息失败: %w", err)
	}
	if len(tokenData) == 0 {
		return nil, ErrTokenNotFound
	}

	userID, ok := tokenData["user_id"]
	if !ok || userID == "" {
		return nil, fmt.Errorf("令牌数据不完整")
	}

	return &TokenData{
		UserID:   userID,
		Username: tokenData["username"],
		Email:    tokenData["email"],
	}, nil
}

// Delete 删除刷新令牌（用户登出或轮换）
func (r *redisRepository) Delete(ctx context.Context, token string) error {
	key := RefreshTokenPrefix + token

	// 先取用户 ID，以便从用户的 token 集合中移除
	userID, err := r.redis.HGet(ctx, key, "user_id").Result()
	if err == nil && userID != "" {
		r.redis.SRem(ctx, UserRefreshTokensPrefix+userID, token)
	}

	if err := r.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("撤销令牌失败: %w", err)
	}
	return nil
}

// DeleteAllByUserID 删除用户的所有刷新令牌（修改密码等场景）
func (r *redisRepository) DeleteAllByUserID(ctx context.Context, userID string) error {
	userTokensKey := UserRefreshTokensPrefix + userID

	tokens, err := r.redis.SMembers(ctx, userTokensKey).Result()
	if err != nil {
		return fmt.Errorf("获取用户令牌列表失败: %w", err)
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, RefreshTokenPrefix+token)
	}
	keys = append(keys, userTokensKey)

	if err := r.redis.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("删除用户令牌集合失败: %w", err)
	}
	return nil
}

// CountActiveSessionsByUserID 获取用户的活跃 session 数量
func (r *redisRepository) CountActiveSessionsByUserID(ctx context.Context, userID string) (int, error) {
	count, err := r.redis.SCard(ctx, UserRefreshTokensPrefix+userID).Result()
	if err != nil {
		return 0, fmt.Errorf("获取活跃会话数失败: %w", err)
	}
	return int(count), nil
}
