package article

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"terminal-terrace/conduit/internal/logger"
	"terminal-terrace/conduit/packages/database"
)

const (
	popularTagsKey = "tags:popular"
	popularTagsTTL = 5 * time.Minute
)

// TagCache 热门标签缓存，未命中时 ok 为 false
type TagCache interface {
	Get(ctx context.Context) (tags []string, ok bool)
	Set(ctx context.Context, tags []string)
	Invalidate(ctx context.Context)
}

// NewTagCache client 为 nil 时返回不缓存的实现
func NewTagCache(client *database.RedisClient) TagCache {
	if client == nil {
		return noopCache{}
	}
	return &redisTagCache{client: client}
}

type noopCache struct{}

func (noopCache) Get(context.Context) ([]string, bool) { return nil, false }
func (noopCache) Set(context.Context, []string)         {}
func (noopCache) Invalidate(context.Context)            {}

type redisTagCache struct {
	client *database.RedisClient
}

// 缓存失败只记日志，不影响主流程
func (c *redisTagCache) Get(ctx context.Context) ([]string, bool) {
	raw, err := c.client.Get(ctx, popularTagsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.L().Warn("read tag cache failed", zap.Error(err))
		}
		return nil, false
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, false
	}
	return tags, true
}

func (c *redisTagCache) Set(ctx context.Context, tags []string) {
	raw, err := json.Marshal(tags)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, popularTagsKey, raw, popularTagsTTL).Err(); err != nil {
		logger.L().Warn("write tag cache failed", zap.Error(err))
	}
}

func (c *redisTagCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, popularTagsKey).Err(); err != nil {
		logger.L().Warn("invalidate tag cache failed", zap.Error(err))
	}
}
